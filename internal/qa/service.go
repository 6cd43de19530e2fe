// Package qa answers questions about the corpus document by retrieving the
// best matching section and formatting it.
package qa

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dgallion1/aidemo/internal/answer"
	"github.com/dgallion1/aidemo/internal/cache"
	"github.com/dgallion1/aidemo/internal/corpus"
	"github.com/dgallion1/aidemo/internal/metrics"
	"github.com/dgallion1/aidemo/internal/retrieval"
)

// ErrEmptyQuestion is returned for a blank question.
var ErrEmptyQuestion = errors.New("question is required")

// Process lists the steps reported with every answer.
var Process = []string{
	"1. Analyzed business document content",
	"2. Retrieved relevant sections",
	"3. Generated structured response",
}

// Result is the outcome of one question.
type Result struct {
	Question     string   `json:"question"`
	Context      string   `json:"context"`
	Answer       string   `json:"answer"`
	SectionIndex int      `json:"section_index"`
	Score        int      `json:"score"`
	Fallback     bool     `json:"fallback"`
	Process      []string `json:"process"`
	Cached       bool     `json:"cached"`
}

// Options configures a Service. Zero values select the built-in document,
// the default topic table, no cache and no delay.
type Options struct {
	Corpus   *corpus.Corpus
	Topics   []retrieval.Topic
	Cache    cache.Client
	CacheTTL time.Duration
	// Delay simulates model latency before each uncached answer.
	Delay  time.Duration
	Logger *zerolog.Logger
}

// Service answers questions against a single corpus.
type Service struct {
	corpus    corpus.Corpus
	retriever *retrieval.Retriever
	cache     cache.Client
	cacheTTL  time.Duration
	delay     time.Duration
	scope     string
	log       zerolog.Logger
}

func NewService(opts Options) *Service {
	s := &Service{
		corpus:    corpus.Default(),
		retriever: retrieval.New(opts.Topics),
		cache:     opts.Cache,
		cacheTTL:  opts.CacheTTL,
		delay:     opts.Delay,
		log:       zerolog.Nop(),
	}
	if opts.Corpus != nil {
		s.corpus = *opts.Corpus
	}
	if opts.Logger != nil {
		s.log = opts.Logger.With().Str("component", "qa").Logger()
	}
	s.scope = cacheScope(s.corpus.Text, s.retriever.Topics())
	return s
}

// cacheScope identifies the corpus and topic table behind an answer so a
// shared cache never serves answers computed from another document.
func cacheScope(text string, topics []retrieval.Topic) string {
	parts := make([]string, 0, len(topics)+1)
	parts = append(parts, text)
	for _, t := range topics {
		parts = append(parts, t.Label+"="+strings.Join(t.Keywords, ","))
	}
	return cache.Fingerprint(parts...)
}

// Corpus returns the document being served.
func (s *Service) Corpus() corpus.Corpus {
	return s.corpus
}

// Topics returns the topic table used for scoring.
func (s *Service) Topics() []retrieval.Topic {
	return s.retriever.Topics()
}

// Ask retrieves the most relevant section for question and formats it as an
// answer. Cache failures are logged and otherwise ignored.
func (s *Service) Ask(ctx context.Context, question string) (*Result, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := cache.Key(s.scope, question)
	if cached, ok := s.lookup(ctx, key); ok {
		cached.Question = question
		cached.Cached = true
		return cached, nil
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	match := s.retriever.Match(question, s.corpus.Text)
	metrics.RecordRetrieval(outcome(match))

	res := &Result{
		Question:     question,
		Context:      match.Section,
		Answer:       answer.Format(match.Section),
		SectionIndex: match.Index,
		Score:        match.Score,
		Fallback:     match.Fallback,
		Process:      append([]string(nil), Process...),
	}

	s.log.Debug().
		Int("section", match.Index).
		Int("score", match.Score).
		Bool("fallback", match.Fallback).
		Msg("retrieved context")

	s.store(ctx, key, res)
	return res, nil
}

func (s *Service) lookup(ctx context.Context, key string) (*Result, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn().Err(err).Msg("cache get failed")
		}
		return nil, false
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cache entry")
		return nil, false
	}
	return &res, true
}

func (s *Service) store(ctx context.Context, key string, res *Result) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		s.log.Warn().Err(err).Msg("cache encode failed")
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Msg("cache set failed")
	}
}

func outcome(m retrieval.Match) string {
	switch {
	case !m.Found():
		return metrics.OutcomeEmpty
	case m.Fallback:
		return metrics.OutcomeFallback
	default:
		return metrics.OutcomeMatch
	}
}
