// Package retrieval finds the corpus section that best answers a question
// using keyword overlap scoring.
package retrieval

import (
	"strings"

	"github.com/dgallion1/aidemo/internal/corpus"
)

const (
	wordOverlapPoints  = 2
	topicKeywordPoints = 1
)

// Match is the best section seen during one retrieval.
type Match struct {
	Section  string `json:"section"`
	Index    int    `json:"index"`
	Score    int    `json:"score"`
	Fallback bool   `json:"fallback"`
}

// Found reports whether any section was selected.
func (m Match) Found() bool {
	return m.Index >= 0
}

// Retriever scores corpus sections against questions. It holds no state
// beyond its topic table and is safe for concurrent use.
type Retriever struct {
	topics []Topic
}

// New creates a retriever over the given topic table. A nil or empty table
// selects DefaultTopics. Labels and keywords are lowercased once here.
func New(topics []Topic) *Retriever {
	if len(topics) == 0 {
		topics = DefaultTopics
	}
	normalized := make([]Topic, 0, len(topics))
	for _, t := range topics {
		label := strings.ToLower(t.Label)
		if label == "" {
			continue
		}
		keywords := make([]string, 0, len(t.Keywords))
		for _, k := range t.Keywords {
			if k = strings.ToLower(k); k != "" {
				keywords = append(keywords, k)
			}
		}
		normalized = append(normalized, Topic{Label: label, Keywords: keywords})
	}
	return &Retriever{topics: normalized}
}

// Topics returns a copy of the retriever's topic table.
func (r *Retriever) Topics() []Topic {
	out := make([]Topic, len(r.topics))
	for i, t := range r.topics {
		out[i] = Topic{Label: t.Label, Keywords: append([]string(nil), t.Keywords...)}
	}
	return out
}

// Retrieve returns the trimmed text of the section that best matches the
// question, or "" when nothing matches.
func (r *Retriever) Retrieve(question, text string) string {
	return r.Match(question, text).Section
}

// Match scores every section of text and returns the winner. Sections are
// compared with a strict greater-than so ties keep the earliest section.
//
// Containment is by substring, not by token: the question word "are" scores
// against "share" and "area". Scenario outcomes depend on this.
func (r *Retriever) Match(question, text string) Match {
	sections := corpus.Split(text)
	questionLower := strings.ToLower(question)
	words := strings.Fields(questionLower)

	best := Match{Index: -1}
	for _, section := range sections {
		sectionLower := strings.ToLower(section.Raw)
		score := 0

		for _, word := range words {
			if strings.Contains(sectionLower, word) {
				score += wordOverlapPoints
			}
		}

		for _, topic := range r.topics {
			if !strings.Contains(questionLower, topic.Label) {
				continue
			}
			for _, keyword := range topic.Keywords {
				if strings.Contains(sectionLower, keyword) {
					score += topicKeywordPoints
				}
			}
		}

		if score > best.Score {
			best = Match{Section: section.Text, Index: section.Index, Score: score}
		}
	}

	if best.Score > 0 {
		return best
	}
	return fallbackMatch(sections, words)
}

// fallbackMatch returns the first section containing any single question word.
func fallbackMatch(sections []corpus.Section, words []string) Match {
	for _, section := range sections {
		sectionLower := strings.ToLower(section.Raw)
		for _, word := range words {
			if strings.Contains(sectionLower, word) {
				return Match{Section: section.Text, Index: section.Index, Score: 1, Fallback: true}
			}
		}
	}
	return Match{Index: -1}
}

var defaultRetriever = New(nil)

// Retrieve runs the default topic table against text.
func Retrieve(question, text string) string {
	return defaultRetriever.Retrieve(question, text)
}
