package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dgallion1/aidemo/internal/api"
	"github.com/dgallion1/aidemo/internal/cache"
	"github.com/dgallion1/aidemo/internal/config"
	"github.com/dgallion1/aidemo/internal/corpus"
	"github.com/dgallion1/aidemo/internal/metrics"
	"github.com/dgallion1/aidemo/internal/observability"
	"github.com/dgallion1/aidemo/internal/parser"
	"github.com/dgallion1/aidemo/internal/qa"
)

func main() {
	cfg, err := config.Load()
	log := observability.NewLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "aidemo",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	doc := corpus.Default()
	if cfg.CorpusFile != "" {
		doc, err = parser.LoadCorpus(cfg.CorpusFile, parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext})
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.CorpusFile).Msg("load corpus")
		}
	}
	log.Info().
		Str("title", doc.Title).
		Int("sections", len(doc.Sections())).
		Int("tokens", corpus.EstimateTokens(doc.Text)).
		Msg("corpus ready")

	answers, err := cache.New(cache.Config{
		Driver:     cfg.CacheDriver,
		MaxEntries: cfg.CacheMaxEntries,
		Redis: cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,

			ConnectRetries: cfg.RedisRetries,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.CacheDriver).Msg("init cache")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Init(reg)

	svc := qa.NewService(qa.Options{
		Corpus:   &doc,
		Topics:   cfg.Topics,
		Cache:    answers,
		CacheTTL: cfg.CacheTTL,
		Delay:    cfg.AnswerDelay,
		Logger:   &log,
	})

	srv := api.NewServer(svc, metrics.NewLatencyBoard(cfg.StatsWindow), reg, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}

		if answers != nil {
			answers.Close()
		}
	}()

	log.Info().Str("port", cfg.Port).Str("cache", cfg.CacheDriver).Msg("starting aidemo")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
