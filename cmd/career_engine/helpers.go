package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jonathan/career-engine/internal/cache"
	"github.com/jonathan/career-engine/internal/catalog"
	"github.com/jonathan/career-engine/internal/config"
	"github.com/jonathan/career-engine/internal/db"
	"github.com/jonathan/career-engine/internal/engine"
	"github.com/jonathan/career-engine/internal/llm"
	"github.com/jonathan/career-engine/internal/matching"
)

// engineDeps are the resources an engine holds; close releases them.
type engineDeps struct {
	closers []func()
}

func (d *engineDeps) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// buildEngine wires an engine from cfg. Stores are only opened when withStores is set.
func buildEngine(ctx context.Context, cfg config.Config, withStores bool) (*engine.Engine, *engineDeps, error) {
	logger := slog.Default()
	deps := &engineDeps{}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, nil, err
		}
		cat = loaded
	}

	scorer, err := buildScorer(ctx, cfg, logger, deps)
	if err != nil {
		deps.close()
		return nil, nil, err
	}

	opts := engine.Options{
		Catalog:    cat,
		Scorer:     scorer,
		Logger:     logger,
		BatchLimit: cfg.BatchConcurrency,
	}

	if withStores {
		store, err := openStore(ctx, cfg)
		if err != nil {
			deps.close()
			return nil, nil, err
		}
		deps.closers = append(deps.closers, store.Close)
		opts.Progress = store
		opts.Scores = store
		opts.Plans = store

		plans := openPlanCache(ctx, cfg, logger)
		deps.closers = append(deps.closers, func() { _ = plans.Close() })
		opts.Cache = plans
	}

	return engine.New(opts), deps, nil
}

type planCache interface {
	engine.PlanCache
	Close() error
}

// openPlanCache connects to Redis when configured and otherwise keeps plans in process.
func openPlanCache(ctx context.Context, cfg config.Config, logger *slog.Logger) planCache {
	if cfg.RedisURL == "" {
		return cache.NewMemoryPlanCache(cfg.PlanCacheTTL(), nil)
	}
	redisCache, err := cache.NewRedisPlanCache(ctx, cfg.RedisURL, cfg.PlanCacheTTL(), logger)
	if err != nil {
		logger.Warn("redis plan cache unavailable, using in-memory cache", slog.Any("error", err))
		return cache.NewMemoryPlanCache(cfg.PlanCacheTTL(), nil)
	}
	return redisCache
}

func buildScorer(ctx context.Context, cfg config.Config, logger *slog.Logger, deps *engineDeps) (*matching.FallbackScorer, error) {
	local := matching.NewLocalScorer(matching.Weights{Exact: cfg.ExactWeight, Semantic: cfg.SemanticWeight})

	var remotes []matching.RemoteScorer
	if cfg.RemoteScorerURL != "" {
		httpScorer, err := matching.NewHTTPScorer(matching.HTTPScorerConfig{
			URL:           cfg.RemoteScorerURL,
			Timeout:       cfg.RemoteTimeout(),
			RatePerSecond: cfg.RemoteRatePerSecond,
		})
		if err != nil {
			return nil, err
		}
		remotes = append(remotes, httpScorer)
	}

	if cfg.LLMProvider != "" {
		provider, err := llm.ParseProvider(cfg.LLMProvider)
		if err != nil {
			return nil, err
		}
		llmConfig := llm.ConfigFor(provider)
		if cfg.LLMModel != "" {
			llmConfig = llmConfig.WithModel(cfg.LLMModel)
		}
		client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		deps.closers = append(deps.closers, func() { _ = client.Close() })
		remotes = append(remotes, matching.NewLLMScorer(client).WithTimeout(cfg.RemoteTimeout()))
	}

	return matching.NewFallbackScorer(local, logger, remotes...), nil
}

// openStore picks Postgres, then SQLite, then memory.
func openStore(ctx context.Context, cfg config.Config) (db.Store, error) {
	switch {
	case cfg.DatabaseURL != "":
		pg, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	case cfg.SQLitePath != "":
		return db.OpenSQLite(ctx, cfg.SQLitePath)
	default:
		slog.Warn("no database configured, progress is kept in memory for this run only")
		return db.NewMemoryStore(), nil
	}
}

func readFile(path, what string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s file %s: %w", what, path, err)
	}
	return content, nil
}

// writeOutput writes v as indented JSON to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, err := fmt.Fprintln(stdout, string(jsonOutput))
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

func markRequired(cmd interface{ MarkFlagRequired(string) error }, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
