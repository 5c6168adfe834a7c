// Command termrank generates a ranked, category-balanced vocabulary list
// for a free-text context and writes it to stdout and a JSON file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"

	"github.com/aacvocab/termrank/internal/decor"
	"github.com/aacvocab/termrank/internal/embedding"
	"github.com/aacvocab/termrank/internal/generate"
	"github.com/aacvocab/termrank/internal/ranker"
	"github.com/aacvocab/termrank/internal/tagging"
	"github.com/aacvocab/termrank/pkg/config"
	"github.com/aacvocab/termrank/pkg/health"
	"github.com/aacvocab/termrank/pkg/logger"
	"github.com/aacvocab/termrank/pkg/metrics"
	pkgredis "github.com/aacvocab/termrank/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	contextText := flag.String("context", "", "context sentence to generate vocabulary for")
	outPath := flag.String("out", "ranked_terms.json", "path for the JSON result")
	decorate := flag.String("decorate", "lexicon", "decoration source: lexicon, llm, or none")
	flushCache := flag.Bool("flush-cache", false, "flush the Redis embedding cache and exit")
	flag.Parse()

	// .env carries OPENAI_API_KEY in local development; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if *contextText == "" && flag.NArg() > 0 {
		*contextText = strings.Join(flag.Args(), " ")
	}
	if *contextText == "" && !*flushCache {
		fmt.Fprintln(os.Stderr, "usage: termrank -context \"making dinner with friends\"")
		os.Exit(1)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "OPENAI_API_KEY environment variable not set")
		os.Exit(1)
	}
	client := openai.NewClient(apiKey)

	var m *metrics.Metrics
	checker := health.NewChecker()
	if cfg.Metrics.Enabled {
		m = metrics.New()
		shutdown := metrics.StartServer(cfg.Metrics.Port, checker)
		defer shutdown(context.Background())
	}
	checker.Register("openai", func(ctx context.Context) error {
		_, err := client.ListModels(ctx)
		return err
	})

	var svc embedding.Service = embedding.NewOpenAIService(client, cfg.Embedding.Model)
	var cached *embedding.CachedService
	if cfg.Redis.Enabled {
		redisClient, err := pkgredis.NewClient(cfg.Redis)
		if err != nil {
			slog.Warn("redis unavailable, embedding cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			checker.Register("redis", redisClient.Ping)
			cached = embedding.NewCachedService(svc, redisClient, cfg.Redis, m)
			svc = cached
			slog.Info("embedding cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
		}
	}
	if *flushCache {
		if cached == nil {
			fmt.Fprintln(os.Stderr, "-flush-cache requires a reachable Redis cache (redis.enabled or TR_REDIS_ADDR)")
			os.Exit(1)
		}
		if err := cached.Invalidate(context.Background()); err != nil {
			slog.Error("cache flush failed", "error", err)
			os.Exit(1)
		}
		return
	}
	embedder := embedding.NewAdapter(svc, cfg.Embedding, m)

	var decoration ranker.DecorationLookup
	switch *decorate {
	case "lexicon":
		decoration = decor.NewLexicon()
	case "llm":
		decoration = decor.NewOpenAI(client, cfg.Generator.Model)
	case "none":
	default:
		fmt.Fprintf(os.Stderr, "unknown decoration source %q\n", *decorate)
		os.Exit(1)
	}

	quotas, err := ranker.ParseQuotas(cfg.Ranking.Quotas)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid quota table: %v\n", err)
		os.Exit(1)
	}
	engine := ranker.New(embedder, tagging.NewLexicon(), decoration, m)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("generating candidates",
		"context", *contextText,
		"target", cfg.Ranking.PoolTarget,
		"model", cfg.Generator.Model,
	)
	generator := generate.New(client, cfg.Generator)
	candidates, err := generator.Generate(ctx, *contextText, cfg.Ranking.PoolTarget)
	if err != nil {
		slog.Error("candidate generation failed", "error", err)
		os.Exit(1)
	}

	result, err := engine.Rank(ctx, *contextText, candidates, ranker.Params{
		Budget: cfg.Ranking.Budget,
		Lambda: cfg.Ranking.Lambda,
		Quotas: quotas,
	})
	if err != nil {
		slog.Error("ranking failed", "error", err)
		os.Exit(1)
	}

	printResult(result)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		slog.Error("encoding result failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		slog.Error("writing result failed", "path", *outPath, "error", err)
		os.Exit(1)
	}
	if cached != nil {
		hits, misses := cached.Stats()
		slog.Info("embedding cache stats", "hits", hits, "misses", misses)
	}
	slog.Info("result written", "path", *outPath, "terms", len(result.Terms))
}

// printResult writes a per-category report to stdout.
func printResult(result *ranker.Result) {
	fmt.Printf("\nVocabulary for: %s\n\n", result.Context)
	for _, cat := range ranker.Categories {
		var lines []string
		for _, t := range result.Terms {
			if t.Category != cat {
				continue
			}
			line := fmt.Sprintf("  %-24s %.4f", t.Text, t.Score)
			if t.Decoration != "" {
				line = fmt.Sprintf("  %s %-22s %.4f", t.Decoration, t.Text, t.Score)
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Printf("[%s] (%d terms)\n", cat, len(lines))
		for _, line := range lines {
			fmt.Println(line)
		}
		fmt.Println()
	}
	for _, w := range result.Warnings {
		fmt.Printf("note: category %s has %d of %d requested terms (pool supplied %d)\n",
			w.Category, w.Selected, w.Minimum, w.Available)
	}
	fmt.Printf("Total: %d terms\n", len(result.Terms))
}
