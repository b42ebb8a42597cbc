package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Divas-Gupta30/doc-qa-agent/internal/cache"
	"github.com/Divas-Gupta30/doc-qa-agent/internal/config"
	"github.com/Divas-Gupta30/doc-qa-agent/internal/ingestion"
	"github.com/Divas-Gupta30/doc-qa-agent/internal/llm"
	"github.com/Divas-Gupta30/doc-qa-agent/internal/pipeline"
	"github.com/Divas-Gupta30/doc-qa-agent/internal/processing"
	"github.com/Divas-Gupta30/doc-qa-agent/internal/retrieval"
	"github.com/Divas-Gupta30/doc-qa-agent/internal/server"
	"github.com/Divas-Gupta30/doc-qa-agent/internal/storage"
)

func main() {
	indexCmd := flag.NewFlagSet("index", flag.ExitOnError)
	indexPath := indexCmd.String("path", "./data", "path to folder to index")
	indexDrive := indexCmd.String("drive-folder", "", "Google Drive folder ID to index instead of a local path")

	queryCmd := flag.NewFlagSet("query", flag.ExitOnError)
	queryText := queryCmd.String("q", "", "question to answer")

	if len(os.Args) < 2 {
		fmt.Println("Usage: agent <index|query|serve> [flags]")
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	ctx := context.Background()

	pool, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db init", zap.Error(err))
	}
	store := storage.NewPassageStore(pool)

	embedder, err := processing.NewEmbedder(processing.EmbedderConfig{
		BaseURL: cfg.OpenAIBaseURL,
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.EmbeddingModel,
	})
	if err != nil {
		logger.Fatal("embedder init", zap.Error(err))
	}

	switch os.Args[1] {
	case "index":
		indexCmd.Parse(os.Args[2:])
		runIndex(ctx, cfg, logger, store, embedder, *indexPath, *indexDrive)

	case "query":
		queryCmd.Parse(os.Args[2:])
		if *queryText == "" {
			fmt.Println("Please provide -q \"your question\"")
			os.Exit(1)
		}
		p := buildPipeline(cfg, logger, store, embedder)
		ans, err := p.Answer(ctx, *queryText)
		if err != nil {
			logger.Fatal("pipeline", zap.Error(err))
		}
		fmt.Println("Answer:", ans.Answer)
		for _, c := range ans.Citations {
			fmt.Printf("  [%s] %s p.%s: %s\n", c.ID, c.Source, c.Page, c.Snippet)
		}

	case "serve":
		p := buildPipeline(cfg, logger, store, embedder)
		runServer(ctx, cfg, logger, p)

	default:
		fmt.Println("expected 'index', 'query' or 'serve' subcommands")
		os.Exit(1)
	}
}

func buildPipeline(cfg *config.Config, logger *zap.Logger, store *storage.PassageStore, embedder *processing.Embedder) *pipeline.Pipeline {
	gen, err := llm.NewClient(llm.Config{
		BaseURL: cfg.OpenAIBaseURL,
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.ChatModel,
	})
	if err != nil {
		logger.Fatal("llm init", zap.Error(err))
	}
	adapter := retrieval.NewAdapter(embedder, store, logger)
	return pipeline.New(adapter, gen,
		pipeline.WithK(cfg.RetrievalK),
		pipeline.WithLogger(logger))
}

func runIndex(ctx context.Context, cfg *config.Config, logger *zap.Logger, store *storage.PassageStore, embedder *processing.Embedder, path, driveFolder string) {
	if err := store.EnsureSchema(ctx, cfg.EmbeddingDim); err != nil {
		logger.Fatal("schema", zap.Error(err))
	}

	var files []string
	var err error
	if driveFolder != "" {
		loader, derr := ingestion.NewDriveLoader(ctx, cfg.DriveAccessToken)
		if derr != nil {
			logger.Fatal("drive init", zap.Error(derr))
		}
		files, err = loader.Download(ctx, driveFolder, filepath.Join(os.TempDir(), "docqa-drive"))
	} else {
		files, err = ingestion.LoadLocalFiles(path)
	}
	if err != nil {
		logger.Fatal("load files", zap.Error(err))
	}

	for _, f := range files {
		logger.Info("indexing", zap.String("file", f))
		pages, err := ingestion.ExtractPages(f)
		if err != nil {
			logger.Warn("skip file", zap.String("file", f), zap.Error(err))
			continue
		}
		source := filepath.Base(f)
		for _, page := range pages {
			chunks := processing.ChunkText(page.Text)
			if len(chunks) == 0 {
				continue
			}
			embs, err := embedder.EmbedChunks(ctx, chunks)
			if err != nil {
				logger.Warn("embed error", zap.String("file", f), zap.Error(err))
				continue
			}
			pageLabel := retrieval.PageUnknown
			if page.Number > 0 {
				pageLabel = strconv.Itoa(page.Number)
			}
			for i := range chunks {
				if err := store.InsertPassage(ctx, source, pageLabel, chunks[i], embs[i]); err != nil {
					logger.Warn("db insert error", zap.Error(err))
				}
			}
		}
	}
	fmt.Println("Indexing complete.")
}

func runServer(ctx context.Context, cfg *config.Config, logger *zap.Logger, p *pipeline.Pipeline) {
	answerCache := cache.New(cache.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.CacheTTL,
	}, logger)
	defer answerCache.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := answerCache.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, serving without cache", zap.Error(err))
		answerCache = nil
	}

	srv := server.New(p, answerCache, logger)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Router(),
	}

	go func() {
		logger.Info("QA server starting", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("shutting down gracefully")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
