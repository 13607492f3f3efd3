package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/kit-start/kitstart/internal/config"
	"github.com/kit-start/kitstart/internal/docview"
	"github.com/kit-start/kitstart/internal/domain/document"
	"github.com/kit-start/kitstart/internal/domain/project"
	"github.com/kit-start/kitstart/internal/localstore"
	"github.com/kit-start/kitstart/internal/notify"
	"github.com/kit-start/kitstart/internal/remote"
	"github.com/kit-start/kitstart/internal/resource"
	"github.com/kit-start/kitstart/internal/session"
)

func main() {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureStoreDir(cfg.Store.Path); err != nil {
		logger.Error("failed to prepare store path", "error", err)
		os.Exit(1)
	}

	db, err := localstore.New(cfg.Store.Path)
	if err != nil {
		logger.Error("failed to open local store", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	db.SetLatency(cfg.Store.Latency)

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := db.Seed(ctx); err != nil {
		logger.Error("failed to seed demo data", "error", err)
		os.Exit(1)
	}

	sessions := session.NewStore(db, logger)
	if token := os.Getenv("KITSTART_ACCESS_TOKEN"); token != "" {
		if err := sessions.SetToken(ctx, token); err != nil {
			logger.Warn("failed to persist access token", "error", err)
		}
	}

	client := remote.New(cfg.API.BaseURL, sessions, logger,
		remote.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))

	projectStore := localstore.NewProjectStore(db)
	documentStore := localstore.NewDocumentStore(db)

	cache := resource.NewCache()
	projectSrc := resource.NewProjects(sessions, remote.NewProjects(client), projectStore, cache, logger)
	fieldSrc := resource.NewFields(sessions, remote.NewFields(client), projectStore, cache, logger)
	documentSrc := resource.NewDocuments(sessions, remote.NewDocuments(client), documentStore, cache, logger)

	projects := project.NewService(projectSrc, fieldSrc, logger)
	documents := document.NewService(documentSrc, logger)

	notifier := notify.NewService(logger)
	notifier.Subscribe(notify.SinkFunc(func(e notify.Event) {
		fmt.Printf("[%s] %s\n", e.Level, e.Message)
	}))

	if err := runWalkthrough(ctx, projects, documents, notifier, logger); err != nil {
		logger.Error("walkthrough failed", "error", err)
		os.Exit(1)
	}
}

// runWalkthrough exercises the data layer end to end: list projects,
// show one project's documents, render the first document.
func runWalkthrough(ctx context.Context, projects *project.Service, documents *document.Service, notifier *notify.Service, logger *slog.Logger) error {
	list, err := projects.List(ctx)
	if err != nil {
		notifier.HandleAPIError(err)
		return err
	}
	fmt.Printf("Проекты (%d):\n", len(list))
	for _, p := range list {
		fmt.Printf("  %s — %s (%d%%)\n", p.Name, p.Field.Name, p.Progress)
	}
	if len(list) == 0 {
		return nil
	}

	first := list[0]
	info, err := projects.Get(ctx, first.ID)
	if err != nil {
		notifier.HandleAPIError(err)
		return err
	}
	fmt.Printf("\nПроект «%s»: документов готово %d\n", info.Name, info.DocumentsDone)

	docs, err := documents.List(ctx, first.ID)
	if err != nil {
		notifier.HandleAPIError(err)
		return err
	}
	for _, d := range docs {
		fmt.Printf("  документ: %s\n", d.Name)
	}
	if len(docs) == 0 {
		return nil
	}

	viewer := docview.Open(docs[0], logger)
	text := viewer.Render()
	if warning := viewer.Warning(); warning != "" {
		notifier.Warning(warning)
	}
	fmt.Printf("\n%s\n", text)
	return nil
}

func ensureStoreDir(path string) error {
	if strings.HasPrefix(path, "file:") || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
