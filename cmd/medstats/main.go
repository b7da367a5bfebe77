package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/medintake/docpipeline/internal/common"
	"github.com/medintake/docpipeline/internal/repository"
	"github.com/medintake/docpipeline/internal/stats"
)

func main() {
	dbPath := flag.String("db", "", "processing log path (overrides DOCPIPE_DB_PATH)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	db, err := repository.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open processing log", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	svc := stats.NewService(repository.NewDocumentRepository(db, logger), logger)
	out, err := svc.Stats(context.Background())
	if err != nil {
		logger.Error("failed to compute stats", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode stats: %v\n", err)
		os.Exit(1)
	}
}
