// exportattrs writes the attribute table of a stored vector layer to an
// XLSX workbook.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jcordova-gis/geoingest/internal/export"
	repo "github.com/jcordova-gis/geoingest/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	project := flag.String("project", "", "project id (UUID)")
	layer := flag.String("layer", "", "layer name")
	out := flag.String("o", "attributes.xlsx", "output workbook path")
	timeout := flag.Duration("timeout", 2*time.Minute, "export timeout")
	flag.Parse()

	projectID, err := uuid.Parse(*project)
	if err != nil || *layer == "" {
		logger.Error("usage", "cmd", "exportattrs -project <uuid> -layer <name> [-o out.xlsx]")
		os.Exit(2)
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dbURL,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	features := repo.NewVectorFeatureRepository(entc, logger)
	svc := export.NewService(features, logger)

	start := time.Now()
	workbook, err := svc.ExportAttributesXLSX(ctx, projectID, *layer)
	if err != nil {
		logger.Error("export failed", "layer", *layer, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}
	if err := os.WriteFile(*out, workbook, 0o644); err != nil {
		logger.Error("write workbook", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("export OK",
		"layer", *layer,
		"output", *out,
		"bytes", len(workbook),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
