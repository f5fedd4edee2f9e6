// Package app wires configuration into the storage, report and service layers shared by
// the HTTP server and the command line tool.
package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"jobcard/internal/blob"
	"jobcard/internal/checklist"
	"jobcard/internal/config"
	"jobcard/internal/report"
	"jobcard/internal/service"
	"jobcard/internal/storage"
	"jobcard/internal/storage/providers"
)

type App struct {
	DB        *pgxpool.Pool
	Providers *providers.Providers
	Sessions  *checklist.Store
	Catalog   *service.CatalogService
	Reports   *service.ReportService
	JobCards  *service.JobCardService
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := storage.InitDB(ctx, cfg.DatabaseUrl, storage.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	}, logger)
	if err != nil {
		return nil, err
	}

	location, err := cfg.Report.Location()
	if err != nil {
		db.Close()
		return nil, err
	}

	// A nil interface, not a nil *blob.Store, when no bucket is configured.
	var blobs service.BlobStore
	if cfg.Blob.Enabled() {
		store, err := blob.New(ctx, cfg.Blob)
		if err != nil {
			db.Close()
			return nil, err
		}
		blobs = store
		logger.Info("report bucket configured", zap.String("bucket", cfg.Blob.Bucket))
	} else {
		logger.Warn("no report bucket configured, reports will not be stored")
	}

	all := providers.New(db)
	sessions := checklist.NewStore()
	assembler := report.NewAssembler(all.ReportSource(), location, logger.Named("report"))
	reports := service.NewReportService(assembler, blobs, all.ReportProvider, logger.Named("report"))

	return &App{
		DB:        db,
		Providers: all,
		Sessions:  sessions,
		Catalog:   service.NewCatalogService(all.TemplateProvider, all.JobCardProvider, logger.Named("catalog")),
		Reports:   reports,
		JobCards: service.NewJobCardService(
			all.TemplateProvider,
			all.EngineerProvider,
			all.JobCardProvider,
			reports,
			sessions,
			cfg.Report.Persist,
			logger.Named("jobcard"),
		),
	}, nil
}

func (a *App) Close() {
	a.DB.Close()
}
