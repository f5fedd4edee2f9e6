package providers

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobcard/internal/domains"
)

type ReportProvider struct {
	db *pgxpool.Pool
}

func NewReportProvider(db *pgxpool.Pool) *ReportProvider {
	return &ReportProvider{
		db: db,
	}
}

// UpsertPdfFile records where the report of a job card was stored. A job card keeps a
// single pointer; storing again replaces it.
func (r *ReportProvider) UpsertPdfFile(ctx context.Context, file domains.PdfFile) (domains.PdfFile, error) {
	rows, err := r.db.Query(ctx, `
        INSERT INTO pdf_files (job_card_id, file_name, file_url)
        VALUES ($1, $2, $3)
        ON CONFLICT (job_card_id) DO UPDATE
        SET file_name = EXCLUDED.file_name,
            file_url = EXCLUDED.file_url,
            created_at = NOW()
        RETURNING id, job_card_id, file_name, file_url, created_at`,
		file.JobCardID, file.FileName, file.FileURL)
	if err != nil {
		return domains.PdfFile{}, mapError(err)
	}
	saved, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.PdfFile])
	if err != nil {
		return domains.PdfFile{}, mapError(err)
	}
	return saved, nil
}

func (r *ReportProvider) GetPdfFile(ctx context.Context, jobCardID int64) (domains.PdfFile, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, job_card_id, file_name, file_url, created_at
        FROM pdf_files
        WHERE job_card_id = $1`, jobCardID)
	if err != nil {
		return domains.PdfFile{}, err
	}
	file, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.PdfFile])
	if err != nil {
		return domains.PdfFile{}, mapError(err)
	}
	return file, nil
}
