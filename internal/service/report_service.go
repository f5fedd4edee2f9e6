package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"jobcard/internal/domains"
	"jobcard/internal/report"
	"jobcard/internal/storage"
)

const reportContentType = "application/pdf"

type Renderer interface {
	Render(ctx context.Context, jobCardID int64) (*report.Document, error)
}

// BlobStore uploads report bytes and returns the public URL.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type PointerProvider interface {
	UpsertPdfFile(ctx context.Context, file domains.PdfFile) (domains.PdfFile, error)
	GetPdfFile(ctx context.Context, jobCardID int64) (domains.PdfFile, error)
}

type ReportService struct {
	renderer Renderer
	blobs    BlobStore
	pointers PointerProvider
	logger   *zap.Logger
}

// NewReportService builds the report publisher. blobs may be nil when no bucket is
// configured; persisting then reports ErrBlobStoreDisabled.
func NewReportService(renderer Renderer, blobs BlobStore, pointers PointerProvider, logger *zap.Logger) *ReportService {
	return &ReportService{
		renderer: renderer,
		blobs:    blobs,
		pointers: pointers,
		logger:   logger,
	}
}

func ObjectKey(jobCardID int64, fileName string) string {
	return fmt.Sprintf("job-cards/%d/%s", jobCardID, fileName)
}

// Generate renders the report of a job card and, when persist is set, uploads it and
// records the pointer row. Storage failures are reported in the result, never as an error.
func (r *ReportService) Generate(ctx context.Context, jobCardID int64, persist bool) (domains.ReportResult, error) {
	doc, err := r.renderer.Render(ctx, jobCardID)
	if err != nil {
		r.logger.Error("render report", zap.Int64("job_card_id", jobCardID), zap.Error(err))
		return domains.ReportResult{}, err
	}

	result := domains.ReportResult{
		JobCardID: jobCardID,
		FileName:  doc.FileName,
		Document:  doc.Bytes,
	}
	if !persist {
		return result, nil
	}

	url, err := r.store(ctx, doc)
	result.FileURL = url
	if err != nil {
		r.logger.Warn("report not stored",
			zap.Int64("job_card_id", jobCardID),
			zap.String("file_name", doc.FileName),
			zap.Error(err))
		result.StorageError = err.Error()
	}
	return result, nil
}

// store uploads doc and writes the pointer. The URL is returned even when only the
// pointer write failed.
func (r *ReportService) store(ctx context.Context, doc *report.Document) (string, error) {
	if r.blobs == nil {
		return "", &BlobStoreError{Op: "upload", Err: ErrBlobStoreDisabled}
	}

	key := ObjectKey(doc.JobCardID, doc.FileName)
	url, err := r.blobs.Put(ctx, key, doc.Bytes, reportContentType)
	if err != nil {
		return "", &BlobStoreError{Op: "upload", Err: err}
	}

	_, err = r.pointers.UpsertPdfFile(ctx, domains.PdfFile{
		JobCardID: doc.JobCardID,
		FileName:  doc.FileName,
		FileURL:   url,
	})
	if err != nil {
		return url, &BlobStoreError{Op: "record pointer", Err: err}
	}

	r.logger.Info("report stored", zap.Int64("job_card_id", doc.JobCardID), zap.String("url", url))
	return url, nil
}

// LatestPointer returns where the report of a job card was last stored.
func (r *ReportService) LatestPointer(ctx context.Context, jobCardID int64) (domains.PdfFile, error) {
	file, err := r.pointers.GetPdfFile(ctx, jobCardID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domains.PdfFile{}, fmt.Errorf("job card %d: %w", jobCardID, ErrReportNotStored)
		}
		return domains.PdfFile{}, err
	}
	return file, nil
}
