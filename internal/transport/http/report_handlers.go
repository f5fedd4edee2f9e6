package httptransport

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"jobcard/internal/domains"
	"jobcard/internal/httpx"
)

const (
	ReportURLHeader          = "X-Report-URL"
	ReportStorageErrorHeader = "X-Report-Storage-Error"
)

type ReportServices interface {
	Generate(ctx context.Context, jobCardID int64, persist bool) (domains.ReportResult, error)
	LatestPointer(ctx context.Context, jobCardID int64) (domains.PdfFile, error)
}

type ReportHandlers struct {
	service ReportServices
	logger  *zap.Logger
}

func NewReportHandlers(service ReportServices, logger *zap.Logger) *ReportHandlers {
	return &ReportHandlers{
		service: service,
		logger:  logger,
	}
}

// Render streams the PDF of a job card. With persist=true the report is also uploaded;
// the outcome of the upload is reported in response headers.
func (h *ReportHandlers) Render(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	persist, err := httpx.QueryBool(r, "persist", false)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.Generate(r.Context(), id, persist)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Document)))
	if res.FileURL != "" {
		w.Header().Set(ReportURLHeader, res.FileURL)
	}
	if res.StorageError != "" {
		w.Header().Set(ReportStorageErrorHeader, res.StorageError)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Document); err != nil {
		h.logger.Warn("write report", zap.Int64("job_card_id", id), zap.Error(err))
	}
}

func (h *ReportHandlers) Pointer(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	file, err := h.service.LatestPointer(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, file)
}
