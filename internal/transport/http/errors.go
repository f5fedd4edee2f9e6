package httptransport

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"jobcard/internal/checklist"
	"jobcard/internal/httpx"
	"jobcard/internal/payload"
	"jobcard/internal/report"
	"jobcard/internal/service"
)

// writeError maps domain errors onto HTTP statuses. Unknown errors are logged and
// answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var (
		validationErr *service.ValidationError
		signatureErr  *service.SignatureMissingError
		fetchErr      *service.TemplateFetchError
		persistErr    *service.PersistenceError
		notFoundErr   *report.NotFoundError
		refErr        *report.ReferenceResolutionError
	)

	switch {
	case errors.As(err, &validationErr):
		details := append(append([]string{}, validationErr.Missing...), validationErr.Invalid...)
		httpx.Error(w, http.StatusUnprocessableEntity, validationErr.Error(), details...)
	case errors.As(err, &signatureErr):
		httpx.Error(w, http.StatusUnprocessableEntity, signatureErr.Error())
	case errors.Is(err, checklist.ErrSessionNotFound),
		errors.Is(err, service.ErrInspectorNotFound),
		errors.Is(err, service.ErrReportNotStored),
		errors.As(err, &notFoundErr):
		httpx.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, checklist.ErrNoTypeSelected):
		httpx.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, checklist.ErrIndexOutOfRange),
		errors.Is(err, checklist.ErrNotImageInput),
		errors.Is(err, payload.ErrNotImage),
		errors.Is(err, service.ErrInvalidMaintenance):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &fetchErr):
		logger.Error("template store unavailable", zap.String("path", r.URL.Path), zap.Error(err))
		httpx.Error(w, http.StatusServiceUnavailable, "checklist templates unavailable")
	case errors.As(err, &refErr):
		logger.Error("dangling inspector reference", zap.Int64("job_card_id", refErr.JobCardID), zap.Error(err))
		httpx.Error(w, http.StatusConflict, err.Error())
	case errors.As(err, &persistErr):
		logger.Error("job card not saved", zap.String("stage", persistErr.Stage), zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "job card could not be saved")
	default:
		logger.Error("request failed",
			zap.String("request_id", httpx.RequestIDFromContext(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}
