package httptransport

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"jobcard/internal/domains"
	"jobcard/internal/httpx"
	"jobcard/internal/service"
)

type CatalogServices interface {
	ListTypes(ctx context.Context) ([]string, error)
	ListTemplates(ctx context.Context, typ string) ([]domains.ChecklistTemplate, error)
	RecentJobCards(ctx context.Context, limit int) ([]domains.JobCardSummary, error)
}

type CatalogHandlers struct {
	service CatalogServices
	logger  *zap.Logger
}

func NewCatalogHandlers(service CatalogServices, logger *zap.Logger) *CatalogHandlers {
	return &CatalogHandlers{
		service: service,
		logger:  logger,
	}
}

func (h *CatalogHandlers) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListTypes(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if types == nil {
		types = []string{}
	}
	httpx.JSON(w, http.StatusOK, types)
}

func (h *CatalogHandlers) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.ListTemplates(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if templates == nil {
		templates = []domains.ChecklistTemplate{}
	}
	httpx.JSON(w, http.StatusOK, templates)
}

func (h *CatalogHandlers) RecentJobCards(w http.ResponseWriter, r *http.Request) {
	limit, err := httpx.QueryInt(r, "limit", service.DefaultRecentLimit)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	cards, err := h.service.RecentJobCards(r.Context(), limit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if cards == nil {
		cards = []domains.JobCardSummary{}
	}
	httpx.JSON(w, http.StatusOK, cards)
}
