package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jobcard/internal/domains"
)

const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

type TemplateProvider interface {
	ListTemplatesByType(ctx context.Context, typ string) ([]domains.ChecklistTemplate, error)
	ListTypes(ctx context.Context) ([]string, error)
}

type JobCardLister interface {
	RecentJobCards(ctx context.Context, limit int) ([]domains.JobCardSummary, error)
}

// CatalogService serves the read-only lists: maintenance types, their checklists and the
// latest job cards.
type CatalogService struct {
	templates TemplateProvider
	jobCards  JobCardLister
	logger    *zap.Logger
}

func NewCatalogService(templates TemplateProvider, jobCards JobCardLister, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		templates: templates,
		jobCards:  jobCards,
		logger:    logger,
	}
}

func (c *CatalogService) ListTypes(ctx context.Context) ([]string, error) {
	types, err := c.templates.ListTypes(ctx)
	if err != nil {
		c.logger.Error("list maintenance types", zap.Error(err))
		return nil, &TemplateFetchError{Err: err}
	}
	return types, nil
}

func (c *CatalogService) ListTemplates(ctx context.Context, typ string) ([]domains.ChecklistTemplate, error) {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return nil, ErrInvalidMaintenance
	}
	templates, err := c.templates.ListTemplatesByType(ctx, typ)
	if err != nil {
		c.logger.Error("list templates", zap.String("type", typ), zap.Error(err))
		return nil, &TemplateFetchError{Type: typ, Err: err}
	}
	return templates, nil
}

// RecentJobCards returns the newest job cards by date in, numbered JC0001 onwards by id.
func (c *CatalogService) RecentJobCards(ctx context.Context, limit int) ([]domains.JobCardSummary, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	limit = min(limit, MaxRecentLimit)

	cards, err := c.jobCards.RecentJobCards(ctx, limit)
	if err != nil {
		c.logger.Error("recent job cards", zap.Error(err))
		return nil, err
	}
	for i := range cards {
		cards[i].JobCardNo = JobCardNumber(cards[i].ID)
	}
	return cards, nil
}

func JobCardNumber(id int64) string {
	return fmt.Sprintf("JC%04d", id)
}
