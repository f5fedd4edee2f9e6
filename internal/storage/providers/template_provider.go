package providers

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobcard/internal/domains"
)

type TemplateProvider struct {
	db *pgxpool.Pool
}

func NewTemplateProvider(pg *pgxpool.Pool) *TemplateProvider {
	return &TemplateProvider{
		db: pg,
	}
}

type templateRow struct {
	ID        int64  `db:"id"`
	Type      string `db:"type"`
	Question  string `db:"question"`
	InputType string `db:"input_type"`
	Order     int    `db:"order"`
}

// ListTemplatesByType returns the checklist of typ in display order.
func (s *TemplateProvider) ListTemplatesByType(ctx context.Context, typ string) ([]domains.ChecklistTemplate, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, type, question, input_type, "order"
        FROM checklist_templates
        WHERE type = $1
        ORDER BY "order", id`, typ)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	scanned, err := pgx.CollectRows(rows, pgx.RowToStructByName[templateRow])
	if err != nil {
		return nil, fmt.Errorf("collect templates: %w", err)
	}

	templates := make([]domains.ChecklistTemplate, 0, len(scanned))
	for _, r := range scanned {
		kind, err := domains.ParseInputKind(r.InputType)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", r.ID, err)
		}
		templates = append(templates, domains.ChecklistTemplate{
			ID:        r.ID,
			Type:      r.Type,
			Question:  r.Question,
			InputKind: kind,
			Order:     r.Order,
		})
	}
	return templates, nil
}

func (s *TemplateProvider) ListTypes(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT DISTINCT type FROM checklist_templates ORDER BY type`)
	if err != nil {
		return nil, fmt.Errorf("query types: %w", err)
	}
	types, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect types: %w", err)
	}
	return types, nil
}
