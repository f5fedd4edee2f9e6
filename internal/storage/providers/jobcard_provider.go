package providers

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobcard/internal/domains"
	"jobcard/internal/storage"
)

const (
	StageBegin        = "begin"
	StageInsertJob    = "insert job card"
	StageInsertAnswer = "insert answers"
	StageCommit       = "commit"
)

type JobCardProvider struct {
	db *pgxpool.Pool
}

func NewJobCardProvider(db *pgxpool.Pool) *JobCardProvider {
	return &JobCardProvider{
		db: db,
	}
}

// SaveJobCard inserts the job card and its answer rows in one transaction and returns
// the new id. Nothing is written when any step fails.
func (s *JobCardProvider) SaveJobCard(ctx context.Context, job domains.JobCardToSave, answers []domains.AnswerRecord) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, &storage.TxError{Stage: StageBegin, Err: err}
	}
	defer tx.Rollback(ctx)

	var jobID int64
	err = tx.QueryRow(ctx, `
          INSERT INTO job_cards (
              inspector_id, customer_name, date_in, date_out, total_hours,
              remarks, customer_sign_name, customer_signature, inspector_signature, type
          )
          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
          RETURNING id`,
		job.InspectorID,
		job.CustomerName,
		job.DateIn,
		job.DateOut,
		job.TotalSeconds,
		job.Remarks,
		job.CustomerSignName,
		job.CustomerSignature,
		job.InspectorSignature,
		job.Type,
	).Scan(&jobID)
	if err != nil {
		return 0, &storage.TxError{Stage: StageInsertJob, Err: mapError(err)}
	}

	if len(answers) > 0 {
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"answers"},
			[]string{"job_card_id", "template_id", "answer"},
			pgx.CopyFromSlice(len(answers), func(i int) ([]any, error) {
				return []any{jobID, answers[i].TemplateID, answers[i].Answer}, nil
			}),
		)
		if err != nil {
			return 0, &storage.TxError{Stage: StageInsertAnswer, Err: mapError(err)}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, &storage.TxError{Stage: StageCommit, Err: err}
	}
	return jobID, nil
}

func (s *JobCardProvider) GetJobCardByID(ctx context.Context, id int64) (domains.JobCard, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, inspector_id, customer_name, date_in,
               COALESCE(date_out, date_in) AS date_out,
               COALESCE(total_hours, 0) AS total_hours,
               COALESCE(remarks, '') AS remarks,
               COALESCE(customer_sign_name, '') AS customer_sign_name,
               COALESCE(customer_signature, '') AS customer_signature,
               COALESCE(inspector_signature, '') AS inspector_signature,
               type
        FROM job_cards
        WHERE id = $1`, id)
	if err != nil {
		return domains.JobCard{}, err
	}
	job, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.JobCard])
	if err != nil {
		return domains.JobCard{}, mapError(err)
	}
	return job, nil
}

type answerRow struct {
	TemplateID int64  `db:"template_id"`
	Answer     string `db:"answer"`
	Question   string `db:"question"`
	Order      int    `db:"order"`
	InputType  string `db:"input_type"`
}

// ListAnswersWithTemplates returns the answers of a job card joined with their
// checklist questions, ordered by template id.
func (s *JobCardProvider) ListAnswersWithTemplates(ctx context.Context, jobCardID int64) ([]domains.AnswerWithTemplate, error) {
	rows, err := s.db.Query(ctx, `
        SELECT a.template_id, COALESCE(a.answer, '') AS answer,
               t.question, t."order", t.input_type
        FROM answers a
        JOIN checklist_templates t ON t.id = a.template_id
        WHERE a.job_card_id = $1
        ORDER BY a.template_id`, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	scanned, err := pgx.CollectRows(rows, pgx.RowToStructByName[answerRow])
	if err != nil {
		return nil, fmt.Errorf("collect answers: %w", err)
	}

	answers := make([]domains.AnswerWithTemplate, 0, len(scanned))
	for _, r := range scanned {
		kind, err := domains.ParseInputKind(r.InputType)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", r.TemplateID, err)
		}
		answers = append(answers, domains.AnswerWithTemplate{
			TemplateID: r.TemplateID,
			Answer:     r.Answer,
			Question:   r.Question,
			Order:      r.Order,
			InputKind:  kind,
		})
	}
	return answers, nil
}

// RecentJobCards returns the newest job cards by date in.
func (s *JobCardProvider) RecentJobCards(ctx context.Context, limit int) ([]domains.JobCardSummary, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, type, customer_name, date_in
        FROM job_cards
        ORDER BY date_in DESC, id DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query job cards: %w", err)
	}
	cards, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.JobCardSummary])
	if err != nil {
		return nil, fmt.Errorf("collect job cards: %w", err)
	}
	return cards, nil
}
