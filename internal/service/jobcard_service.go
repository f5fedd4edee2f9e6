package service

import (
	"cmp"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobcard/internal/checklist"
	"jobcard/internal/domains"
	"jobcard/internal/payload"
	"jobcard/internal/storage"
)

type EngineerProvider interface {
	GetEngineerByID(ctx context.Context, id int64) (domains.Engineer, error)
}

type JobCardSaver interface {
	SaveJobCard(ctx context.Context, job domains.JobCardToSave, answers []domains.AnswerRecord) (int64, error)
}

// ReportGenerator is the part of ReportService used after a submission.
type ReportGenerator interface {
	Generate(ctx context.Context, jobCardID int64, persist bool) (domains.ReportResult, error)
}

// Submission is the outcome of a successful submit. ReportNote is set when the job card
// was saved but its report could not be produced.
type Submission struct {
	JobCardID  int64                 `json:"job_card_id"`
	JobCardNo  string                `json:"job_card_no"`
	Report     *domains.ReportResult `json:"report,omitempty"`
	ReportNote string                `json:"report_note,omitempty"`
}

type JobCardService struct {
	templates     TemplateProvider
	engineers     EngineerProvider
	jobCards      JobCardSaver
	reports       ReportGenerator
	sessions      *checklist.Store
	persistReport bool
	logger        *zap.Logger
}

func NewJobCardService(
	templates TemplateProvider,
	engineers EngineerProvider,
	jobCards JobCardSaver,
	reports ReportGenerator,
	sessions *checklist.Store,
	persistReport bool,
	logger *zap.Logger,
) *JobCardService {
	return &JobCardService{
		templates:     templates,
		engineers:     engineers,
		jobCards:      jobCards,
		reports:       reports,
		sessions:      sessions,
		persistReport: persistReport,
		logger:        logger,
	}
}

// StartSession opens a capture form for the inspector, prefilled with their name.
func (s *JobCardService) StartSession(ctx context.Context, inspectorID int64) (checklist.Session, error) {
	engineer, err := s.engineers.GetEngineerByID(ctx, inspectorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return checklist.Session{}, ErrInspectorNotFound
		}
		return checklist.Session{}, err
	}
	sess := s.sessions.Create(engineer.ID, engineer.Name)
	s.logger.Info("session started", zap.String("session_id", sess.ID.String()), zap.Int64("inspector_id", engineer.ID))
	return sess, nil
}

func (s *JobCardService) Session(id uuid.UUID) (checklist.Session, error) {
	return s.sessions.Get(id)
}

func (s *JobCardService) DiscardSession(id uuid.UUID) error {
	if !s.sessions.Delete(id) {
		return checklist.ErrSessionNotFound
	}
	return nil
}

// SelectType loads the ordered checklist of typ and switches the session to it.
func (s *JobCardService) SelectType(ctx context.Context, id uuid.UUID, typ string) (checklist.Session, error) {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return checklist.Session{}, ErrInvalidMaintenance
	}
	if _, err := s.sessions.Get(id); err != nil {
		return checklist.Session{}, err
	}

	templates, err := s.templates.ListTemplatesByType(ctx, typ)
	if err != nil {
		s.logger.Error("load checklist", zap.String("type", typ), zap.Error(err))
		return checklist.Session{}, &TemplateFetchError{Type: typ, Err: err}
	}

	return s.sessions.Update(id, func(sess *checklist.Session) error {
		sess.SelectType(typ, templates)
		return nil
	})
}

func (s *JobCardService) SetAnswer(id uuid.UUID, index int, value string) (checklist.Session, error) {
	return s.sessions.Update(id, func(sess *checklist.Session) error {
		return sess.SetAnswer(index, value)
	})
}

func (s *JobCardService) SetImage(id uuid.UUID, index int, image string) (checklist.Session, error) {
	return s.sessions.Update(id, func(sess *checklist.Session) error {
		return sess.SetImage(index, image)
	})
}

func (s *JobCardService) ClearImage(id uuid.UUID, index int) (checklist.Session, error) {
	return s.sessions.Update(id, func(sess *checklist.Session) error {
		return sess.ClearImage(index)
	})
}

// SetCommonFields replaces the free-text fields. Signatures are left untouched.
func (s *JobCardService) SetCommonFields(id uuid.UUID, fields checklist.CommonFields) (checklist.Session, error) {
	return s.sessions.Update(id, func(sess *checklist.Session) error {
		fields.InspectorSignature = sess.Common.InspectorSignature
		fields.CustomerSignature = sess.Common.CustomerSignature
		sess.Common = fields
		return nil
	})
}

// SetSignatures stores the captured signatures. An empty value clears one.
func (s *JobCardService) SetSignatures(id uuid.UUID, inspector, customer string) (checklist.Session, error) {
	for _, sig := range []string{inspector, customer} {
		if sig != "" && !payload.IsImage(sig) {
			return checklist.Session{}, payload.ErrNotImage
		}
	}
	return s.sessions.Update(id, func(sess *checklist.Session) error {
		sess.Common.InspectorSignature = inspector
		sess.Common.CustomerSignature = customer
		return nil
	})
}

func (s *JobCardService) Missing(id uuid.UUID) ([]string, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	return sess.Missing(), nil
}

// Submit validates the session against the current checklist of its type, saves the job
// card with one answer per question and closes the session. The session is held out of
// the store while the submission runs and is put back if it fails. The report is
// rendered afterwards; a report failure does not undo the submission.
func (s *JobCardService) Submit(ctx context.Context, id uuid.UUID) (Submission, error) {
	sess, err := s.sessions.Take(id)
	if err != nil {
		return Submission{}, err
	}
	jobID, job, answers, err := s.save(ctx, sess)
	if err != nil {
		s.sessions.Restore(sess)
		return Submission{}, err
	}

	s.logger.Info("job card submitted",
		zap.Int64("job_card_id", jobID),
		zap.String("type", job.Type),
		zap.Int("answers", answers))

	sub := Submission{JobCardID: jobID, JobCardNo: JobCardNumber(jobID)}
	if s.reports == nil {
		return sub, nil
	}
	result, err := s.reports.Generate(ctx, jobID, s.persistReport)
	if err != nil {
		sub.ReportNote = err.Error()
		return sub, nil
	}
	sub.Report = &result
	return sub, nil
}

func (s *JobCardService) save(ctx context.Context, sess checklist.Session) (int64, domains.JobCardToSave, int, error) {
	if sess.Type == "" {
		return 0, domains.JobCardToSave{}, 0, checklist.ErrNoTypeSelected
	}

	templates, err := s.templates.ListTemplatesByType(ctx, sess.Type)
	if err != nil {
		return 0, domains.JobCardToSave{}, 0, &TemplateFetchError{Type: sess.Type, Err: err}
	}

	draft := sess.Drafts.Get(sess.Type)
	if missing := checklist.Validate(templates, draft, sess.Common); len(missing) > 0 {
		return 0, domains.JobCardToSave{}, 0, &ValidationError{Missing: missing}
	}

	job, err := buildJobCard(sess)
	if err != nil {
		return 0, domains.JobCardToSave{}, 0, err
	}

	jobID, err := s.jobCards.SaveJobCard(ctx, job, checklist.ToAnswerRecords(templates, draft))
	if err != nil {
		s.logger.Error("save job card", zap.String("session_id", sess.ID.String()), zap.Error(err))
		stage := "save"
		var txErr *storage.TxError
		if errors.As(err, &txErr) {
			stage = txErr.Stage
		}
		return 0, domains.JobCardToSave{}, 0, &PersistenceError{Stage: stage, Err: err}
	}
	return jobID, job, len(templates), nil
}

func buildJobCard(sess checklist.Session) (domains.JobCardToSave, error) {
	common := sess.Common
	if !payload.IsImage(common.InspectorSignature) {
		return domains.JobCardToSave{}, &SignatureMissingError{Party: "inspector"}
	}
	if !payload.IsImage(common.CustomerSignature) {
		return domains.JobCardToSave{}, &SignatureMissingError{Party: "customer"}
	}

	var invalid []string
	dateIn, err := checklist.ParseTimestamp(common.DateIn)
	if err != nil {
		invalid = append(invalid, checklist.LabelDateIn)
	}
	dateOut, err := checklist.ParseTimestamp(common.DateOut)
	if err != nil {
		invalid = append(invalid, checklist.LabelDateOut)
	}
	if len(invalid) > 0 {
		return domains.JobCardToSave{}, &ValidationError{Invalid: invalid}
	}

	return domains.JobCardToSave{
		InspectorID:        sess.InspectorID,
		CustomerName:       cmp.Or(strings.TrimSpace(common.CustomerSignName), common.Customer),
		DateIn:             dateIn,
		DateOut:            dateOut,
		TotalSeconds:       checklist.TotalDuration(common.DateIn, common.DateOut),
		Remarks:            common.Remarks,
		CustomerSignName:   common.CustomerSignName,
		CustomerSignature:  common.CustomerSignature,
		InspectorSignature: common.InspectorSignature,
		Type:               sess.Type,
	}, nil
}

// ExpireSessions drops sessions idle for longer than ttl.
func (s *JobCardService) ExpireSessions(now time.Time, ttl time.Duration) int {
	return s.sessions.Expire(now.Add(-ttl))
}
