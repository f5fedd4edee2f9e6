package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobcard/internal/checklist"
	"jobcard/internal/domains"
	"jobcard/internal/storage"
)

type harness struct {
	svc       *JobCardService
	templates *fakeTemplates
	saver     *fakeSaver
	reports   *fakeGenerator
	sessions  *checklist.Store
}

func newHarness() *harness {
	h := &harness{
		templates: &fakeTemplates{byType: map[string][]domains.ChecklistTemplate{preventive: preventiveTemplates()}},
		saver:     &fakeSaver{nextID: 47},
		reports:   &fakeGenerator{},
		sessions:  checklist.NewStore(),
	}
	engineers := fakeEngineers{3: {ID: 3, EngID: "E003", Name: "Sam Engineer"}}
	h.svc = NewJobCardService(h.templates, engineers, h.saver, h.reports, h.sessions, true, nopLogger())
	return h
}

// completeSession walks a session through the capture form for the preventive checklist.
func (h *harness) completeSession(t *testing.T) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	sess, err := h.svc.StartSession(ctx, 3)
	require.NoError(t, err)

	_, err = h.svc.SelectType(ctx, sess.ID, preventive)
	require.NoError(t, err)
	_, err = h.svc.SetAnswer(sess.ID, 0, "ok")
	require.NoError(t, err)
	_, err = h.svc.SetCommonFields(sess.ID, checklist.CommonFields{
		DateIn:           "2025-04-10T08:00",
		DateOut:          "2025-04-10T16:30:15",
		InspectorName:    "Sam Engineer",
		Customer:         "ACME Cooling",
		CustomerSignName: "J. Doe",
		Remarks:          "Replaced filter",
	})
	require.NoError(t, err)
	_, err = h.svc.SetSignatures(sess.ID, sampleImage, sampleImage)
	require.NoError(t, err)
	return sess.ID
}

func TestJobCardService_StartSession(t *testing.T) {
	h := newHarness()

	sess, err := h.svc.StartSession(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), sess.InspectorID)
	assert.Equal(t, "Sam Engineer", sess.Common.InspectorName)
	assert.Equal(t, 1, h.sessions.Len())

	_, err = h.svc.StartSession(context.Background(), 99)
	assert.ErrorIs(t, err, ErrInspectorNotFound)
	assert.Equal(t, 1, h.sessions.Len())
}

func TestJobCardService_SelectTypeFetchFailure(t *testing.T) {
	h := newHarness()
	sess, err := h.svc.StartSession(context.Background(), 3)
	require.NoError(t, err)

	h.templates.err = errors.New("timeout")
	_, err = h.svc.SelectType(context.Background(), sess.ID, preventive)

	var fetchErr *TemplateFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, preventive, fetchErr.Type)

	got, err := h.svc.Session(sess.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Type)
}

func TestJobCardService_SetCommonFieldsKeepsSignatures(t *testing.T) {
	h := newHarness()
	id := h.completeSession(t)

	sess, err := h.svc.SetCommonFields(id, checklist.CommonFields{Customer: "Other", InspectorSignature: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "Other", sess.Common.Customer)
	assert.Equal(t, sampleImage, sess.Common.InspectorSignature)
	assert.Equal(t, sampleImage, sess.Common.CustomerSignature)
}

func TestJobCardService_SetSignaturesRejectsText(t *testing.T) {
	h := newHarness()
	id := h.completeSession(t)

	_, err := h.svc.SetSignatures(id, "scribble", sampleImage)
	assert.Error(t, err)

	sess, err := h.svc.Session(id)
	require.NoError(t, err)
	assert.Equal(t, sampleImage, sess.Common.InspectorSignature)
}

func TestJobCardService_Submit(t *testing.T) {
	h := newHarness()
	id := h.completeSession(t)

	sub, err := h.svc.Submit(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, int64(47), sub.JobCardID)
	assert.Equal(t, "JC0047", sub.JobCardNo)
	require.NotNil(t, sub.Report)
	assert.Empty(t, sub.ReportNote)
	assert.Equal(t, int64(47), h.reports.gotID)
	assert.True(t, h.reports.persist)

	job := h.saver.job
	assert.Equal(t, int64(3), job.InspectorID)
	assert.Equal(t, "J. Doe", job.CustomerName)
	assert.Equal(t, "J. Doe", job.CustomerSignName)
	assert.Equal(t, int64(30615), job.TotalSeconds)
	assert.Equal(t, time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC), job.DateIn)
	assert.Equal(t, preventive, job.Type)

	assert.Equal(t, []domains.AnswerRecord{
		{TemplateID: 1, Answer: "ok"},
		{TemplateID: 2, Answer: "No"},
		{TemplateID: 3, Answer: "No"},
	}, h.saver.answers)

	_, err = h.svc.Session(id)
	assert.ErrorIs(t, err, checklist.ErrSessionNotFound)
}

func TestJobCardService_SubmitCustomerNameFallsBack(t *testing.T) {
	h := newHarness()
	id := h.completeSession(t)
	_, err := h.svc.SetCommonFields(id, checklist.CommonFields{
		DateIn:        "2025-04-10T08:00",
		DateOut:       "2025-04-10T09:00",
		InspectorName: "Sam Engineer",
		Customer:      "ACME Cooling",
	})
	require.NoError(t, err)

	_, err = h.svc.Submit(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "ACME Cooling", h.saver.job.CustomerName)
	assert.Empty(t, h.saver.job.CustomerSignName)
}

func TestJobCardService_SubmitValidation(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	sess, err := h.svc.StartSession(ctx, 3)
	require.NoError(t, err)
	_, err = h.svc.SelectType(ctx, sess.ID, preventive)
	require.NoError(t, err)

	_, err = h.svc.Submit(ctx, sess.ID)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Date In", "Date Out", "Customer", "Oil level", "Inspector Signature", "Customer Signature"}, vErr.Missing)
	assert.Zero(t, h.saver.calls)

	// The session survives a rejected submission.
	_, err = h.svc.Session(sess.ID)
	assert.NoError(t, err)
}

func TestJobCardService_SubmitUsesCurrentTemplates(t *testing.T) {
	h := newHarness()
	id := h.completeSession(t)

	// A required question was added after the form was opened.
	h.templates.byType[preventive] = append(preventiveTemplates(),
		domains.ChecklistTemplate{ID: 4, Type: preventive, Question: "Refrigerant pressure", InputKind: domains.InputNumber, Order: 4})

	_, err := h.svc.Submit(context.Background(), id)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Refrigerant pressure"}, vErr.Missing)
}

func TestJobCardService_SubmitInvalidDate(t *testing.T) {
	h := newHarness()
	id := h.completeSession(t)
	_, err := h.svc.SetCommonFields(id, checklist.CommonFields{
		DateIn:        "yesterday",
		DateOut:       "2025-04-10T09:00",
		InspectorName: "Sam Engineer",
		Customer:      "ACME Cooling",
	})
	require.NoError(t, err)

	_, err = h.svc.Submit(context.Background(), id)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Date In"}, vErr.Invalid)
}

func TestJobCardService_SubmitPersistenceFailure(t *testing.T) {
	h := newHarness()
	id := h.completeSession(t)
	h.saver.err = &storage.TxError{Stage: "insert answers", Err: storage.ErrDanglingReference}

	_, err := h.svc.Submit(context.Background(), id)

	var pErr *PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "insert answers", pErr.Stage)
	assert.ErrorIs(t, err, storage.ErrDanglingReference)

	_, err = h.svc.Session(id)
	assert.NoError(t, err, "session must survive a failed save")
}

func TestJobCardService_SubmitReportFailureIsANote(t *testing.T) {
	h := newHarness()
	id := h.completeSession(t)
	h.reports.err = errors.New("render job card 47: encode: boom")

	sub, err := h.svc.Submit(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(47), sub.JobCardID)
	assert.Nil(t, sub.Report)
	assert.Equal(t, "render job card 47: encode: boom", sub.ReportNote)
}

func TestJobCardService_SubmitIsExclusive(t *testing.T) {
	h := newHarness()
	id := h.completeSession(t)
	h.saver.entered = make(chan struct{})
	h.saver.release = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := h.svc.Submit(context.Background(), id)
		done <- err
	}()
	<-h.saver.entered

	_, err := h.svc.Submit(context.Background(), id)
	assert.ErrorIs(t, err, checklist.ErrSessionNotFound)

	close(h.saver.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, h.saver.calls)
	assert.Equal(t, 0, h.sessions.Len())
}

func TestJobCardService_SubmitWithoutType(t *testing.T) {
	h := newHarness()
	sess, err := h.svc.StartSession(context.Background(), 3)
	require.NoError(t, err)

	_, err = h.svc.Submit(context.Background(), sess.ID)
	assert.ErrorIs(t, err, checklist.ErrNoTypeSelected)
	assert.Equal(t, 1, h.sessions.Len())
}

func TestBuildJobCard_SignatureMustBeImage(t *testing.T) {
	sess := checklist.Session{
		Type: preventive,
		Common: checklist.CommonFields{
			DateIn:             "2025-04-10T08:00",
			DateOut:            "2025-04-10T09:00",
			InspectorSignature: sampleImage,
			CustomerSignature:  "J. Doe",
		},
	}

	_, err := buildJobCard(sess)
	var sErr *SignatureMissingError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, "customer", sErr.Party)
}

func TestJobCardService_ExpireSessions(t *testing.T) {
	h := newHarness()
	_, err := h.svc.StartSession(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 0, h.svc.ExpireSessions(time.Now(), time.Hour))
	assert.Equal(t, 1, h.svc.ExpireSessions(time.Now().Add(2*time.Hour), time.Hour))
	assert.Equal(t, 0, h.sessions.Len())
}
