package service

import (
	"context"

	"go.uber.org/zap"

	"jobcard/internal/domains"
	"jobcard/internal/report"
	"jobcard/internal/storage"
)

const (
	preventive  = "Preventive Maintenance"
	sampleImage = "data:image/png;base64,iVBORw0KGgo="
)

func preventiveTemplates() []domains.ChecklistTemplate {
	return []domains.ChecklistTemplate{
		{ID: 1, Type: preventive, Question: "Oil level", InputKind: domains.InputText, Order: 1},
		{ID: 2, Type: preventive, Question: "Filter replaced", InputKind: domains.InputYesNo, Order: 2},
		{ID: 3, Type: preventive, Question: "Photo of unit", InputKind: domains.InputImage, Order: 3},
	}
}

type fakeTemplates struct {
	byType map[string][]domains.ChecklistTemplate
	err    error
}

func (f *fakeTemplates) ListTemplatesByType(_ context.Context, typ string) ([]domains.ChecklistTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byType[typ], nil
}

func (f *fakeTemplates) ListTypes(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var types []string
	for typ := range f.byType {
		types = append(types, typ)
	}
	return types, nil
}

type fakeEngineers map[int64]domains.Engineer

func (f fakeEngineers) GetEngineerByID(_ context.Context, id int64) (domains.Engineer, error) {
	eng, ok := f[id]
	if !ok {
		return domains.Engineer{}, storage.ErrNotFound
	}
	return eng, nil
}

type fakeSaver struct {
	nextID  int64
	err     error
	job     domains.JobCardToSave
	answers []domains.AnswerRecord
	calls   int

	// entered and release, when set, hold SaveJobCard open until the test lets it go.
	entered chan struct{}
	release chan struct{}
}

func (f *fakeSaver) SaveJobCard(_ context.Context, job domains.JobCardToSave, answers []domains.AnswerRecord) (int64, error) {
	f.calls++
	if f.entered != nil {
		close(f.entered)
		<-f.release
	}
	if f.err != nil {
		return 0, f.err
	}
	f.job = job
	f.answers = answers
	return f.nextID, nil
}

type fakeGenerator struct {
	err     error
	gotID   int64
	persist bool
}

func (f *fakeGenerator) Generate(_ context.Context, jobCardID int64, persist bool) (domains.ReportResult, error) {
	f.gotID = jobCardID
	f.persist = persist
	if f.err != nil {
		return domains.ReportResult{}, f.err
	}
	return domains.ReportResult{JobCardID: jobCardID, FileName: "report.pdf", Document: []byte("%PDF-")}, nil
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(_ context.Context, jobCardID int64) (*report.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &report.Document{
		JobCardID: jobCardID,
		FileName:  report.FileName(preventive, jobCardID),
		Bytes:     []byte("%PDF-1.3 test"),
	}, nil
}

type fakeBlobs struct {
	err         error
	key         string
	contentType string
	data        []byte
}

func (f *fakeBlobs) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.key = key
	f.data = data
	f.contentType = contentType
	return "https://blobs.example.com/maintenance-pdfs/" + key, nil
}

type fakePointers struct {
	err   error
	saved []domains.PdfFile
	files map[int64]domains.PdfFile
}

func (f *fakePointers) UpsertPdfFile(_ context.Context, file domains.PdfFile) (domains.PdfFile, error) {
	if f.err != nil {
		return domains.PdfFile{}, f.err
	}
	file.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, file)
	return file, nil
}

func (f *fakePointers) GetPdfFile(_ context.Context, jobCardID int64) (domains.PdfFile, error) {
	file, ok := f.files[jobCardID]
	if !ok {
		return domains.PdfFile{}, storage.ErrNotFound
	}
	return file, nil
}

func nopLogger() *zap.Logger { return zap.NewNop() }
