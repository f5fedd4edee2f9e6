package report

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobcard/internal/domains"
	"jobcard/internal/storage"
)

type fakeSource struct {
	jobs       map[int64]domains.JobCard
	engineers  map[int64]domains.Engineer
	answers    map[int64][]domains.AnswerWithTemplate
	answersErr error
}

func (f *fakeSource) GetJobCardByID(_ context.Context, id int64) (domains.JobCard, error) {
	job, ok := f.jobs[id]
	if !ok {
		return domains.JobCard{}, storage.ErrNotFound
	}
	return job, nil
}

func (f *fakeSource) GetEngineerByID(_ context.Context, id int64) (domains.Engineer, error) {
	eng, ok := f.engineers[id]
	if !ok {
		return domains.Engineer{}, storage.ErrNotFound
	}
	return eng, nil
}

func (f *fakeSource) ListAnswersWithTemplates(_ context.Context, id int64) ([]domains.AnswerWithTemplate, error) {
	if f.answersErr != nil {
		return nil, f.answersErr
	}
	// Hand out a copy: Render sorts in place.
	return append([]domains.AnswerWithTemplate(nil), f.answers[id]...), nil
}

func signaturePNG(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		img.Set(x, 10, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func newTestAssembler(src Source) *Assembler {
	a := NewAssembler(src, time.UTC, zap.NewNop())
	a.now = func() time.Time { return time.Date(2025, 4, 10, 17, 0, 0, 0, time.UTC) }
	return a
}

func populatedSource(t *testing.T) *fakeSource {
	job := sampleJob()
	job.InspectorSignature = signaturePNG(t)
	job.CustomerSignature = "data:image/png;base64,bm90IGEgcG5n"
	return &fakeSource{
		jobs:      map[int64]domains.JobCard{47: job},
		engineers: map[int64]domains.Engineer{3: {ID: 3, Name: "Sam Engineer"}},
		answers: map[int64][]domains.AnswerWithTemplate{47: {
			{TemplateID: 3, Order: 3, Question: "Photo of unit", Answer: "No", InputKind: domains.InputImage},
			{TemplateID: 1, Order: 1, Question: "Oil level", Answer: "ok", InputKind: domains.InputText},
			{TemplateID: 2, Order: 2, Question: "Filter replaced", Answer: "No", InputKind: domains.InputYesNo},
		}},
	}
}

func TestAssembler_Render(t *testing.T) {
	a := newTestAssembler(populatedSource(t))

	doc, err := a.Render(context.Background(), 47)
	require.NoError(t, err)

	assert.Equal(t, int64(47), doc.JobCardID)
	assert.Equal(t, "Maintenance_Preventive_Maintenance_47.pdf", doc.FileName)
	assert.True(t, bytes.HasPrefix(doc.Bytes, []byte("%PDF-")))

	var order []int64
	for _, row := range doc.Plan.Rows {
		order = append(order, row.TemplateID)
	}
	assert.Equal(t, []int64{1, 2, 3}, order)

	// The customer signature is not a decodable image, so only the inspector's is embedded.
	var images []string
	for _, el := range doc.Plan.Pages[len(doc.Plan.Pages)-1].Elements {
		if el.Kind == ElementImage {
			images = append(images, el.Image)
		}
	}
	assert.Equal(t, []string{ImageInspectorSignature}, images)
}

func TestAssembler_RenderIsRepeatable(t *testing.T) {
	a := newTestAssembler(populatedSource(t))

	first, err := a.Render(context.Background(), 47)
	require.NoError(t, err)
	second, err := a.Render(context.Background(), 47)
	require.NoError(t, err)

	assert.Equal(t, first.Plan, second.Plan)
	assert.Equal(t, first.FileName, second.FileName)
}

func TestAssembler_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing job card", func(t *testing.T) {
		_, err := newTestAssembler(&fakeSource{}).Render(ctx, 99)
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, int64(99), nf.JobCardID)
	})

	t.Run("dangling inspector", func(t *testing.T) {
		src := populatedSource(t)
		src.engineers = nil
		_, err := newTestAssembler(src).Render(ctx, 47)
		var rr *ReferenceResolutionError
		require.ErrorAs(t, err, &rr)
		assert.Equal(t, int64(3), rr.InspectorID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("answers unavailable", func(t *testing.T) {
		src := populatedSource(t)
		src.answersErr = errors.New("connection reset")
		_, err := newTestAssembler(src).Render(ctx, 47)
		var re *RenderError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "load answers", re.Stage)
	})
}
