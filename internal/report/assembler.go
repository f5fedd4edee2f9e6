// Package report renders a submitted job card into a paginated PDF.
package report

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"jobcard/internal/domains"
	"jobcard/internal/payload"
	"jobcard/internal/storage"
)

// Source is the read side of the job card store.
type Source interface {
	GetJobCardByID(ctx context.Context, id int64) (domains.JobCard, error)
	GetEngineerByID(ctx context.Context, id int64) (domains.Engineer, error)
	ListAnswersWithTemplates(ctx context.Context, jobCardID int64) ([]domains.AnswerWithTemplate, error)
}

// Document is a rendered report.
type Document struct {
	JobCardID int64
	FileName  string
	Bytes     []byte
	Plan      Plan
}

type Assembler struct {
	source   Source
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

func NewAssembler(source Source, location *time.Location, logger *zap.Logger) *Assembler {
	if location == nil {
		location = time.UTC
	}
	return &Assembler{
		source:   source,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Render loads a job card with its inspector and answers and produces the PDF.
// Any load failure aborts the render; no partial document is returned.
func (a *Assembler) Render(ctx context.Context, jobCardID int64) (*Document, error) {
	job, err := a.source.GetJobCardByID(ctx, jobCardID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &NotFoundError{JobCardID: jobCardID}
		}
		return nil, &RenderError{JobCardID: jobCardID, Stage: "load job card", Err: err}
	}

	engineer, err := a.source.GetEngineerByID(ctx, job.InspectorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &ReferenceResolutionError{JobCardID: jobCardID, InspectorID: job.InspectorID, Err: err}
		}
		return nil, &RenderError{JobCardID: jobCardID, Stage: "load inspector", Err: err}
	}

	answers, err := a.source.ListAnswersWithTemplates(ctx, jobCardID)
	if err != nil {
		return nil, &RenderError{JobCardID: jobCardID, Stage: "load answers", Err: err}
	}
	SortAnswers(answers)

	images := a.signatureImages(job)
	generatedAt := a.now().In(a.location)

	pdf := newPDF()
	pdf.SetTitle(FileName(job.Type, job.ID), true)
	pdf.SetCreationDate(generatedAt)

	plan := Layout(Input{
		Job:                   job,
		InspectorName:         engineer.Name,
		Answers:               answers,
		HasInspectorSignature: images[ImageInspectorSignature] != nil,
		HasCustomerSignature:  images[ImageCustomerSignature] != nil,
		GeneratedAt:           generatedAt.Format(dateTimeLayout),
	}, newFpdfMeasurer(pdf))

	a.draw(pdf, plan, images)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{JobCardID: jobCardID, Stage: "encode", Err: err}
	}

	a.logger.Debug("report rendered",
		zap.Int64("job_card_id", jobCardID),
		zap.Int("pages", len(plan.Pages)),
		zap.Int("rows", len(plan.Rows)),
		zap.Int("bytes", buf.Len()))

	return &Document{
		JobCardID: jobCardID,
		FileName:  FileName(job.Type, job.ID),
		Bytes:     buf.Bytes(),
		Plan:      plan,
	}, nil
}

// signatureImages decodes the stored signatures; a missing or malformed one is left
// out and the layout prints a placeholder instead.
func (a *Assembler) signatureImages(job domains.JobCard) map[string]*payload.Image {
	images := map[string]*payload.Image{}
	for _, sig := range []struct {
		key  string
		data string
	}{
		{ImageInspectorSignature, job.InspectorSignature},
		{ImageCustomerSignature, job.CustomerSignature},
	} {
		if sig.data == "" {
			continue
		}
		img, err := payload.Decode(sig.data)
		if err != nil {
			a.logger.Warn("signature not embeddable",
				zap.Int64("job_card_id", job.ID),
				zap.String("signature", sig.key),
				zap.Error(err))
			continue
		}
		images[sig.key] = &img
	}
	return images
}

func (a *Assembler) draw(pdf *fpdf.Fpdf, plan Plan, images map[string]*payload.Image) {
	for _, page := range plan.Pages {
		pdf.AddPage()
		for _, el := range page.Elements {
			switch el.Kind {
			case ElementText:
				setStyle(pdf, el.Style)
				for i, line := range el.Lines {
					pdf.Text(el.X, el.Y+float64(i)*LineHeight, line)
				}
			case ElementLine:
				pdf.Line(el.X, el.Y, el.X2, el.Y2)
			case ElementImage:
				img := images[el.Image]
				if img == nil {
					continue
				}
				opts := fpdf.ImageOptions{ImageType: img.Format}
				pdf.RegisterImageOptionsReader(el.Image, opts, bytes.NewReader(img.Data))
				if pdf.Err() {
					a.logger.Warn("signature image rejected", zap.String("signature", el.Image), zap.Error(pdf.Error()))
					pdf.ClearError()
					continue
				}
				pdf.ImageOptions(el.Image, el.X, el.Y, el.W, el.H, false, opts, 0, "")
			}
		}
	}
}
