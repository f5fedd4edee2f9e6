package report

import "fmt"

// NotFoundError is returned when the job card to render does not exist.
type NotFoundError struct {
	JobCardID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job card %d not found", e.JobCardID)
}

// ReferenceResolutionError is returned when the job card points at an inspector that
// does not exist.
type ReferenceResolutionError struct {
	JobCardID   int64
	InspectorID int64
	Err         error
}

func (e *ReferenceResolutionError) Error() string {
	return fmt.Sprintf("job card %d: inspector %d: %v", e.JobCardID, e.InspectorID, e.Err)
}

func (e *ReferenceResolutionError) Unwrap() error { return e.Err }

// RenderError covers every other failure while producing a document: loading answers,
// laying out or encoding the PDF.
type RenderError struct {
	JobCardID int64
	Stage     string
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render job card %d: %s: %v", e.JobCardID, e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
