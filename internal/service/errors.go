package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInspectorNotFound  = errors.New("inspector not found")
	ErrReportNotStored    = errors.New("report has not been stored")
	ErrBlobStoreDisabled  = errors.New("blob store not configured")
	ErrInvalidMaintenance = errors.New("maintenance type is required")
)

// TemplateFetchError is returned when the checklist of a maintenance type could not be
// loaded. It is not retried.
type TemplateFetchError struct {
	Type string
	Err  error
}

func (e *TemplateFetchError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("fetch templates: %v", e.Err)
	}
	return fmt.Sprintf("fetch templates for %q: %v", e.Type, e.Err)
}

func (e *TemplateFetchError) Unwrap() error { return e.Err }

// ValidationError lists the labels of required fields that are empty and of fields whose
// value could not be understood.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, ", "))
	}
	return "job card incomplete: " + strings.Join(parts, "; ")
}

// SignatureMissingError is returned at submission when a signature is not an image.
type SignatureMissingError struct {
	Party string
}

func (e *SignatureMissingError) Error() string {
	return e.Party + " signature is required"
}

// PersistenceError is returned when saving a job card failed. Nothing was written.
type PersistenceError struct {
	Stage string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save job card: %s: %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// BlobStoreError describes a failed report upload or pointer write. It never fails a
// render; its text ends up in ReportResult.StorageError.
type BlobStoreError struct {
	Op  string
	Err error
}

func (e *BlobStoreError) Error() string {
	return fmt.Sprintf("store report: %s: %v", e.Op, e.Err)
}

func (e *BlobStoreError) Unwrap() error { return e.Err }
