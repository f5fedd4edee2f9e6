package storage

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
	// ErrDanglingReference is returned when a row points at a missing parent.
	ErrDanglingReference = errors.New("dangling reference")
)

// TxError reports which step of a multi-statement write failed. The transaction has
// been rolled back when it is returned.
type TxError struct {
	Stage string
	Err   error
}

func (e *TxError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *TxError) Unwrap() error { return e.Err }
