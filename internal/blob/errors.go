package blob

import (
	"errors"
	"fmt"
)

var (
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrThrottled          = errors.New("request throttled")
	ErrUnavailable        = errors.New("object store unavailable")
)

// StoreError describes a failed object store call.
type StoreError struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("blob %s %s: %v", e.Op, e.Bucket, e.Err)
	}
	return fmt.Sprintf("blob %s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
