package domains

import "time"

// PdfFile points at a stored copy of a rendered job card report.
type PdfFile struct {
	ID        int64     `db:"id" json:"id"`
	JobCardID int64     `db:"job_card_id" json:"job_card_id"`
	FileName  string    `db:"file_name" json:"file_name"`
	FileURL   string    `db:"file_url" json:"file_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReportResult is a rendered report plus the outcome of the optional upload.
// StorageError is set when the upload or pointer write failed; Document is still usable.
type ReportResult struct {
	JobCardID    int64  `json:"job_card_id"`
	FileName     string `json:"file_name"`
	FileURL      string `json:"file_url,omitempty"`
	StorageError string `json:"storage_error,omitempty"`
	Document     []byte `json:"-"`
}
