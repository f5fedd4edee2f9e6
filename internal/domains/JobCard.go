package domains

import "time"

type JobCard struct {
	ID                 int64     `db:"id" json:"id"`
	InspectorID        int64     `db:"inspector_id" json:"inspector_id"`
	CustomerName       string    `db:"customer_name" json:"customer_name"`
	DateIn             time.Time `db:"date_in" json:"date_in"`
	DateOut            time.Time `db:"date_out" json:"date_out"`
	TotalSeconds       int64     `db:"total_hours" json:"total_hours"`
	Remarks            string    `db:"remarks" json:"remarks"`
	CustomerSignName   string    `db:"customer_sign_name" json:"customer_sign_name"`
	CustomerSignature  string    `db:"customer_signature" json:"-"`
	InspectorSignature string    `db:"inspector_signature" json:"-"`
	Type               string    `db:"type" json:"type"`
}

// CustomerDisplayName is the name printed under the customer signature.
func (j JobCard) CustomerDisplayName() string {
	if j.CustomerSignName != "" {
		return j.CustomerSignName
	}
	return j.CustomerName
}

type JobCardToSave struct {
	InspectorID        int64
	CustomerName       string
	DateIn             time.Time
	DateOut            time.Time
	TotalSeconds       int64
	Remarks            string
	CustomerSignName   string
	CustomerSignature  string
	InspectorSignature string
	Type               string
}

type JobCardSummary struct {
	ID           int64     `db:"id" json:"id"`
	JobCardNo    string    `db:"-" json:"job_card_no"`
	Type         string    `db:"type" json:"type"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	DateIn       time.Time `db:"date_in" json:"date_in"`
}
