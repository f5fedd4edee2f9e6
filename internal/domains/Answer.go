package domains

// AnswerRecord is one persisted answer row. Answer may hold an image payload or the
// "Yes"/"No"/"" sentinels.
type AnswerRecord struct {
	JobCardID  int64  `json:"job_card_id"`
	TemplateID int64  `json:"template_id"`
	Answer     string `json:"answer"`
}

// AnswerWithTemplate is an answer row joined with its checklist template.
type AnswerWithTemplate struct {
	TemplateID int64
	Answer     string
	Question   string
	Order      int
	InputKind  InputKind
}
