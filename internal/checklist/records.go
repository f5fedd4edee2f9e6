package checklist

import (
	"jobcard/internal/domains"
	"jobcard/internal/payload"
)

// ToAnswerRecords produces exactly one answer per template, in template order.
// The report relies on every template of a job having a matching answer row.
func ToAnswerRecords(templates []domains.ChecklistTemplate, draft Draft) []domains.AnswerRecord {
	records := make([]domains.AnswerRecord, 0, len(templates))
	for i, tpl := range templates {
		records = append(records, domains.AnswerRecord{
			TemplateID: tpl.ID,
			Answer:     answerFor(tpl.InputKind, draft[i]),
		})
	}
	return records
}

func answerFor(kind domains.InputKind, value string) string {
	switch kind {
	case domains.InputImage:
		if payload.IsImage(value) {
			return value
		}
		return NoAnswer
	case domains.InputYesNo:
		if value == "" {
			return NoAnswer
		}
		return value
	case domains.InputText, domains.InputNumber:
		if blank(value) {
			return ""
		}
		return value
	}
	return ""
}
