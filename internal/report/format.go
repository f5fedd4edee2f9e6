package report

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"jobcard/internal/domains"
)

const dateTimeLayout = "02/01/2006 15:04:05"

var whitespaceRun = regexp.MustCompile(`\s+`)

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateTimeLayout)
}

// FileName is the report file name for a job card, e.g.
// Maintenance_Preventive_Maintenance_47.pdf.
func FileName(maintenanceType string, jobCardID int64) string {
	return fmt.Sprintf("Maintenance_%s_%d.pdf", whitespaceRun.ReplaceAllString(maintenanceType, "_"), jobCardID)
}

// SortAnswers orders answers by template order, then template id.
func SortAnswers(answers []domains.AnswerWithTemplate) {
	sort.SliceStable(answers, func(i, j int) bool {
		if answers[i].Order != answers[j].Order {
			return answers[i].Order < answers[j].Order
		}
		return answers[i].TemplateID < answers[j].TemplateID
	})
}
