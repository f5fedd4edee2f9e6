package checklist

import (
	"strings"

	"jobcard/internal/domains"
)

const (
	LabelDateIn             = "Date In"
	LabelDateOut            = "Date Out"
	LabelInspectorName      = "Inspector Name"
	LabelCustomer           = "Customer"
	LabelInspectorSignature = "Inspector Signature"
	LabelCustomerSignature  = "Customer Signature"
)

// CommonFields are the job card fields captured outside the checklist itself.
type CommonFields struct {
	DateIn             string `json:"date_in"`
	DateOut            string `json:"date_out"`
	InspectorName      string `json:"inspector_name"`
	Customer           string `json:"customer"`
	CustomerSignName   string `json:"customer_sign_name"`
	Remarks            string `json:"remarks"`
	InspectorSignature string `json:"inspector_signature,omitempty"`
	CustomerSignature  string `json:"customer_signature,omitempty"`
}

// Validate returns the labels of every missing required field, in display order.
// An empty result means the form can be submitted.
//
// Yes/no questions default to "No" and image questions are optional, so neither is
// ever reported.
func Validate(templates []domains.ChecklistTemplate, draft Draft, common CommonFields) []string {
	missing := []string{}

	if blank(common.DateIn) {
		missing = append(missing, LabelDateIn)
	}
	if blank(common.DateOut) {
		missing = append(missing, LabelDateOut)
	}
	if blank(common.InspectorName) {
		missing = append(missing, LabelInspectorName)
	}
	if blank(common.Customer) {
		missing = append(missing, LabelCustomer)
	}

	for i, tpl := range templates {
		switch tpl.InputKind {
		case domains.InputText, domains.InputNumber:
			if blank(draft[i]) {
				missing = append(missing, tpl.Question)
			}
		case domains.InputYesNo, domains.InputImage:
		}
	}

	if blank(common.InspectorSignature) {
		missing = append(missing, LabelInspectorSignature)
	}
	if blank(common.CustomerSignature) {
		missing = append(missing, LabelCustomerSignature)
	}
	return missing
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
