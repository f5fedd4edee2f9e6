package httptransport

import (
	"time"

	"jobcard/internal/checklist"
	"jobcard/internal/domains"
)

type StartSessionRequest struct {
	InspectorID int64 `json:"inspector_id"`
}

type SelectTypeRequest struct {
	Type string `json:"type"`
}

type AnswerRequest struct {
	Value string `json:"value"`
}

type ImageRequest struct {
	Image string `json:"image"`
}

type SignaturesRequest struct {
	InspectorSignature string `json:"inspector_signature"`
	CustomerSignature  string `json:"customer_signature"`
}

// SessionView is what the capture form sees of its session.
type SessionView struct {
	ID          string                      `json:"session_id"`
	InspectorID int64                       `json:"inspector_id"`
	Type        string                      `json:"type,omitempty"`
	Templates   []domains.ChecklistTemplate `json:"templates"`
	Answers     map[int]string              `json:"answers"`
	Common      checklist.CommonFields      `json:"common"`
	Missing     []string                    `json:"missing"`
	CreatedAt   time.Time                   `json:"created_at"`
}

func newSessionView(s checklist.Session) SessionView {
	templates := s.Templates
	if templates == nil {
		templates = []domains.ChecklistTemplate{}
	}
	answers := map[int]string(s.Drafts.Get(s.Type))
	if answers == nil {
		answers = map[int]string{}
	}
	return SessionView{
		ID:          s.ID.String(),
		InspectorID: s.InspectorID,
		Type:        s.Type,
		Templates:   templates,
		Answers:     answers,
		Common:      s.Common,
		Missing:     s.Missing(),
		CreatedAt:   s.CreatedAt,
	}
}

type MissingResponse struct {
	Missing []string `json:"missing"`
	Valid   bool     `json:"valid"`
}
