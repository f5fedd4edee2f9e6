package domains

import (
	"encoding/json"
	"fmt"
)

// InputKind is the answer widget a checklist question expects.
type InputKind int

const (
	InputText InputKind = iota + 1
	InputYesNo
	InputNumber
	InputImage
)

func (k InputKind) String() string {
	switch k {
	case InputText:
		return "text"
	case InputYesNo:
		return "yesno"
	case InputNumber:
		return "number"
	case InputImage:
		return "image"
	}
	return fmt.Sprintf("InputKind(%d)", int(k))
}

func ParseInputKind(s string) (InputKind, error) {
	switch s {
	case "text":
		return InputText, nil
	case "yesno":
		return InputYesNo, nil
	case "number":
		return InputNumber, nil
	case "image":
		return InputImage, nil
	}
	return 0, fmt.Errorf("unknown input type %q", s)
}

func (k InputKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *InputKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseInputKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ChecklistTemplate is one question of a maintenance type's checklist.
// Order defines both the form layout and the report row sequence.
type ChecklistTemplate struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Question  string    `json:"question"`
	InputKind InputKind `json:"input_type"`
	Order     int       `json:"order"`
}
