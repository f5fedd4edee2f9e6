// Package checklist holds the per-session draft answers for dynamic maintenance
// checklists and turns them into validated answer rows.
package checklist

import "jobcard/internal/payload"

// NoAnswer is stored for yes/no and image questions that were left untouched.
const NoAnswer = "No"

// Draft maps a question index (its position in the ordered template list) to the
// captured answer value.
type Draft map[int]string

// Drafts keeps one Draft per maintenance type so that switching types keeps the
// answers already given for the others.
type Drafts map[string]Draft

// Ensure returns the draft for typ, creating an empty bucket if needed.
func (d Drafts) Ensure(typ string) Draft {
	draft, ok := d[typ]
	if !ok {
		draft = Draft{}
		d[typ] = draft
	}
	return draft
}

// Set stores value at index for typ. Values are not validated here.
func (d Drafts) Set(typ string, index int, value string) {
	d.Ensure(typ)[index] = value
}

// SetImage stores an image payload at index for typ.
func (d Drafts) SetImage(typ string, index int, image string) error {
	if !payload.IsImage(image) {
		return payload.ErrNotImage
	}
	d.Ensure(typ)[index] = image
	return nil
}

// ClearImage drops a previously stored image and records the "No" sentinel.
func (d Drafts) ClearImage(typ string, index int) {
	d.Ensure(typ)[index] = NoAnswer
}

// Get returns the draft for typ, or nil if nothing was captured for it.
func (d Drafts) Get(typ string) Draft {
	return d[typ]
}
