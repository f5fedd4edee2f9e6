package checklist

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobcard/internal/domains"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoTypeSelected  = errors.New("no maintenance type selected")
	ErrIndexOutOfRange = errors.New("question index out of range")
	ErrNotImageInput   = errors.New("question does not take an image")
)

// Session is the private state of one capture form.
type Session struct {
	ID          uuid.UUID
	InspectorID int64
	Type        string
	Templates   []domains.ChecklistTemplate
	Drafts      Drafts
	Common      CommonFields
	CreatedAt   time.Time
	TouchedAt   time.Time
}

func NewSession(inspectorID int64, inspectorName string, now time.Time) *Session {
	return &Session{
		ID:          uuid.New(),
		InspectorID: inspectorID,
		Drafts:      Drafts{},
		Common:      CommonFields{InspectorName: inspectorName},
		CreatedAt:   now,
		TouchedAt:   now,
	}
}

// SelectType switches the form to typ with its ordered templates. Answers for other
// types are kept; captured signatures are cleared.
func (s *Session) SelectType(typ string, templates []domains.ChecklistTemplate) {
	s.Type = typ
	s.Templates = templates
	s.Drafts.Ensure(typ)
	s.Common.InspectorSignature = ""
	s.Common.CustomerSignature = ""
}

func (s *Session) SetAnswer(index int, value string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.Drafts.Set(s.Type, index, value)
	return nil
}

func (s *Session) SetImage(index int, image string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if s.Templates[index].InputKind != domains.InputImage {
		return ErrNotImageInput
	}
	return s.Drafts.SetImage(s.Type, index, image)
}

func (s *Session) ClearImage(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if s.Templates[index].InputKind != domains.InputImage {
		return ErrNotImageInput
	}
	s.Drafts.ClearImage(s.Type, index)
	return nil
}

// Missing validates the current type against the templates loaded at selection.
func (s *Session) Missing() []string {
	return Validate(s.Templates, s.Drafts.Get(s.Type), s.Common)
}

func (s *Session) checkIndex(index int) error {
	if s.Type == "" {
		return ErrNoTypeSelected
	}
	if index < 0 || index >= len(s.Templates) {
		return ErrIndexOutOfRange
	}
	return nil
}

// clone returns a copy that shares no maps with s.
func (s *Session) clone() Session {
	c := *s
	c.Templates = append([]domains.ChecklistTemplate(nil), s.Templates...)
	c.Drafts = make(Drafts, len(s.Drafts))
	for typ, draft := range s.Drafts {
		d := make(Draft, len(draft))
		for i, v := range draft {
			d[i] = v
		}
		c.Drafts[typ] = d
	}
	return c
}

// Store keeps open sessions in memory. Each session is only ever touched by its own
// capture form, but the store itself is shared by every request.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		now:      time.Now,
	}
}

func (st *Store) Create(inspectorID int64, inspectorName string) Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := NewSession(inspectorID, inspectorName, st.now())
	st.sessions[s.ID] = s
	return s.clone()
}

// Get returns a snapshot of the session.
func (st *Store) Get(id uuid.UUID) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return s.clone(), nil
}

// Update applies fn to the live session and returns a snapshot of the result.
// Changes made by a failing fn are kept; callers validate before mutating.
func (st *Store) Update(id uuid.UUID, fn func(*Session) error) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if err := fn(s); err != nil {
		return Session{}, err
	}
	s.TouchedAt = st.now()
	return s.clone(), nil
}

// Take removes the session and returns it. Only one caller can take a given session.
func (st *Store) Take(id uuid.UUID) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	delete(st.sessions, id)
	return *s, nil
}

// Restore puts back a session removed by Take.
func (st *Store) Restore(s Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = &s
}

func (st *Store) Delete(id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.sessions[id]
	delete(st.sessions, id)
	return ok
}

// Expire drops sessions idle since before cutoff and returns how many were removed.
func (st *Store) Expire(cutoff time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.TouchedAt.Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
