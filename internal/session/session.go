package session

import (
	"time"

	"hawkerhero/internal/model"
)

// Flash categories used across handlers.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Session is the server-side state bound to one browser.
type Session struct {
	ID        string              `json:"id"`
	User      *model.Identity     `json:"user,omitempty"`
	Flash     map[string][]string `json:"flash,omitempty"`
	Form      map[string]string   `json:"form,omitempty"`
	CreatedAt time.Time           `json:"created_at"`

	dirty bool
	isNew bool
}

func newSession(id string) *Session {
	return &Session{ID: id, CreatedAt: time.Now(), isNew: true}
}

// SetUser stores the identity snapshot of an authenticated user.
func (s *Session) SetUser(id *model.Identity) {
	s.User = id
	s.dirty = true
}

// AddFlash appends msg to the category queue.
func (s *Session) AddFlash(category, msg string) {
	if s.Flash == nil {
		s.Flash = make(map[string][]string)
	}
	s.Flash[category] = append(s.Flash[category], msg)
	s.dirty = true
}

// Flashes drains and returns the category queue.
func (s *Session) Flashes(category string) []string {
	msgs, ok := s.Flash[category]
	if !ok {
		return nil
	}
	delete(s.Flash, category)
	s.dirty = true
	return msgs
}

// AllFlashes drains every queue.
func (s *Session) AllFlashes() map[string][]string {
	if len(s.Flash) == 0 {
		return map[string][]string{}
	}
	out := s.Flash
	s.Flash = nil
	s.dirty = true
	return out
}

// SetForm keeps submitted form values for the next render of the form.
func (s *Session) SetForm(values map[string]string) {
	s.Form = values
	s.dirty = true
}

// TakeForm returns and clears the saved form values.
func (s *Session) TakeForm() map[string]string {
	if s.Form == nil {
		return map[string]string{}
	}
	out := s.Form
	s.Form = nil
	s.dirty = true
	return out
}

// Empty reports whether there is nothing worth persisting.
func (s *Session) Empty() bool {
	return s.User == nil && len(s.Flash) == 0 && len(s.Form) == 0
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool { return s.dirty }

// IsNew reports whether the session has never been handed to the browser.
func (s *Session) IsNew() bool { return s.isNew }
