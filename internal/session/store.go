package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

// Backend is the key/value storage behind a Store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Store persists sessions keyed by id with a sliding TTL.
type Store struct {
	backend Backend
	ttl     time.Duration
}

// NewStore creates a session store.
func NewStore(backend Backend, ttl time.Duration) *Store {
	return &Store{backend: backend, ttl: ttl}
}

// TTL is the lifetime of an idle session.
func (s *Store) TTL() time.Duration { return s.ttl }

// New returns an unsaved session with a fresh random id.
func (s *Store) New() *Session {
	return newSession(uuid.NewString())
}

// Load returns the session with id, or nil when it does not exist or expired.
func (s *Store) Load(ctx context.Context, id string) (*Session, error) {
	data, err := s.backend.Get(ctx, sessionKeyPrefix+id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if sess.ID != id {
		return nil, nil
	}
	return &sess, nil
}

// Save writes the session and restarts its TTL.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.backend.Set(ctx, sessionKeyPrefix+sess.ID, payload, s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	sess.dirty = false
	sess.isNew = false
	return nil
}

// Destroy removes every piece of data held for id.
func (s *Store) Destroy(ctx context.Context, id string) error {
	if err := s.backend.Delete(ctx, sessionKeyPrefix+id); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// Renew moves the data of sess to a fresh id and destroys the old one.
func (s *Store) Renew(ctx context.Context, sess *Session) (*Session, error) {
	if !sess.isNew {
		if err := s.Destroy(ctx, sess.ID); err != nil {
			return nil, err
		}
	}
	renewed := s.New()
	renewed.User = sess.User
	renewed.Flash = sess.Flash
	renewed.Form = sess.Form
	renewed.dirty = true
	return renewed, nil
}
