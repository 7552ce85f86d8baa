// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

// Package store holds the in-memory validation session store bridging the
// interactive validate and commit phases. Sessions never outlive the process.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/berytech/booking-invite-service/internal/domain"
	"github.com/berytech/booking-invite-service/internal/domain/models"
)

// DefaultTTL is how long a validated upload stays committable.
const DefaultTTL = 30 * time.Minute

// SessionStore is a mutex-guarded map keyed by random session ids. Each
// session can be taken exactly once, so two commits racing on the same id
// cannot both run a batch.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.UploadSession
	ttl      time.Duration
	now      func() time.Time
}

// Ensure SessionStore implements domain.SessionStore
var _ domain.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a store with the default TTL.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.UploadSession),
		ttl:      DefaultTTL,
		now:      time.Now,
	}
}

// Put assigns the session a random id and expiry and stores an immutable
// snapshot. Expired sessions are purged opportunistically on every Put.
func (s *SessionStore) Put(_ context.Context, session *models.UploadSession) (string, error) {
	if session == nil {
		return "", domain.NewInternalError("nil upload session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, existing := range s.sessions {
		if existing.Expired(now) {
			delete(s.sessions, id)
		}
	}

	stored := *session
	stored.ID = uuid.New().String()
	stored.CreatedAt = now
	stored.ExpiresAt = now.Add(s.ttl)
	s.sessions[stored.ID] = &stored

	return stored.ID, nil
}

// Take removes and returns the session. A missing, consumed or expired id
// yields a session-expired error.
func (s *SessionStore) Take(_ context.Context, id string) (*models.UploadSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.NewSessionExpiredError("unknown or already committed session")
	}
	delete(s.sessions, id)

	if session.Expired(s.now()) {
		return nil, domain.NewSessionExpiredError("session expired")
	}

	return session, nil
}
