// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/berytech/booking-invite-service/internal/domain/models"
)

// SessionStore bridges the interactive validate and commit phases. A stored
// session is an immutable snapshot of validated rows; Take consumes it so a
// session can be committed at most once.
type SessionStore interface {
	// Put stores the session and returns its opaque identifier.
	Put(ctx context.Context, session *models.UploadSession) (string, error)

	// Take returns the session exactly once. A missing, expired or already
	// consumed identifier yields a session-expired error.
	Take(ctx context.Context, id string) (*models.UploadSession, error)
}
