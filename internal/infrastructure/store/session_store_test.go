// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berytech/booking-invite-service/internal/domain"
	"github.com/berytech/booking-invite-service/internal/domain/models"
)

func testSession() *models.UploadSession {
	return &models.UploadSession{
		WorkbookPath: "/tmp/uploads/bookings.xlsx",
		Outcomes: []models.ValidationOutcome{
			{Row: models.RowRecord{RowNumber: 3, Topic: "Sync"}},
			{Row: models.RowRecord{RowNumber: 4, Topic: "Review"}, Missing: []string{"Date Chosen"}},
		},
	}
}

func TestSessionStore_PutAndTake(t *testing.T) {
	sessionStore := NewSessionStore()
	ctx := context.Background()

	id, err := sessionStore.Put(ctx, testSession())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	session, err := sessionStore.Take(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, session.ID)
	assert.Equal(t, "/tmp/uploads/bookings.xlsx", session.WorkbookPath)
	require.Len(t, session.Outcomes, 2)
	assert.True(t, session.Outcomes[0].Ready())
	assert.False(t, session.Outcomes[1].Ready())
}

func TestSessionStore_TakeConsumesSession(t *testing.T) {
	sessionStore := NewSessionStore()
	ctx := context.Background()

	id, err := sessionStore.Put(ctx, testSession())
	require.NoError(t, err)

	_, err = sessionStore.Take(ctx, id)
	require.NoError(t, err)

	_, err = sessionStore.Take(ctx, id)
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeSessionExpired, domain.GetErrorType(err))
}

func TestSessionStore_UnknownID(t *testing.T) {
	sessionStore := NewSessionStore()

	_, err := sessionStore.Take(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeSessionExpired, domain.GetErrorType(err))
}

func TestSessionStore_ExpiredSession(t *testing.T) {
	sessionStore := NewSessionStore()
	ctx := context.Background()

	current := time.Now()
	sessionStore.now = func() time.Time { return current }

	id, err := sessionStore.Put(ctx, testSession())
	require.NoError(t, err)

	current = current.Add(DefaultTTL + time.Minute)

	_, err = sessionStore.Take(ctx, id)
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeSessionExpired, domain.GetErrorType(err))
}

func TestSessionStore_DistinctUploadsGetDistinctIDs(t *testing.T) {
	sessionStore := NewSessionStore()
	ctx := context.Background()

	// Two uploads of the same underlying filename must not clobber each other.
	first, err := sessionStore.Put(ctx, testSession())
	require.NoError(t, err)
	second, err := sessionStore.Put(ctx, testSession())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	_, err = sessionStore.Take(ctx, first)
	require.NoError(t, err)
	_, err = sessionStore.Take(ctx, second)
	require.NoError(t, err)
}

func TestSessionStore_SnapshotIsolatedFromCaller(t *testing.T) {
	sessionStore := NewSessionStore()
	ctx := context.Background()

	original := testSession()
	id, err := sessionStore.Put(ctx, original)
	require.NoError(t, err)

	// Mutating the caller's value after Put must not affect the snapshot id.
	original.ID = "tampered"

	session, err := sessionStore.Take(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, session.ID)
}
