// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"
	"time"
)

// CalendarService defines the interface for posting calendar invitations
// on behalf of the configured organizer mailbox.
type CalendarService interface {
	// CreateEvent posts one calendar event with its attendees. One outbound
	// invite per call; idempotency is the orchestrator's responsibility.
	CreateEvent(ctx context.Context, event CalendarEvent) error
}

// CalendarEvent is the payload for one calendar invitation.
type CalendarEvent struct {
	Subject  string
	BodyHTML string
	// Start and End are wall-clock times in Timezone. End is always
	// Start plus the row's duration.
	Start    time.Time
	End      time.Time
	Timezone string
	// Location is the display location: free text for in-person meetings,
	// "Zoom" when only a join link exists.
	Location  string
	Attendees []string
}
