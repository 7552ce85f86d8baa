// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"
	"time"
)

// MeetingProvider defines the interface for external meeting provisioning.
// It is called once per eligible row; in-person rows never reach it.
type MeetingProvider interface {
	// CreateMeeting provisions a meeting on the external platform and
	// returns the join reference for it.
	CreateMeeting(ctx context.Context, request ProvisionRequest) (*ProvisionResult, error)
}

// ProvisionRequest carries the inputs the external meeting creation needs.
type ProvisionRequest struct {
	// Account is the platform account (host user) the meeting is booked from.
	Account string
	Topic   string
	// StartTime is the wall-clock start in the booking time zone.
	StartTime       time.Time
	DurationMinutes int
	Agenda          string
}

// ProvisionResult is the join reference returned by the platform.
type ProvisionResult struct {
	JoinURL   string
	MeetingID string
	Passcode  string
}
