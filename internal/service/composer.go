// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/berytech/booking-invite-service/internal/domain"
	"github.com/berytech/booking-invite-service/internal/domain/models"
	"github.com/berytech/booking-invite-service/pkg/constants"
)

//go:embed templates/*
var templateFS embed.FS

// inviteBodyData is the template context for the invitation body.
type inviteBodyData struct {
	TeamName       string
	StartFormatted string
	// JoinURL is set only when a join reference exists; the template then
	// renders a join-link line instead of a location line.
	JoinURL  string
	Location string
}

// InviteComposer builds the calendar-event payload for one booked row.
// It holds no idempotency state; the orchestrator guarantees at most one
// compose per row per run.
type InviteComposer struct {
	body *template.Template
}

// NewInviteComposer loads the embedded invitation template.
func NewInviteComposer() (*InviteComposer, error) {
	body, err := template.ParseFS(templateFS, "templates/meeting_invitation.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse invitation template: %w", err)
	}
	return &InviteComposer{body: body}, nil
}

// Compose renders the invitation body and assembles the event payload.
// End time is always start plus the row's duration, in the booking zone.
func (c *InviteComposer) Compose(row models.RowRecord, joinURL string) (domain.CalendarEvent, error) {
	isZoom := row.MeetingType != constants.MeetingTypeInPerson

	location := row.Location
	if location == "" {
		if isZoom {
			location = "Zoom"
		} else {
			location = "In person"
		}
	}

	data := inviteBodyData{
		TeamName:       row.TeamName,
		StartFormatted: row.StartTime.Format("2006-01-02 15:04"),
		Location:       location,
	}
	if isZoom && joinURL != "" {
		data.JoinURL = joinURL
	}

	var body bytes.Buffer
	if err := c.body.Execute(&body, data); err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("failed to render invitation body: %w", err)
	}

	return domain.CalendarEvent{
		Subject:   row.Topic,
		BodyHTML:  body.String(),
		Start:     row.StartTime,
		End:       row.StartTime.Add(time.Duration(row.DurationMinutes) * time.Minute),
		Timezone:  constants.BookingTimezone,
		Location:  location,
		Attendees: row.Participants,
	}, nil
}
