// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package graph

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/berytech/booking-invite-service/internal/domain"
)

// Event wire types for the Graph calendar API.

type eventBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type eventDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type eventLocation struct {
	DisplayName string `json:"displayName"`
}

type eventAttendee struct {
	Type         string            `json:"type"`
	EmailAddress eventEmailAddress `json:"emailAddress"`
}

type eventEmailAddress struct {
	Address string `json:"address"`
}

type eventPayload struct {
	Subject   string          `json:"subject"`
	Body      eventBody       `json:"body"`
	Start     eventDateTime   `json:"start"`
	End       eventDateTime   `json:"end"`
	Location  eventLocation   `json:"location"`
	Attendees []eventAttendee `json:"attendees"`
}

// CalendarService posts calendar events to a fixed organizer mailbox.
type CalendarService struct {
	client  *Client
	mailbox string
}

// Ensure CalendarService implements domain.CalendarService
var _ domain.CalendarService = (*CalendarService)(nil)

// NewCalendarService creates a calendar service acting as the given mailbox.
func NewCalendarService(client *Client, mailbox string) *CalendarService {
	return &CalendarService{client: client, mailbox: mailbox}
}

// CreateEvent posts one calendar event; Graph dispatches the invitation to
// every attendee as a side effect.
func (s *CalendarService) CreateEvent(ctx context.Context, event domain.CalendarEvent) error {
	payload := eventPayload{
		Subject: event.Subject,
		Body: eventBody{
			ContentType: "HTML",
			Content:     event.BodyHTML,
		},
		Start: eventDateTime{
			DateTime: event.Start.Format("2006-01-02T15:04:05"),
			TimeZone: event.Timezone,
		},
		End: eventDateTime{
			DateTime: event.End.Format("2006-01-02T15:04:05"),
			TimeZone: event.Timezone,
		},
		Location: eventLocation{DisplayName: event.Location},
	}
	for _, attendee := range event.Attendees {
		payload.Attendees = append(payload.Attendees, eventAttendee{
			Type:         "required",
			EmailAddress: eventEmailAddress{Address: attendee},
		})
	}

	path := fmt.Sprintf("/users/%s/events", s.mailbox)
	resp, err := s.client.doRequest(ctx, http.MethodPost, path, payload)
	if err != nil {
		return domain.NewInviteDispatchError("failed to post calendar event", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.NewInviteDispatchError("calendar event rejected", parseErrorResponse(body))
	}

	return nil
}
