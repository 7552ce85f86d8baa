// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

// Package zoom implements the MeetingProvider collaborator on top of the
// Zoom API.
package zoom

import (
	"context"
	"fmt"
	"strconv"

	"github.com/berytech/booking-invite-service/internal/domain"
	"github.com/berytech/booking-invite-service/internal/infrastructure/zoom/api"
	"github.com/berytech/booking-invite-service/pkg/constants"
)

// Provider provisions scheduled Zoom meetings.
type Provider struct {
	client api.ClientAPI
}

// Ensure Provider implements MeetingProvider
var _ domain.MeetingProvider = (*Provider)(nil)

// NewProvider creates a provider backed by the given API client.
func NewProvider(client api.ClientAPI) *Provider {
	return &Provider{client: client}
}

// CreateMeeting books a scheduled meeting on the row's account and returns
// its join reference. The start time is sent as wall-clock text qualified by
// the booking time zone.
func (p *Provider) CreateMeeting(ctx context.Context, request domain.ProvisionRequest) (*domain.ProvisionResult, error) {
	resp, err := p.client.CreateMeeting(ctx, request.Account, &api.CreateMeetingRequest{
		Topic:     request.Topic,
		Type:      api.MeetingTypeScheduled,
		StartTime: request.StartTime.Format("2006-01-02T15:04:05"),
		Duration:  request.DurationMinutes,
		Timezone:  constants.BookingTimezone,
		Agenda:    request.Agenda,
	})
	if err != nil {
		return nil, domain.NewProvisioningError(
			fmt.Sprintf("failed to create zoom meeting for account %q", request.Account), err)
	}

	return &domain.ProvisionResult{
		JoinURL:   resp.JoinURL,
		MeetingID: strconv.FormatInt(resp.ID, 10),
		Passcode:  resp.Password,
	}, nil
}
