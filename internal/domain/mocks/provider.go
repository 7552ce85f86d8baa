// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/berytech/booking-invite-service/internal/domain"
)

// MockMeetingProvider implements MeetingProvider for testing
type MockMeetingProvider struct {
	mock.Mock
}

func (m *MockMeetingProvider) CreateMeeting(ctx context.Context, request domain.ProvisionRequest) (*domain.ProvisionResult, error) {
	args := m.Called(ctx, request)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.(*domain.ProvisionResult), args.Error(1)
}
