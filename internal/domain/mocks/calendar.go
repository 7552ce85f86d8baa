// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/berytech/booking-invite-service/internal/domain"
)

// MockCalendarService implements CalendarService for testing
type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) CreateEvent(ctx context.Context, event domain.CalendarEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
