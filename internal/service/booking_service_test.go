// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/berytech/booking-invite-service/internal/domain"
	"github.com/berytech/booking-invite-service/internal/domain/mocks"
	"github.com/berytech/booking-invite-service/internal/domain/models"
	"github.com/berytech/booking-invite-service/pkg/retry"
)

func newBookingService(t *testing.T, provider domain.MeetingProvider, calendar domain.CalendarService) *BookingService {
	t.Helper()
	normalizer, err := NewRowNormalizer("default@berytech.org")
	require.NoError(t, err)
	composer, err := NewInviteComposer()
	require.NoError(t, err)
	return NewBookingService(normalizer, composer, provider, calendar, retry.Default)
}

// bookableRow returns the cells of a row that passes validation.
func bookableRow(topic, date string) map[models.SheetField]string {
	return map[models.SheetField]string{
		models.FieldMeetingName:   topic,
		models.FieldDateChosen:    date,
		models.FieldMeetingLength: "30",
		models.FieldTeamInvitees:  "a@x.com",
		models.FieldEmailFromForm: "b@x.com",
		models.FieldZoomAccount:   "host@berytech.org",
		models.FieldTeamName:      "Falcons",
	}
}

func TestRunBatch_IdempotentOverBookedDocument(t *testing.T) {
	provider := &mocks.MockMeetingProvider{}
	calendar := &mocks.MockCalendarService{}
	service := newBookingService(t, provider, calendar)

	row3 := bookableRow("Sync", "2024-05-01 10:00")
	row3[models.FieldMeetingBooked] = "yes"
	row4 := bookableRow("Review", "2024-05-02 11:00")
	row4[models.FieldMeetingBooked] = "Yes"
	sheet := mocks.NewFakeBookingSheet(map[int]map[models.SheetField]string{3: row3, 4: row4})

	result, err := service.RunBatch(context.Background(), sheet, BatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 2, result.SkippedAlreadyBooked)
	provider.AssertNotCalled(t, "CreateMeeting")
	calendar.AssertNotCalled(t, "CreateEvent")
	assert.Equal(t, 0, sheet.Saves, "no write-back for skipped rows")
}

func TestRunBatch_PartialFailureIsolation(t *testing.T) {
	provider := &mocks.MockMeetingProvider{}
	calendar := &mocks.MockCalendarService{}
	service := newBookingService(t, provider, calendar)

	sheet := mocks.NewFakeBookingSheet(map[int]map[models.SheetField]string{
		3: bookableRow("First", "2024-05-01 10:00"),
		4: bookableRow("Second", "2024-05-01 11:00"),
		5: bookableRow("Third", "2024-05-01 12:00"),
	})

	provider.On("CreateMeeting", mock.Anything, mock.MatchedBy(func(r domain.ProvisionRequest) bool {
		return r.Topic == "Second"
	})).Return(nil, domain.NewProvisioningError("zoom rejected the meeting"))
	provider.On("CreateMeeting", mock.Anything, mock.Anything).
		Return(&domain.ProvisionResult{JoinURL: "https://zoom.us/j/123"}, nil)
	calendar.On("CreateEvent", mock.Anything, mock.Anything).Return(nil)

	result, err := service.RunBatch(context.Background(), sheet, BatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "Second", result.Failures[0].Row.Topic)
	assert.Equal(t, models.RowStateFailed, result.Failures[0].State)
	assert.Contains(t, result.Failures[0].Message, "zoom rejected")

	// Rows 1 and 3 are booked with join references; row 2 is untouched.
	assert.Equal(t, "yes", sheet.Cell(3, models.FieldMeetingBooked))
	assert.Equal(t, "https://zoom.us/j/123", sheet.Cell(3, models.FieldJoinURL))
	assert.Equal(t, "", sheet.Cell(4, models.FieldMeetingBooked))
	assert.Equal(t, "", sheet.Cell(4, models.FieldJoinURL))
	assert.Equal(t, "yes", sheet.Cell(5, models.FieldMeetingBooked))
}

func TestRunBatch_InPersonNeverProvisions(t *testing.T) {
	provider := &mocks.MockMeetingProvider{}
	calendar := &mocks.MockCalendarService{}
	service := newBookingService(t, provider, calendar)

	row := bookableRow("Kickoff", "2024-05-01 10:00")
	row[models.FieldMeetingType] = "In-Person"
	row[models.FieldLocation] = "BDD Room 3"
	sheet := mocks.NewFakeBookingSheet(map[int]map[models.SheetField]string{3: row})

	var event domain.CalendarEvent
	calendar.On("CreateEvent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { event = args.Get(1).(domain.CalendarEvent) }).
		Return(nil)

	result, err := service.RunBatch(context.Background(), sheet, BatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	provider.AssertNotCalled(t, "CreateMeeting")
	assert.Equal(t, "BDD Room 3", event.Location)
	assert.Equal(t, "yes", sheet.Cell(3, models.FieldMeetingBooked))
	assert.Equal(t, "", sheet.Cell(3, models.FieldJoinURL))
}

func TestRunBatch_InviteFailureLeavesRowBooked(t *testing.T) {
	provider := &mocks.MockMeetingProvider{}
	calendar := &mocks.MockCalendarService{}
	service := newBookingService(t, provider, calendar)

	sheet := mocks.NewFakeBookingSheet(map[int]map[models.SheetField]string{
		3: bookableRow("Sync", "2024-05-01 10:00"),
	})

	provider.On("CreateMeeting", mock.Anything, mock.Anything).
		Return(&domain.ProvisionResult{JoinURL: "https://zoom.us/j/123"}, nil)
	calendar.On("CreateEvent", mock.Anything, mock.Anything).
		Return(domain.NewInviteDispatchError("graph unavailable"))

	result, err := service.RunBatch(context.Background(), sheet, BatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, models.RowStateBookedNotInvited, result.Failures[0].State)

	// Write-back committed before the invite; the row stays booked.
	assert.Equal(t, "yes", sheet.Cell(3, models.FieldMeetingBooked))
	assert.Equal(t, "https://zoom.us/j/123", sheet.Cell(3, models.FieldJoinURL))
}

func TestValidate_IncompleteRowReportedAndWithheld(t *testing.T) {
	provider := &mocks.MockMeetingProvider{}
	calendar := &mocks.MockCalendarService{}
	service := newBookingService(t, provider, calendar)

	row := bookableRow("Sync", "2024-05-01 10:00")
	delete(row, models.FieldDateChosen)
	sheet := mocks.NewFakeBookingSheet(map[int]map[models.SheetField]string{3: row})

	report, err := service.Validate(context.Background(), sheet, BatchOptions{})
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, []string{"Date Chosen"}, report.Outcomes[0].Missing)

	result := service.Commit(context.Background(), sheet, report.Outcomes)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 1, result.SkippedIncomplete)
	provider.AssertNotCalled(t, "CreateMeeting")
	calendar.AssertNotCalled(t, "CreateEvent")
}

func TestValidate_InvalidDateRowExcludedEntirely(t *testing.T) {
	provider := &mocks.MockMeetingProvider{}
	calendar := &mocks.MockCalendarService{}
	service := newBookingService(t, provider, calendar)

	bad := bookableRow("Broken", "sometime next week")
	good := bookableRow("Sync", "2024-05-01 10:00")
	sheet := mocks.NewFakeBookingSheet(map[int]map[models.SheetField]string{3: bad, 4: good})

	report, err := service.Validate(context.Background(), sheet, BatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.SkippedInvalidDate)
	require.Len(t, report.Outcomes, 1, "invalid-date rows carry no outcome at all")
	assert.Equal(t, "Sync", report.Outcomes[0].Row.Topic)
}

func TestValidate_GlobalOverridesApplied(t *testing.T) {
	provider := &mocks.MockMeetingProvider{}
	calendar := &mocks.MockCalendarService{}
	service := newBookingService(t, provider, calendar)

	sheet := mocks.NewFakeBookingSheet(map[int]map[models.SheetField]string{
		3: bookableRow("Sync", "2024-05-01 10:00"),
	})

	report, err := service.Validate(context.Background(), sheet, BatchOptions{
		MeetingTypeOverride: "In-Person",
		LocationOverride:    "Berytech HQ",
	})
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, "in-person", report.Outcomes[0].Row.MeetingType)
	assert.Equal(t, "Berytech HQ", report.Outcomes[0].Row.Location)
}

func TestRunBatch_EndToEndZoomExample(t *testing.T) {
	provider := &mocks.MockMeetingProvider{}
	calendar := &mocks.MockCalendarService{}
	service := newBookingService(t, provider, calendar)

	row := map[models.SheetField]string{
		models.FieldMeetingName:   "Sync",
		models.FieldDateChosen:    "2024-05-01 10:00",
		models.FieldMeetingLength: "30",
		models.FieldTeamInvitees:  "a@x.com,b@x.com",
		models.FieldZoomAccount:   "host@berytech.org",
		models.FieldMeetingType:   "zoom",
	}
	sheet := mocks.NewFakeBookingSheet(map[int]map[models.SheetField]string{3: row})

	var request domain.ProvisionRequest
	provider.On("CreateMeeting", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { request = args.Get(1).(domain.ProvisionRequest) }).
		Return(&domain.ProvisionResult{JoinURL: "https://zoom.us/j/42"}, nil)

	var event domain.CalendarEvent
	calendar.On("CreateEvent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { event = args.Get(1).(domain.CalendarEvent) }).
		Return(nil)

	result, err := service.RunBatch(context.Background(), sheet, BatchOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, result.Sent)

	assert.Equal(t, "host@berytech.org", request.Account)
	assert.Equal(t, 30, request.DurationMinutes)

	assert.Equal(t, "Asia/Beirut", event.Timezone)
	assert.Equal(t, "2024-05-01T10:00:00", event.Start.Format("2006-01-02T15:04:05"))
	assert.Equal(t, "2024-05-01T10:30:00", event.End.Format("2006-01-02T15:04:05"))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, event.Attendees)
	assert.Contains(t, event.BodyHTML, "Zoom Link")
}
