// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

// Package service contains the booking pipeline: row normalization,
// completeness validation, invite composition and the batch orchestrator.
package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/berytech/booking-invite-service/internal/domain"
	"github.com/berytech/booking-invite-service/internal/domain/models"
	"github.com/berytech/booking-invite-service/pkg/constants"
	"github.com/berytech/booking-invite-service/pkg/utils"
)

// dateLayouts are the wall-clock formats accepted for "Date Chosen",
// most specific first.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// RowNormalizer reads one physical row through the resolved schema into a
// typed record. Absent columns normalize to empty values, never errors.
type RowNormalizer struct {
	defaultAccount string
	location       *time.Location
}

// NewRowNormalizer creates a normalizer that parses dates as wall-clock time
// in the fixed booking zone and falls back to the given provisioning account.
func NewRowNormalizer(defaultAccount string) (*RowNormalizer, error) {
	location, err := time.LoadLocation(constants.BookingTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking timezone: %w", err)
	}
	return &RowNormalizer{defaultAccount: defaultAccount, location: location}, nil
}

// Location returns the booking time zone.
func (n *RowNormalizer) Location() *time.Location {
	return n.location
}

// Normalize builds a RowRecord from one physical row. A non-empty date that
// does not parse yields an invalid-date error and no record; an empty date
// yields a record with a zero start time for the validator to flag.
func (n *RowNormalizer) Normalize(sheet domain.BookingSheet, row int) (*models.RowRecord, error) {
	record := &models.RowRecord{
		RowNumber:   row,
		Team:        sheet.Cell(row, models.FieldTeamInvitees),
		TeamName:    sheet.Cell(row, models.FieldTeamName),
		Topic:       sheet.Cell(row, models.FieldMeetingName),
		Agenda:      sheet.Cell(row, models.FieldMeetingNameForInvite),
		DateRaw:     sheet.Cell(row, models.FieldDateChosen),
		Location:    sheet.Cell(row, models.FieldLocation),
		Account:     utils.CoalesceString(sheet.Cell(row, models.FieldZoomAccount), n.defaultAccount),
		MeetingType: normalizeMeetingType(sheet.Cell(row, models.FieldMeetingType)),
		Booked:      strings.EqualFold(sheet.Cell(row, models.FieldMeetingBooked), constants.BookedValue),
	}

	if record.DateRaw != "" {
		start, err := n.parseDate(record.DateRaw)
		if err != nil {
			return nil, domain.NewInvalidDateError(
				fmt.Sprintf("row %d has invalid date %q", row, record.DateRaw), err)
		}
		record.StartTime = start
	}

	duration, err := strconv.Atoi(sheet.Cell(row, models.FieldMeetingLength))
	if err != nil {
		duration = 0
	}
	record.DurationMinutes = utils.PositiveOrDefault(duration, constants.DefaultDurationMinutes)

	record.Participants = parseEmails(strings.Join([]string{
		sheet.Cell(row, models.FieldTeamInvitees),
		sheet.Cell(row, models.FieldAddedInvitee1),
		sheet.Cell(row, models.FieldAddedInvitee2),
		sheet.Cell(row, models.FieldAddedInvitee3),
		sheet.Cell(row, models.FieldAddedInvitee4),
		sheet.Cell(row, models.FieldEmailFromForm),
	}, ","))

	return record, nil
}

func (n *RowNormalizer) parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, n.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", raw)
}

func normalizeMeetingType(raw string) string {
	mt := strings.ToLower(strings.TrimSpace(raw))
	if mt == "" {
		return constants.MeetingTypeZoom
	}
	return mt
}

// parseEmails splits on comma or semicolon, trims and drops empties.
// Order is preserved and duplicates are kept.
func parseEmails(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})
	var emails []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}
