// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

// Package models contains the domain models for the booking service.
package models

import (
	"fmt"
	"strings"

	"github.com/berytech/booking-invite-service/pkg/constants"
)

// SheetField is a logical column of the bookings sheet. Fields resolve to
// physical column indices once at ingestion instead of by ad-hoc string
// lookups on every cell access.
type SheetField int

const (
	FieldMeetingName SheetField = iota
	FieldDateChosen
	FieldMeetingLength
	FieldMeetingNameForInvite
	FieldTeamInvitees
	FieldAddedInvitee1
	FieldAddedInvitee2
	FieldAddedInvitee3
	FieldAddedInvitee4
	FieldEmailFromForm
	FieldMeetingBooked
	FieldZoomAccount
	FieldTeamName
	FieldMeetingType
	FieldLocation
	FieldJoinURL
)

// ColumnName returns the canonical header text for the field.
func (f SheetField) ColumnName() string {
	switch f {
	case FieldMeetingName:
		return constants.ColMeetingName
	case FieldDateChosen:
		return constants.ColDateChosen
	case FieldMeetingLength:
		return constants.ColMeetingLength
	case FieldMeetingNameForInvite:
		return constants.ColMeetingNameForInvite
	case FieldTeamInvitees:
		return constants.ColTeamInvitees
	case FieldAddedInvitee1:
		return constants.ColAddedInvitee1
	case FieldAddedInvitee2:
		return constants.ColAddedInvitee2
	case FieldAddedInvitee3:
		return constants.ColAddedInvitee3
	case FieldAddedInvitee4:
		return constants.ColAddedInvitee4
	case FieldEmailFromForm:
		return constants.ColEmailFromForm
	case FieldMeetingBooked:
		return constants.ColMeetingBooked
	case FieldZoomAccount:
		return constants.ColZoomAccount
	case FieldTeamName:
		return constants.ColTeamName
	case FieldMeetingType:
		return constants.ColMeetingType
	case FieldLocation:
		return constants.ColLocation
	case FieldJoinURL:
		return constants.ColJoinURL
	default:
		return ""
	}
}

// AllSheetFields returns every logical field in declaration order.
func AllSheetFields() []SheetField {
	return []SheetField{
		FieldMeetingName,
		FieldDateChosen,
		FieldMeetingLength,
		FieldMeetingNameForInvite,
		FieldTeamInvitees,
		FieldAddedInvitee1,
		FieldAddedInvitee2,
		FieldAddedInvitee3,
		FieldAddedInvitee4,
		FieldEmailFromForm,
		FieldMeetingBooked,
		FieldZoomAccount,
		FieldTeamName,
		FieldMeetingType,
		FieldLocation,
		FieldJoinURL,
	}
}

// requiredSheetFields are the columns that must exist in the document for a
// batch to run at all. Every other field reads as empty when absent.
var requiredSheetFields = []SheetField{
	FieldMeetingName,
	FieldDateChosen,
	FieldTeamInvitees,
	FieldMeetingBooked,
}

// SheetSchema maps logical fields to resolved 1-based column indices.
// Immutable after resolution, except for the join-URL column which is
// synthesized by the sheet adapter when the document lacks it.
type SheetSchema struct {
	columns map[SheetField]int
}

// ResolveSchema builds a schema from the raw header row. Header matching is
// case- and whitespace-insensitive; blank header cells are skipped; a later
// duplicate name overwrites an earlier one. It fails with a validation error
// naming every required column that is entirely absent from the document.
func ResolveSchema(header []string) (*SheetSchema, error) {
	byName := make(map[string]int, len(header))
	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		byName[name] = i + 1 // 1-based columns
	}

	schema := &SheetSchema{columns: make(map[SheetField]int)}
	for _, field := range AllSheetFields() {
		if col, ok := byName[strings.ToLower(field.ColumnName())]; ok {
			schema.columns[field] = col
		}
	}

	var missing []string
	for _, field := range requiredSheetFields {
		if _, ok := schema.columns[field]; !ok {
			missing = append(missing, field.ColumnName())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("document is missing required columns: %s", strings.Join(missing, ", "))
	}

	return schema, nil
}

// Column returns the 1-based column index of the field, or false when the
// document has no such column.
func (s *SheetSchema) Column(field SheetField) (int, bool) {
	col, ok := s.columns[field]
	return col, ok
}

// SetColumn records a synthesized column position. Only the sheet adapter
// uses this, to append the join-URL column when it is missing.
func (s *SheetSchema) SetColumn(field SheetField, col int) {
	s.columns[field] = col
}

// MaxColumn returns the highest resolved column index.
func (s *SheetSchema) MaxColumn() int {
	max := 0
	for _, col := range s.columns {
		if col > max {
			max = col
		}
	}
	return max
}
