// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"github.com/berytech/booking-invite-service/internal/domain/models"
)

// Missing-field labels as shown in validation summaries and logs.
const (
	labelMeetingName = "Meeting Name"
	labelDateChosen  = "Date Chosen"
	labelTeam        = "Team Invitees"
	labelAccount     = "Zoom Account to book from"
	labelInvitees    = "Invitees"
)

// CompletenessValidator classifies a normalized record as ready or
// incomplete, preserving the names of the missing essential fields.
type CompletenessValidator struct{}

// NewCompletenessValidator creates a validator.
func NewCompletenessValidator() *CompletenessValidator {
	return &CompletenessValidator{}
}

// Validate lists the essential fields the row is missing, in a fixed order.
// Already-booked rows never reach this; the orchestrator excludes them first.
func (v *CompletenessValidator) Validate(row models.RowRecord) models.ValidationOutcome {
	var missing []string
	if row.Topic == "" {
		missing = append(missing, labelMeetingName)
	}
	if row.DateRaw == "" {
		missing = append(missing, labelDateChosen)
	}
	if row.Team == "" {
		missing = append(missing, labelTeam)
	}
	if row.Account == "" {
		missing = append(missing, labelAccount)
	}
	if len(row.Participants) == 0 {
		missing = append(missing, labelInvitees)
	}

	return models.ValidationOutcome{Row: row, Missing: missing}
}
