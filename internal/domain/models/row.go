// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package models

import "time"

// RowRecord is one proposed meeting, read fresh from a physical row on every
// pass and never mutated in place. Booking outcomes are recorded by writing
// new values back to the document, not by changing the record.
type RowRecord struct {
	// RowNumber is the 1-based physical row in the bookings sheet.
	RowNumber int `json:"row_number"`

	// Team is the raw team-invitees text, shown in validation summaries.
	Team string `json:"team"`

	// TeamName is used verbatim in the invite salutation.
	TeamName string `json:"team_name"`

	// Topic is the meeting name and the event subject.
	Topic string `json:"topic"`

	// Agenda is the "Meeting Name For Invite" text passed to provisioning.
	Agenda string `json:"agenda"`

	// DateRaw is the original "Date Chosen" cell text.
	DateRaw string `json:"date_raw"`

	// StartTime is the parsed wall-clock start in the booking time zone.
	StartTime time.Time `json:"start_time"`

	DurationMinutes int `json:"duration_minutes"`

	// Account is the provisioning account, already coalesced with the
	// configured default.
	Account string `json:"account"`

	// MeetingType is "zoom" or "in-person", lower-cased, defaulting to zoom.
	MeetingType string `json:"meeting_type"`

	Location string `json:"location"`

	// Participants is the order-preserving merged recipient list. Not
	// deduplicated.
	Participants []string `json:"participants"`

	// Booked is true when the status column already reads "yes".
	Booked bool `json:"booked"`
}

// ValidationOutcome pairs a normalized row with the ordered labels of its
// missing essential fields. Already-booked and invalid-date rows are never
// represented as outcomes at all.
type ValidationOutcome struct {
	Row     RowRecord `json:"row"`
	Missing []string  `json:"missing"`
}

// Ready reports whether the row can be submitted for booking.
func (v ValidationOutcome) Ready() bool {
	return len(v.Missing) == 0
}
