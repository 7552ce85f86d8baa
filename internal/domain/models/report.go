// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package models

// ValidationReport is the side-effect-free result of the validate phase.
// Already-booked and invalid-date rows are counted but carry no outcomes.
type ValidationReport struct {
	// Outcomes holds one entry per candidate row, in document order.
	Outcomes []ValidationOutcome `json:"outcomes"`

	SkippedAlreadyBooked int `json:"skipped_already_booked"`
	SkippedInvalidDate   int `json:"skipped_invalid_date"`

	// RowsFilled counts rows with at least one essential field present,
	// shown in the validation summary.
	RowsFilled int `json:"rows_filled"`
}

// ReadyCount returns how many rows are eligible for booking.
func (r *ValidationReport) ReadyCount() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Ready() {
			count++
		}
	}
	return count
}

// HasMissing reports whether any candidate row lacks essential fields.
func (r *ValidationReport) HasMissing() bool {
	for _, outcome := range r.Outcomes {
		if !outcome.Ready() {
			return true
		}
	}
	return false
}
