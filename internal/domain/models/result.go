// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package models

// RowState is the terminal state of one row after an orchestrator run.
// Transitions are strictly forward; there are no backward edges.
type RowState string

const (
	// RowStateSkippedAlreadyBooked is the idempotency short-circuit.
	RowStateSkippedAlreadyBooked RowState = "skipped_already_booked"

	// RowStateSkippedIncomplete marks rows with missing essential fields.
	RowStateSkippedIncomplete RowState = "skipped_incomplete"

	// RowStateSkippedInvalidDate marks rows whose date column did not parse.
	RowStateSkippedInvalidDate RowState = "skipped_invalid_date"

	// RowStateFailed marks rows whose provisioning call failed. The row's
	// booked status was not written.
	RowStateFailed RowState = "failed"

	// RowStateBookedNotInvited marks rows whose invite dispatch failed after
	// the write-back had already committed. The row stays marked booked and
	// must be re-sent manually.
	RowStateBookedNotInvited RowState = "booked_not_invited"

	// RowStateBooked is full success: provisioned, written back, invited.
	RowStateBooked RowState = "booked"
)

// RowFailure records one failed row for the batch report.
type RowFailure struct {
	Row     RowRecord `json:"row"`
	State   RowState  `json:"state"`
	Message string    `json:"message"`
}

// BookingBatchResult aggregates the per-row outcomes of one orchestrator run.
// It is built once per run and never persisted.
type BookingBatchResult struct {
	// Sent counts rows that reached the Booked state.
	Sent int `json:"sent"`

	// Failed counts failed rows, including booked-not-invited ones.
	Failed int `json:"failed"`

	// SkippedAlreadyBooked counts idempotency skips.
	SkippedAlreadyBooked int `json:"skipped_already_booked"`

	// SkippedInvalidDate counts rows dropped for unparsable dates.
	SkippedInvalidDate int `json:"skipped_invalid_date"`

	// SkippedIncomplete counts rows withheld for missing essential fields.
	SkippedIncomplete int `json:"skipped_incomplete"`

	// Failures holds the original row and error message per failed row.
	Failures []RowFailure `json:"failures,omitempty"`
}

// RecordFailure folds one failed row into the result.
func (r *BookingBatchResult) RecordFailure(row RowRecord, state RowState, message string) {
	r.Failed++
	r.Failures = append(r.Failures, RowFailure{Row: row, State: state, Message: message})
}
