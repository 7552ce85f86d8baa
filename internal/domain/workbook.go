// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package domain

import (
	"github.com/berytech/booking-invite-service/internal/domain/models"
)

// BookingSheet is the tabular document collaborator. It exposes the data rows
// of the bookings worksheet through a resolved schema and persists write-backs.
//
// Implementations are not safe for concurrent cell writes; the orchestrator
// processes rows strictly sequentially.
type BookingSheet interface {
	// Path returns the location of the underlying document.
	Path() string

	// Schema returns the resolved column schema for the sheet.
	Schema() *models.SheetSchema

	// DataRows returns the physical row numbers holding booking rows,
	// in document order.
	DataRows() []int

	// Cell returns the trimmed text of a logical field in the given row.
	// A field whose column is absent reads as the empty string.
	Cell(row int, field models.SheetField) string

	// SetCell writes a value to a logical field of the given row.
	SetCell(row int, field models.SheetField, value string) error

	// Save persists all pending cell writes to the document in place.
	Save() error
}
