// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

// Package sheet adapts an xlsx workbook to the BookingSheet collaborator
// contract. The workbook is the system of record for booking state.
package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/berytech/booking-invite-service/internal/domain"
	"github.com/berytech/booking-invite-service/internal/domain/models"
	"github.com/berytech/booking-invite-service/pkg/constants"
)

// Workbook reads and writes the Bookings sheet of one xlsx document.
// Not safe for concurrent use.
type Workbook struct {
	file     *excelize.File
	path     string
	schema   *models.SheetSchema
	dataRows []int
}

// Ensure Workbook implements BookingSheet
var _ domain.BookingSheet = (*Workbook)(nil)

// Open loads the document, resolves the column schema from the header row and
// synthesizes the join-URL column when the document lacks it. The first data
// row of the export is a dummy row and is skipped, matching the export format.
func Open(path string) (*Workbook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %q: %w", path, err)
	}

	rows, err := file.GetRows(constants.BookingsSheetName)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to read sheet %q: %w", constants.BookingsSheetName, err)
	}
	if len(rows) == 0 {
		_ = file.Close()
		return nil, fmt.Errorf("sheet %q has no header row", constants.BookingsSheetName)
	}

	schema, err := models.ResolveSchema(rows[constants.HeaderRowNumber-1])
	if err != nil {
		_ = file.Close()
		return nil, domain.NewValidationError("workbook header rejected", err)
	}

	wb := &Workbook{file: file, path: path, schema: schema}

	if _, ok := schema.Column(models.FieldJoinURL); !ok {
		if err := wb.appendJoinURLColumn(len(rows[constants.HeaderRowNumber-1])); err != nil {
			_ = file.Close()
			return nil, err
		}
	}

	// The export writes a dummy row directly under the header; data rows
	// start one row later and end at the first fully empty row.
	for i := constants.HeaderRowNumber + 2; i <= len(rows); i++ {
		if rowEmpty(rows[i-1]) {
			break
		}
		wb.dataRows = append(wb.dataRows, i)
	}

	return wb, nil
}

func rowEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func (w *Workbook) appendJoinURLColumn(headerWidth int) error {
	col := headerWidth + 1
	if max := w.schema.MaxColumn(); max >= col {
		col = max + 1
	}
	cell, err := excelize.CoordinatesToCellName(col, constants.HeaderRowNumber)
	if err != nil {
		return fmt.Errorf("failed to locate join-URL header cell: %w", err)
	}
	if err := w.file.SetCellStr(constants.BookingsSheetName, cell, constants.ColJoinURL); err != nil {
		return fmt.Errorf("failed to write join-URL header: %w", err)
	}
	w.schema.SetColumn(models.FieldJoinURL, col)
	return nil
}

// Path returns the document location.
func (w *Workbook) Path() string { return w.path }

// Schema returns the resolved column schema.
func (w *Workbook) Schema() *models.SheetSchema { return w.schema }

// DataRows returns the physical row numbers of the booking rows in order.
func (w *Workbook) DataRows() []int { return w.dataRows }

// Cell returns the trimmed text of a logical field. An absent column reads
// as the empty string.
func (w *Workbook) Cell(row int, field models.SheetField) string {
	col, ok := w.schema.Column(field)
	if !ok {
		return ""
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	value, err := w.file.GetCellValue(constants.BookingsSheetName, cell)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

// SetCell writes a value to a logical field of the given row.
func (w *Workbook) SetCell(row int, field models.SheetField, value string) error {
	col, ok := w.schema.Column(field)
	if !ok {
		return fmt.Errorf("no column resolved for %q", field.ColumnName())
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to locate cell for %q row %d: %w", field.ColumnName(), row, err)
	}
	if err := w.file.SetCellStr(constants.BookingsSheetName, cell, value); err != nil {
		return fmt.Errorf("failed to write %q row %d: %w", field.ColumnName(), row, err)
	}
	return nil
}

// Save persists pending writes to the document in place.
func (w *Workbook) Save() error {
	if err := w.file.Save(); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", w.path, err)
	}
	return nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}
