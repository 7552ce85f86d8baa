// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package mocks

import (
	"sort"
	"strings"

	"github.com/berytech/booking-invite-service/internal/domain/models"
)

// FakeBookingSheet is a stateful in-memory BookingSheet for testing the
// orchestrator's write-back behavior.
type FakeBookingSheet struct {
	schema  *models.SheetSchema
	rows    map[int]map[models.SheetField]string
	SaveErr error
	Saves   int
}

// NewFakeBookingSheet builds a sheet with every logical column present.
// Row numbers follow the document convention: header is row 1, the first
// data row is row 3 (row 2 is the export's dummy row).
func NewFakeBookingSheet(rows map[int]map[models.SheetField]string) *FakeBookingSheet {
	header := make([]string, 0, len(models.AllSheetFields()))
	for _, field := range models.AllSheetFields() {
		header = append(header, field.ColumnName())
	}
	schema, err := models.ResolveSchema(header)
	if err != nil {
		panic(err)
	}

	copied := make(map[int]map[models.SheetField]string, len(rows))
	for num, cells := range rows {
		rowCopy := make(map[models.SheetField]string, len(cells))
		for field, value := range cells {
			rowCopy[field] = value
		}
		copied[num] = rowCopy
	}

	return &FakeBookingSheet{schema: schema, rows: copied}
}

func (f *FakeBookingSheet) Path() string { return "fake.xlsx" }

func (f *FakeBookingSheet) Schema() *models.SheetSchema { return f.schema }

func (f *FakeBookingSheet) DataRows() []int {
	nums := make([]int, 0, len(f.rows))
	for num := range f.rows {
		nums = append(nums, num)
	}
	sort.Ints(nums)
	return nums
}

func (f *FakeBookingSheet) Cell(row int, field models.SheetField) string {
	return strings.TrimSpace(f.rows[row][field])
}

func (f *FakeBookingSheet) SetCell(row int, field models.SheetField, value string) error {
	if f.rows[row] == nil {
		f.rows[row] = make(map[models.SheetField]string)
	}
	f.rows[row][field] = value
	return nil
}

func (f *FakeBookingSheet) Save() error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Saves++
	return nil
}
