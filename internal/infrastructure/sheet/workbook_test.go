// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/berytech/booking-invite-service/internal/domain"
	"github.com/berytech/booking-invite-service/internal/domain/models"
	"github.com/berytech/booking-invite-service/pkg/constants"
)

// writeTestWorkbook creates a Bookings sheet with the given rows, the first
// slice being the header row. Row 2 is the dummy row the export produces.
func writeTestWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	_, err := f.NewSheet(constants.BookingsSheetName)
	require.NoError(t, err)

	for r, cells := range rows {
		for c, value := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(constants.BookingsSheetName, cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "bookings.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func defaultHeader() []string {
	return []string{
		"Meeting Name", "Date Chosen", "Length of Meeting(minutes)", "Team invitees",
		"Meeting Booked", "Zoom Account to book from", "Team Name",
	}
}

func TestOpen_ResolvesSchemaAndDataRows(t *testing.T) {
	path := writeTestWorkbook(t, [][]string{
		defaultHeader(),
		{"dummy", "dummy"},
		{"Sync", "2024-05-01 10:00", "30", "a@x.com", "", "host@x.com", "Falcons"},
		{"Review", "2024-05-02 11:00", "60", "b@x.com", "yes", "host@x.com", "Owls"},
	})

	wb, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	assert.Equal(t, []int{3, 4}, wb.DataRows(), "header and dummy rows are not data rows")
	assert.Equal(t, "Sync", wb.Cell(3, models.FieldMeetingName))
	assert.Equal(t, "yes", wb.Cell(4, models.FieldMeetingBooked))
	assert.Equal(t, "", wb.Cell(3, models.FieldLocation), "absent column reads as empty")
}

func TestOpen_StopsAtFirstEmptyRow(t *testing.T) {
	path := writeTestWorkbook(t, [][]string{
		defaultHeader(),
		{"dummy"},
		{"Sync", "2024-05-01 10:00", "30", "a@x.com"},
		{"", "", ""},
		{"Orphan", "2024-05-03 10:00", "30", "c@x.com"},
	})

	wb, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	assert.Equal(t, []int{3}, wb.DataRows())
}

func TestOpen_SynthesizesJoinURLColumn(t *testing.T) {
	path := writeTestWorkbook(t, [][]string{
		defaultHeader(),
		{"dummy"},
		{"Sync", "2024-05-01 10:00", "30", "a@x.com"},
	})

	wb, err := Open(path)
	require.NoError(t, err)

	col, ok := wb.Schema().Column(models.FieldJoinURL)
	require.True(t, ok, "join-URL column must be synthesized when absent")
	assert.Equal(t, len(defaultHeader())+1, col)

	require.NoError(t, wb.SetCell(3, models.FieldJoinURL, "https://zoom.us/j/123"))
	require.NoError(t, wb.Save())
	require.NoError(t, wb.Close())

	// Reopen and verify both the header cell and the write-back persisted.
	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	assert.Equal(t, "https://zoom.us/j/123", reopened.Cell(3, models.FieldJoinURL))
}

func TestOpen_KeepsExistingJoinURLColumn(t *testing.T) {
	header := append(defaultHeader(), "JoinURL")
	path := writeTestWorkbook(t, [][]string{
		header,
		{"dummy"},
		{"Sync", "2024-05-01 10:00", "30", "a@x.com", "", "", "", "https://zoom.us/j/999"},
	})

	wb, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	col, ok := wb.Schema().Column(models.FieldJoinURL)
	require.True(t, ok)
	assert.Equal(t, len(header), col)
	assert.Equal(t, "https://zoom.us/j/999", wb.Cell(3, models.FieldJoinURL))
}

func TestOpen_MissingRequiredColumnsFailsHard(t *testing.T) {
	path := writeTestWorkbook(t, [][]string{
		{"Meeting Name", "Location"},
		{"dummy"},
	})

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Date Chosen")
	assert.Contains(t, err.Error(), "Meeting Booked")
	assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err),
		"a rejected header is caller input, not an internal fault")
}

func TestOpen_WriteBackBookedStatus(t *testing.T) {
	path := writeTestWorkbook(t, [][]string{
		defaultHeader(),
		{"dummy"},
		{"Sync", "2024-05-01 10:00", "30", "a@x.com", ""},
	})

	wb, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, wb.SetCell(3, models.FieldMeetingBooked, constants.BookedValue))
	require.NoError(t, wb.Save())
	require.NoError(t, wb.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	assert.Equal(t, "yes", reopened.Cell(3, models.FieldMeetingBooked))
}
