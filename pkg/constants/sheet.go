// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package constants

// Workbook layout
const (
	// BookingsSheetName is the worksheet that holds the booking rows
	BookingsSheetName = "Bookings"

	// HeaderRowNumber is the 1-based row that holds the column names
	HeaderRowNumber = 1
)

// Column names as they appear in the header row of the Bookings sheet.
// Lookups are case- and whitespace-insensitive.
const (
	ColMeetingName          = "Meeting Name"
	ColDateChosen           = "Date Chosen"
	ColMeetingLength        = "Length of Meeting(minutes)"
	ColMeetingNameForInvite = "Meeting Name For Invite"
	ColTeamInvitees         = "Team invitees"
	ColAddedInvitee1        = "Added Invitee 1"
	ColAddedInvitee2        = "Added Invitee 2"
	ColAddedInvitee3        = "Added Invitee 3"
	ColAddedInvitee4        = "Added Invitee 4"
	ColEmailFromForm        = "Email from form"
	ColMeetingBooked        = "Meeting Booked"
	ColZoomAccount          = "Zoom Account to book from"
	ColTeamName             = "Team Name"
	ColMeetingType          = "Meeting Type"
	ColLocation             = "Location"
	ColJoinURL              = "JoinURL"
)

// Booking semantics
const (
	// BookedValue is the status cell value that marks a row as already booked
	BookedValue = "yes"

	// DefaultDurationMinutes is used when the length column is absent or unparsable
	DefaultDurationMinutes = 60

	// BookingTimezone is the fixed wall-clock zone for "Date Chosen" values
	// and for the start/end of every calendar event
	BookingTimezone = "Asia/Beirut"
)

// Meeting types
const (
	MeetingTypeZoom     = "zoom"
	MeetingTypeInPerson = "in-person"
)
