// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"

	"github.com/berytech/booking-invite-service/internal/domain"
	"github.com/berytech/booking-invite-service/internal/domain/models"
	"github.com/berytech/booking-invite-service/internal/logging"
	"github.com/berytech/booking-invite-service/pkg/constants"
	"github.com/berytech/booking-invite-service/pkg/retry"
	"github.com/berytech/booking-invite-service/pkg/utils"
)

// BatchOptions carry the global selections of the interactive path. Empty
// values leave the per-row values untouched.
type BatchOptions struct {
	MeetingTypeOverride string
	LocationOverride    string
}

// BookingService drives rows through the booking pipeline: normalize,
// validate, provision, write back, invite. Rows are processed strictly in
// document order with no two external calls in flight at once, because
// write-back must be observed before the next row is classified and the
// document collaborator is not safe for concurrent writes.
type BookingService struct {
	normalizer  *RowNormalizer
	validator   *CompletenessValidator
	composer    *InviteComposer
	provider    domain.MeetingProvider
	calendar    domain.CalendarService
	retryPolicy retry.Policy
}

// NewBookingService creates the orchestrator. The retry policy defaults to a
// single attempt, keeping every failure terminal for its row.
func NewBookingService(
	normalizer *RowNormalizer,
	composer *InviteComposer,
	provider domain.MeetingProvider,
	calendar domain.CalendarService,
	retryPolicy retry.Policy,
) *BookingService {
	if retryPolicy.MaxAttempts == 0 {
		retryPolicy = retry.Default
	}
	return &BookingService{
		normalizer:  normalizer,
		validator:   NewCompletenessValidator(),
		composer:    composer,
		provider:    provider,
		calendar:    calendar,
		retryPolicy: retryPolicy,
	}
}

// Validate classifies every data row without side effects. Already-booked
// rows and rows with unparsable dates are excluded from the outcomes and
// only counted; incomplete rows are kept with their missing-field labels.
func (s *BookingService) Validate(ctx context.Context, sheet domain.BookingSheet, opts BatchOptions) (*models.ValidationReport, error) {
	report := &models.ValidationReport{}

	for _, rowNum := range sheet.DataRows() {
		record, err := s.normalizer.Normalize(sheet, rowNum)
		if err != nil {
			if domain.GetErrorType(err) == domain.ErrorTypeInvalidDate {
				report.SkippedInvalidDate++
				report.RowsFilled++
				slog.WarnContext(ctx, "skipping row with invalid or missing date",
					"row", rowNum,
					logging.ErrKey, err)
				continue
			}
			return nil, err
		}

		applyOverrides(record, opts)

		if record.Topic != "" || record.DateRaw != "" || record.Team != "" ||
			record.Account != "" || len(record.Participants) > 0 {
			report.RowsFilled++
		}

		if record.Booked {
			report.SkippedAlreadyBooked++
			continue
		}

		report.Outcomes = append(report.Outcomes, s.validator.Validate(*record))
	}

	return report, nil
}

// Commit books every ready outcome against the sheet, sequentially and in
// order. Per-row failures are folded into the result; none aborts the batch.
func (s *BookingService) Commit(ctx context.Context, sheet domain.BookingSheet, outcomes []models.ValidationOutcome) *models.BookingBatchResult {
	result := &models.BookingBatchResult{}

	for _, outcome := range outcomes {
		if !outcome.Ready() {
			result.SkippedIncomplete++
			continue
		}
		s.bookRow(ctx, sheet, outcome.Row, result)
	}

	return result
}

// RunBatch validates and commits the whole document in one synchronous run.
func (s *BookingService) RunBatch(ctx context.Context, sheet domain.BookingSheet, opts BatchOptions) (*models.BookingBatchResult, error) {
	report, err := s.Validate(ctx, sheet, opts)
	if err != nil {
		return nil, err
	}

	result := s.Commit(ctx, sheet, report.Outcomes)
	result.SkippedAlreadyBooked = report.SkippedAlreadyBooked
	result.SkippedInvalidDate = report.SkippedInvalidDate
	return result, nil
}

// bookRow runs one row through provisioning, write-back and invitation.
func (s *BookingService) bookRow(ctx context.Context, sheet domain.BookingSheet, row models.RowRecord, result *models.BookingBatchResult) {
	ctx = logging.AppendCtx(ctx, slog.Int("row", row.RowNumber))
	ctx = logging.AppendCtx(ctx, slog.String("topic", row.Topic))

	var joinURL string
	if row.MeetingType != constants.MeetingTypeInPerson {
		provisioned, err := retry.DoValue(ctx, s.retryPolicy, func() (*domain.ProvisionResult, error) {
			return s.provider.CreateMeeting(ctx, domain.ProvisionRequest{
				Account:         row.Account,
				Topic:           row.Topic,
				StartTime:       row.StartTime,
				DurationMinutes: row.DurationMinutes,
				Agenda:          utils.CoalesceString(row.Agenda, row.Topic),
			})
		})
		if err != nil {
			slog.ErrorContext(ctx, "provisioning failed, row left unbooked", logging.ErrKey, err)
			result.RecordFailure(row, models.RowStateFailed, err.Error())
			return
		}
		joinURL = provisioned.JoinURL
	}

	// Write-back precedes the invite: a crash after provisioning must not
	// re-provision the row on the next run, even if it never gets invited.
	if err := s.writeBack(sheet, row.RowNumber, joinURL); err != nil {
		slog.ErrorContext(ctx, "write-back failed, row not invited", logging.ErrKey, err)
		result.RecordFailure(row, models.RowStateFailed, err.Error())
		return
	}

	event, err := s.composer.Compose(row, joinURL)
	if err == nil {
		err = retry.Do(ctx, s.retryPolicy, func() error {
			return s.calendar.CreateEvent(ctx, event)
		})
	}
	if err != nil {
		// The booked flag is already committed; the invite must be re-sent
		// manually.
		slog.ErrorContext(ctx, "invite dispatch failed for a row already marked booked",
			logging.ErrKey, err,
			logging.PriorityCritical())
		result.RecordFailure(row, models.RowStateBookedNotInvited, err.Error())
		return
	}

	slog.InfoContext(ctx, "row booked", "join_url", joinURL)
	result.Sent++
}

func (s *BookingService) writeBack(sheet domain.BookingSheet, rowNum int, joinURL string) error {
	if joinURL != "" {
		if err := sheet.SetCell(rowNum, models.FieldJoinURL, joinURL); err != nil {
			return err
		}
	}
	if err := sheet.SetCell(rowNum, models.FieldMeetingBooked, constants.BookedValue); err != nil {
		return err
	}
	return sheet.Save()
}

func applyOverrides(record *models.RowRecord, opts BatchOptions) {
	if opts.MeetingTypeOverride != "" {
		record.MeetingType = normalizeMeetingType(opts.MeetingTypeOverride)
	}
	if opts.LocationOverride != "" {
		record.Location = opts.LocationOverride
	}
}
