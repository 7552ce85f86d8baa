// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

// Package main is the command-line batch runner: it books every bookable
// row of a workbook in one pass and writes the results back in place.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/berytech/booking-invite-service/internal/domain/models"
	"github.com/berytech/booking-invite-service/internal/infrastructure/sheet"
	"github.com/berytech/booking-invite-service/internal/logging"
	"github.com/berytech/booking-invite-service/internal/service"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [workbook.xlsx]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	logging.InitStructuredLogConfig()

	if err := run(context.Background(), flag.Arg(0)); err != nil {
		slog.With(logging.ErrKey, err).Error("batch run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, path string) error {
	env, err := parseEnv()
	if err != nil {
		return err
	}
	if path == "" {
		path = env.BookingsFile
	}

	bookings, err := setupBookingService(env)
	if err != nil {
		return err
	}

	workbook, err := sheet.Open(path)
	if err != nil {
		return err
	}
	defer workbook.Close()

	report, err := bookings.Validate(ctx, workbook, service.BatchOptions{})
	if err != nil {
		return err
	}

	total := &models.BookingBatchResult{
		SkippedAlreadyBooked: report.SkippedAlreadyBooked,
		SkippedInvalidDate:   report.SkippedInvalidDate,
	}

	// Rows are committed one at a time so each booking can be echoed as it
	// lands, matching the write-back order in the file.
	for _, outcome := range report.Outcomes {
		result := bookings.Commit(ctx, workbook, []models.ValidationOutcome{outcome})
		switch {
		case result.Sent == 1:
			fmt.Printf("✔ %s\n", outcome.Row.Topic)
		case result.SkippedIncomplete == 1:
			fmt.Printf("Skipping row %d: missing %s\n",
				outcome.Row.RowNumber, strings.Join(outcome.Missing, ", "))
		}
		total.Sent += result.Sent
		total.Failed += result.Failed
		total.SkippedIncomplete += result.SkippedIncomplete
		total.Failures = append(total.Failures, result.Failures...)
	}

	fmt.Printf("Done. Sent: %d, Failed: %d, Already booked: %d, Invalid dates: %d, Incomplete: %d\n",
		total.Sent, total.Failed, total.SkippedAlreadyBooked,
		total.SkippedInvalidDate, total.SkippedIncomplete)
	for _, failure := range total.Failures {
		fmt.Printf("  row %d (%s): %s\n", failure.Row.RowNumber, failure.Row.Topic, failure.Message)
	}
	return nil
}
