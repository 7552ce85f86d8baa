// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/berytech/booking-invite-service/internal/domain"
	"github.com/berytech/booking-invite-service/internal/infrastructure/graph"
	"github.com/berytech/booking-invite-service/internal/infrastructure/sheet"
	"github.com/berytech/booking-invite-service/internal/infrastructure/store"
	"github.com/berytech/booking-invite-service/internal/infrastructure/zoom"
	zoomapi "github.com/berytech/booking-invite-service/internal/infrastructure/zoom/api"
	"github.com/berytech/booking-invite-service/internal/server"
	"github.com/berytech/booking-invite-service/internal/service"
	"github.com/berytech/booking-invite-service/pkg/retry"
)

// setupServer wires the booking pipeline behind the HTTP upload flow.
func setupServer(env environment, flags flags) (*server.Server, error) {
	if err := os.MkdirAll(env.UploadDir, 0o755); err != nil {
		return nil, err
	}

	bookings, err := setupBookingService(env)
	if err != nil {
		return nil, err
	}

	open := func(path string) (domain.BookingSheet, error) {
		return sheet.Open(path)
	}
	handler := server.NewHandler(bookings, store.NewSessionStore(), open, env.UploadDir)

	return server.NewServer(handler, flags.Debug), nil
}

// setupBookingService builds the orchestrator with live Zoom and Graph
// clients.
func setupBookingService(env environment) (*service.BookingService, error) {
	zoomClient := zoomapi.NewClient(zoomapi.Config{
		AccountID:    env.ZoomAccountID,
		ClientID:     env.ZoomClientID,
		ClientSecret: env.ZoomClientSecret,
	})
	provider := zoom.NewProvider(zoomClient)

	graphClient := graph.NewClient(graph.Config{
		TenantID:     env.AADTenantID,
		ClientID:     env.AADClientID,
		ClientSecret: env.AADClientSecret,
	})
	calendar := graph.NewCalendarService(graphClient, env.OutlookHost)

	normalizer, err := service.NewRowNormalizer(env.OutlookHost)
	if err != nil {
		return nil, err
	}
	composer, err := service.NewInviteComposer()
	if err != nil {
		return nil, err
	}

	policy := retry.Default
	policy.MaxAttempts = env.RetryMaxAttempts

	return service.NewBookingService(normalizer, composer, provider, calendar, policy), nil
}
