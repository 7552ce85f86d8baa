// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/caarlos0/env/v11"

	"github.com/berytech/booking-invite-service/internal/infrastructure/graph"
	"github.com/berytech/booking-invite-service/internal/infrastructure/zoom"
	zoomapi "github.com/berytech/booking-invite-service/internal/infrastructure/zoom/api"
	"github.com/berytech/booking-invite-service/internal/service"
	"github.com/berytech/booking-invite-service/pkg/retry"
)

// environment are the environment variables for the batch runner.
type environment struct {
	BookingsFile string `env:"BOOKINGS_FILE" envDefault:"Doodle Bookings.xlsx"`

	ZoomAccountID    string `env:"ZOOM_ACCOUNT_ID"`
	ZoomClientID     string `env:"ZOOM_CLIENT_ID"`
	ZoomClientSecret string `env:"ZOOM_CLIENT_SECRET"`

	AADTenantID     string `env:"AAD_TENANT_ID"`
	AADClientID     string `env:"AAD_CLIENT_ID"`
	AADClientSecret string `env:"AAD_CLIENT_SECRET"`

	// OutlookHost is the organizer mailbox for calendar events and the
	// fallback provisioning account for rows that name none.
	OutlookHost string `env:"OUTLOOK_HOST"`

	RetryMaxAttempts uint `env:"RETRY_MAX_ATTEMPTS" envDefault:"1"`
}

func parseEnv() (environment, error) {
	var e environment
	if err := env.Parse(&e); err != nil {
		return environment{}, err
	}
	return e, nil
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
