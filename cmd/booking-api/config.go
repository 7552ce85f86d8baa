// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/berytech/booking-invite-service/internal/logging"
)

// flags are the command line flags for the booking service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the booking service.
type environment struct {
	Port      string `env:"PORT" envDefault:"3080"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`

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

// parseFlags parses command line flags for the booking service.
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "*", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructuredLogConfig]
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the booking service.
func parseEnv() (environment, error) {
	var e environment
	if err := env.Parse(&e); err != nil {
		return environment{}, err
	}
	return e, nil
}
