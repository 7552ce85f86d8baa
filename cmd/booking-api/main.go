// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

// Package main is the booking service API that validates uploaded booking
// workbooks and books meetings with calendar invites.
package main

import (
	"log/slog"
	"net"
	"os"

	"github.com/berytech/booking-invite-service/internal/logging"
)

func main() {
	env, err := parseEnv()
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error parsing environment")
		os.Exit(1)
	}
	flags := parseFlags(env.Port)

	logging.InitStructuredLogConfig()

	srv, err := setupServer(env, flags)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up server")
		os.Exit(1)
	}

	bind := flags.Bind
	if bind == "*" {
		bind = ""
	}
	addr := net.JoinHostPort(bind, flags.Port)

	slog.With("addr", addr).Info("booking service listening")
	if err := srv.Run(addr); err != nil {
		slog.With(logging.ErrKey, err).Error("server stopped")
		os.Exit(1)
	}
}
