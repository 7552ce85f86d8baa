// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

// Package retry provides an optional bounded exponential backoff policy for
// external calls. The zero value performs exactly one attempt, so failures
// stay terminal for their row unless a policy is configured explicitly.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Policy configures re-attempts around a single external call.
type Policy struct {
	// MaxAttempts is the total number of attempts. Values below 2 disable
	// retries entirely.
	MaxAttempts uint
	// InitialInterval is the delay before the first re-attempt.
	InitialInterval time.Duration
	// MaxInterval caps the exponential growth of the delay.
	MaxInterval time.Duration
}

// Default performs a single attempt with no retries.
var Default = Policy{MaxAttempts: 1}

// DoValue runs op under the policy and returns its result.
func DoValue[T any](ctx context.Context, p Policy, op func() (T, error)) (T, error) {
	if p.MaxAttempts <= 1 {
		return op()
	}

	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}

	return backoff.Retry(ctx, func() (T, error) { return op() },
		backoff.WithBackOff(b),
		backoff.WithMaxTries(p.MaxAttempts),
	)
}

// Do runs an error-only op under the policy.
func Do(ctx context.Context, p Policy, op func() error) error {
	_, err := DoValue(ctx, p, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}
