// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoValue_DefaultSingleAttempt(t *testing.T) {
	calls := 0
	_, err := DoValue(context.Background(), Default, func() (string, error) {
		calls++
		return "", errors.New("boom")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "default policy must not retry")
}

func TestDoValue_RetriesUntilSuccess(t *testing.T) {
	policy := Policy{
		MaxAttempts:     3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
	}

	calls := 0
	got, err := DoValue(context.Background(), policy, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "join-url", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "join-url", got)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	policy := Policy{
		MaxAttempts:     2,
		InitialInterval: time.Millisecond,
	}

	calls := 0
	err := Do(context.Background(), policy, func() error {
		calls++
		return errors.New("still failing")
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}
