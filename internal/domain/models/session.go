// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package models

import "time"

// UploadSession is the validated-row snapshot bridging the interactive
// validate and commit phases. The snapshot is immutable once stored, so the
// commit step cannot diverge from what the user reviewed.
type UploadSession struct {
	// ID is an opaque random identifier assigned by the store.
	ID string `json:"id"`

	// WorkbookPath is where the uploaded document was saved; the commit
	// phase reopens it for write-back.
	WorkbookPath string `json:"workbook_path"`

	// Outcomes are the validation outcomes for the upload, in document
	// order, with the upload's global overrides already applied.
	Outcomes []ValidationOutcome `json:"outcomes"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at the given time.
func (s *UploadSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// ReadyRows returns the outcomes eligible for booking.
func (s *UploadSession) ReadyRows() []ValidationOutcome {
	var ready []ValidationOutcome
	for _, outcome := range s.Outcomes {
		if outcome.Ready() {
			ready = append(ready, outcome)
		}
	}
	return ready
}
