// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Sentinel errors returned when decoding persisted rows or server envelopes.
// Callers should use [errors.Is] to match against these values. Each of them
// is a per-row condition: the affected guid is skipped and the rest of the
// batch proceeds.
var (
	// ErrBadSyncStatus is returned when a stored sync_status ordinal is
	// outside the closed {synced, changed, new} set, which can only mean
	// the row is corrupt.
	ErrBadSyncStatus = errors.New("bad sync status ordinal")

	// ErrMissingGUID is returned when a server envelope carries no record
	// id, leaving nothing to key the reconciliation on.
	ErrMissingGUID = errors.New("record envelope has no id")
)
