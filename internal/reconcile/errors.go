// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"errors"
	"fmt"
)

// Validation failures returned by CheckValid, in the order they are checked.
// These are recoverable: the offending record is rejected from persistence
// and upload while the pass continues with other guids. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyHostname is returned for a record without a hostname.
	ErrEmptyHostname = errors.New("record has empty hostname")

	// ErrEmptyPassword is returned for a record without a password.
	ErrEmptyPassword = errors.New("record has empty password")

	// ErrBothTargets is returned when a record carries both formSubmitURL
	// and httpRealm; the two target fields are mutually exclusive.
	ErrBothTargets = errors.New("record has both formSubmitURL and httpRealm")

	// ErrNoTarget is returned when a record carries neither target field.
	ErrNoTarget = errors.New("record has neither formSubmitURL nor httpRealm")
)

// Identity-integrity violations inside a RecordData context. Unlike the
// validation errors above these indicate a defect in the caller's guid-based
// dispatch, so they are fatal to the pass: continuing would silently corrupt
// further merges.
var (
	// ErrSlotOccupied is returned when the local or mirror slot of a
	// context is assigned twice.
	ErrSlotOccupied = errors.New("slot already populated")

	// ErrGUIDMismatch is returned when the record placed into a slot does
	// not carry the context's guid.
	ErrGUIDMismatch = errors.New("record guid does not match context guid")
)

// IntegrityError wraps an identity-integrity violation with the context it
// occurred in. Callers must treat it as "stop processing, alert" rather than
// a soft per-record failure; it never downgrades to a warning.
type IntegrityError struct {
	GUID string // the context's guid
	Slot string // "local" or "mirror"
	Err  error  // ErrSlotOccupied or ErrGUIDMismatch
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("identity integrity violation on %s slot of %q: %v", e.Slot, e.GUID, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// IsIntegrityError reports whether err is (or wraps) an IntegrityError.
func IsIntegrityError(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}
