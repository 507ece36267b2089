// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import "github.com/MKhiriev/go-login-sync/models"

// CheckValid returns the first violated record invariant, checked in this
// fixed order: empty hostname, empty password, both targets present, no
// target present. A nil return means the record may be persisted or
// uploaded.
//
// Delta and merge internals never self-validate — invalid records exist
// legitimately mid-merge — so this must run on every record immediately
// before it is written to durable storage or queued for upload.
func CheckValid(rec *models.Record) error {
	if rec.Hostname == "" {
		return ErrEmptyHostname
	}

	if rec.Password == "" {
		return ErrEmptyPassword
	}

	if rec.FormSubmitURL != nil && rec.HTTPRealm != nil {
		return ErrBothTargets
	}

	if rec.FormSubmitURL == nil && rec.HTTPRealm == nil {
		return ErrNoTarget
	}

	return nil
}
