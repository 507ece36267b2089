// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service orchestrates the reconciliation core against its
// collaborators: the login repository (persistence) and the server adapter
// (transport). One Sync call is one full reconciliation pass.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-login-sync/models"
)

// SyncService runs reconciliation passes against the server.
type SyncService interface {
	// Sync performs one pass: download, per-guid three-way reconcile,
	// writeback, upload. Per-row failures are counted in the returned
	// stats; identity-integrity violations abort the pass with an error.
	Sync(ctx context.Context) (SyncStats, error)
}

// RecordService is the local write surface of the store: every local edit
// goes through it so sync lifecycle bookkeeping (guid minting, sync_status,
// local_modified, mirror overrides) stays consistent.
type RecordService interface {
	// Add validates and inserts a new record, minting a guid when rec
	// carries none. Returns the stored record.
	Add(ctx context.Context, rec models.Record) (models.Record, error)

	// Update validates rec and overwrites the guid's live local row.
	Update(ctx context.Context, rec models.Record) error

	// Delete tombstones the guid locally; the deletion propagates on the
	// next sync pass.
	Delete(ctx context.Context, guid string) error

	// RecordUsage bumps the guid's usage counter and last-used time.
	RecordUsage(ctx context.Context, guid string, at time.Time) error
}
