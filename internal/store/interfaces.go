// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-login-sync/models"
)

// CorruptRow reports one row a list method had to skip: the row decoded
// badly (e.g. an out-of-range sync_status ordinal) but the rest of the batch
// is fine. The affected guid must not be reconciled this pass.
type CorruptRow struct {
	GUID string
	Err  error
}

// LoginRepository is the persistence collaborator of the reconciliation
// core: it owns the loginsL (local view) and loginsM (mirror view) tables
// and executes the row writes a reconciliation outcome calls for. The core
// itself never touches the database.
type LoginRepository interface {
	// GetLocal returns the guid's local row, ErrRecordNotFound when absent.
	GetLocal(ctx context.Context, guid string) (models.LocalRecord, error)

	// ListLocalByGUIDs loads the local rows for the given guids. Corrupt
	// rows are skipped and reported, not fatal to the batch.
	ListLocalByGUIDs(ctx context.Context, guids []string) ([]models.LocalRecord, []CorruptRow, error)

	// ListMirrorByGUIDs loads the mirror rows for the given guids.
	ListMirrorByGUIDs(ctx context.Context, guids []string) ([]models.MirrorRecord, []CorruptRow, error)

	// ListUnsyncedLocal returns every local row whose state the server has
	// not seen yet (new, changed, or tombstoned pending upload).
	ListUnsyncedLocal(ctx context.Context) ([]models.LocalRecord, []CorruptRow, error)

	// AddLocal inserts rec as a freshly created local row (status new).
	AddLocal(ctx context.Context, rec models.Record, now time.Time) error

	// UpdateLocal overwrites the record fields of a live local row, stamps
	// local_modified and moves a synced row to changed. The guid's mirror
	// row, if any, is marked overridden.
	UpdateLocal(ctx context.Context, rec models.Record, now time.Time) error

	// MarkDeleted turns a live local row into a tombstone pending upload.
	MarkDeleted(ctx context.Context, guid string, now time.Time) error

	// AcceptBaseline installs rec as the guid's new server baseline: the
	// mirror row is replaced (is_overridden reset) and the local row is
	// overwritten as synced. Used both for accepted inbound snapshots and
	// for records the server just acknowledged.
	AcceptBaseline(ctx context.Context, rec models.Record, ts models.ServerTimestamp) error

	// DropRecord removes the guid's local and mirror rows entirely, used
	// once a deletion is confirmed on both sides.
	DropRecord(ctx context.Context, guid string) error
}
