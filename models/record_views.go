// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// SyncStatus tracks whether a local record row still needs an upload.
// It is stored as a small ordinal in the local table; only the three values
// below are valid and decoding anything else fails the row's load.
type SyncStatus uint8

const (
	// SyncStatusSynced marks a row whose content matches the last upload.
	SyncStatusSynced SyncStatus = 0

	// SyncStatusChanged marks a previously synced row with pending local
	// edits.
	SyncStatusChanged SyncStatus = 1

	// SyncStatusNew marks a row created locally and never uploaded.
	SyncStatusNew SyncStatus = 2
)

// SyncStatusFromOrdinal decodes a stored ordinal. An out-of-range value is a
// data-corruption error fatal to that row's load (the caller skips the row,
// not the pass).
func SyncStatusFromOrdinal(v uint8) (SyncStatus, error) {
	switch s := SyncStatus(v); s {
	case SyncStatusSynced, SyncStatusChanged, SyncStatusNew:
		return s, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrBadSyncStatus, v)
	}
}

// AfterLocalWrite returns the status a row takes after a local field write:
// a synced row becomes changed, while changed and new rows keep their status
// (further edits to a never-uploaded row do not make it "changed").
func (s SyncStatus) AfterLocalWrite() SyncStatus {
	if s == SyncStatusSynced {
		return SyncStatusChanged
	}
	return s
}

// AfterUpload returns the status a row takes once its pending state has been
// accepted by the server.
func (s SyncStatus) AfterUpload() SyncStatus {
	return SyncStatusSynced
}

// NeedsUpload reports whether a row with this status has state the server has
// not seen yet.
func (s SyncStatus) NeedsUpload() bool {
	return s != SyncStatusSynced
}

func (s SyncStatus) String() string {
	switch s {
	case SyncStatusSynced:
		return "synced"
	case SyncStatusChanged:
		return "changed"
	case SyncStatusNew:
		return "new"
	default:
		return fmt.Sprintf("sync_status(%d)", uint8(s))
	}
}

// ServerTimestamp is a server-assigned modification time in milliseconds
// since the epoch. It orders server snapshots and feeds the optimistic
// concurrency header on upload.
type ServerTimestamp int64

// Newer reports whether t is strictly later than other.
func (t ServerTimestamp) Newer(other ServerTimestamp) bool {
	return t > other
}

// LocalRecord wraps a canonical record with the client-side bookkeeping the
// sync machinery needs: upload lifecycle, tombstone flag and the wall-clock
// time of the last local write.
type LocalRecord struct {
	Record

	SyncStatus SyncStatus

	// IsDeleted marks a locally deleted record whose deletion still has to
	// propagate upstream before the row can be removed.
	IsDeleted bool

	LocalModified time.Time
}

// NewLocalRecord wraps rec as a freshly created local row.
func NewLocalRecord(rec Record) LocalRecord {
	return LocalRecord{Record: rec, SyncStatus: SyncStatusNew}
}

// LocalModifiedMillis returns the last local write time in epoch
// milliseconds, 0 when unset.
func (l LocalRecord) LocalModifiedMillis() int64 {
	if l.LocalModified.IsZero() {
		return 0
	}
	return l.LocalModified.UnixMilli()
}

// MirrorRecord wraps a canonical record with the server snapshot metadata:
// the server-assigned timestamp of the snapshot the mirror reflects and
// whether a local row currently shadows it. The mirror is the common
// ancestor of the three-way merge; it is superseded wholesale, never merged
// into.
type MirrorRecord struct {
	Record

	IsOverridden   bool
	ServerModified ServerTimestamp
}

// NewMirrorRecord wraps rec as a fresh server baseline accepted at ts.
func NewMirrorRecord(rec Record, ts ServerTimestamp) MirrorRecord {
	return MirrorRecord{Record: rec, ServerModified: ts}
}

// InboundRecord is one freshly downloaded server snapshot for a guid.
// A nil Record is a server-side tombstone. Consumed once per reconciliation
// pass.
type InboundRecord struct {
	Record         *Record
	ServerModified ServerTimestamp
}

// IsTombstone reports whether the server deleted the record.
func (i InboundRecord) IsTombstone() bool {
	return i.Record == nil
}
