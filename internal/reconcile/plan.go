// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import "github.com/MKhiriev/go-login-sync/models"

// Action is what the storage layer must do for one guid after
// reconciliation. The core only decides; all row writes and uploads stay
// with the caller.
type Action uint8

const (
	// ActionNone leaves the guid untouched.
	ActionNone Action = iota

	// ActionApplyInbound accepts the server snapshot as the new truth:
	// replace the mirror baseline and overwrite (or create) the local row
	// as synced.
	ActionApplyInbound

	// ActionDeleteLocal confirms a server tombstone: drop the guid's local
	// and mirror rows.
	ActionDeleteLocal

	// ActionUploadLocal keeps the local record wholesale: upload it, then
	// promote it to the new mirror baseline.
	ActionUploadLocal

	// ActionUploadMerged stores and uploads the three-way merged record.
	ActionUploadMerged

	// ActionUploadTombstone pushes a pending local deletion upstream.
	ActionUploadTombstone
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionApplyInbound:
		return "apply_inbound"
	case ActionDeleteLocal:
		return "delete_local"
	case ActionUploadLocal:
		return "upload_local"
	case ActionUploadMerged:
		return "upload_merged"
	case ActionUploadTombstone:
		return "upload_tombstone"
	default:
		return "action(?)"
	}
}

// Outcome is the merge decision for one guid. Record is set for the actions
// that carry a record (apply-inbound and the two record uploads); Collisions
// is non-empty only when a three-way merge hit conflicting field edits.
//
// The record is not validated here: the caller runs CheckValid before
// persisting or uploading it and surfaces a per-record failure on rejection.
type Outcome struct {
	Action     Action
	Record     *models.Record
	Collisions []Collision
}

// Reconcile decides how the guid's local, mirror and inbound states combine.
//
// With an inbound tombstone, unsynced local edits win and resurrect the
// record upstream; otherwise the deletion is confirmed. With an inbound
// record and no local row the snapshot is simply accepted. When both sides
// changed against a shared mirror ancestor the two deltas are merged
// field-by-field, the newer side (by server timestamp vs. local write time)
// winning collisions. Without a common ancestor there is nothing to diff
// against, so the newer side wins wholesale.
func Reconcile(d *RecordData) Outcome {
	local, inbound := d.local, d.inbound

	if inbound.IsTombstone() {
		if local != nil && !local.IsDeleted && local.SyncStatus.NeedsUpload() {
			rec := local.Record.Clone()
			return Outcome{Action: ActionUploadLocal, Record: &rec}
		}
		return Outcome{Action: ActionDeleteLocal}
	}

	remote := inbound.Record
	if local == nil {
		rec := remote.Clone()
		return Outcome{Action: ActionApplyInbound, Record: &rec}
	}

	inboundIsNewer := int64(inbound.ServerModified) >= local.LocalModifiedMillis()

	if local.IsDeleted {
		// Local tombstone against a live server record: recency decides
		// between accepting the record back and deleting it upstream.
		if inboundIsNewer {
			rec := remote.Clone()
			return Outcome{Action: ActionApplyInbound, Record: &rec}
		}
		return Outcome{Action: ActionUploadTombstone}
	}

	if d.mirror == nil {
		// No shared ancestor (e.g. both sides created the guid
		// independently): nothing to compute deltas against.
		if inboundIsNewer {
			rec := remote.Clone()
			return Outcome{Action: ActionApplyInbound, Record: &rec}
		}
		rec := local.Record.Clone()
		return Outcome{Action: ActionUploadLocal, Record: &rec}
	}

	localDelta := Diff(&local.Record, &d.mirror.Record)
	inboundDelta := Diff(remote, &d.mirror.Record)

	switch {
	case localDelta.IsEmpty():
		rec := remote.Clone()
		return Outcome{Action: ActionApplyInbound, Record: &rec}
	case inboundDelta.IsEmpty():
		rec := local.Record.Clone()
		return Outcome{Action: ActionUploadLocal, Record: &rec}
	}

	merged, collisions := Merge(localDelta, inboundDelta, inboundIsNewer)

	base := d.mirror.Record.Clone()
	Apply(&base, merged)

	return Outcome{Action: ActionUploadMerged, Record: &base, Collisions: collisions}
}
