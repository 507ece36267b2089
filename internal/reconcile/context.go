// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import "github.com/MKhiriev/go-login-sync/models"

// RecordData aggregates everything known about one guid for a three-way
// merge: the optional local row, the optional server mirror and exactly one
// inbound snapshot. It is constructed per sync pass per guid, consumed by
// Reconcile, then discarded.
//
// The local and mirror slots are write-once and identity-checked: assigning
// an occupied slot, or a record whose guid disagrees with the context's, is
// an IntegrityError and leaves the context untouched. Both can only arise
// from a defect in the caller's guid-based dispatch, so they are fatal to
// the pass rather than per-record failures.
type RecordData struct {
	guid    string
	local   *models.LocalRecord
	mirror  *models.MirrorRecord
	inbound models.InboundRecord
}

// NewRecordData builds the context for guid around its inbound snapshot.
// A non-tombstone snapshot must already carry the context's guid.
func NewRecordData(guid string, inbound models.InboundRecord) (*RecordData, error) {
	if inbound.Record != nil && inbound.Record.GUID != guid {
		return nil, &IntegrityError{GUID: guid, Slot: "inbound", Err: ErrGUIDMismatch}
	}
	return &RecordData{guid: guid, inbound: inbound}, nil
}

// GUID returns the identity the context is keyed on.
func (d *RecordData) GUID() string {
	return d.guid
}

// SetLocal assigns the local slot.
func (d *RecordData) SetLocal(rec models.LocalRecord) error {
	if d.local != nil {
		return &IntegrityError{GUID: d.guid, Slot: "local", Err: ErrSlotOccupied}
	}
	if rec.GUID != d.guid {
		return &IntegrityError{GUID: d.guid, Slot: "local", Err: ErrGUIDMismatch}
	}

	d.local = &rec
	return nil
}

// SetMirror assigns the mirror slot.
func (d *RecordData) SetMirror(rec models.MirrorRecord) error {
	if d.mirror != nil {
		return &IntegrityError{GUID: d.guid, Slot: "mirror", Err: ErrSlotOccupied}
	}
	if rec.GUID != d.guid {
		return &IntegrityError{GUID: d.guid, Slot: "mirror", Err: ErrGUIDMismatch}
	}

	d.mirror = &rec
	return nil
}

// Local returns the local slot, nil when the guid has no local row.
func (d *RecordData) Local() *models.LocalRecord {
	return d.local
}

// Mirror returns the mirror slot, nil when the guid has no server baseline.
func (d *RecordData) Mirror() *models.MirrorRecord {
	return d.mirror
}

// Inbound returns the inbound snapshot the context was built around.
func (d *RecordData) Inbound() models.InboundRecord {
	return d.inbound
}
