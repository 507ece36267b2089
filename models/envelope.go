// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// RecordEnvelope is the wire form of one server record: either a full
// canonical record or a tombstone ({"id": ..., "deleted": true}) standing in
// for a deleted one. The payload schema is owned by the server; this type
// only mirrors it closely enough to lift records into the reconciliation
// core.
type RecordEnvelope struct {
	Record

	Deleted bool `json:"deleted,omitempty"`
}

// DecodeEnvelope parses a single downloaded record payload.
//
// Timestamp fields are sanitized during decode (see Timestamp); a garbled
// timestamp never fails the envelope. An envelope without an id fails with
// ErrMissingGUID — there is nothing to reconcile it against.
func DecodeEnvelope(data []byte) (RecordEnvelope, error) {
	var e RecordEnvelope
	if err := json.Unmarshal(data, &e); err != nil {
		return RecordEnvelope{}, err
	}
	if e.GUID == "" {
		return RecordEnvelope{}, ErrMissingGUID
	}
	return e, nil
}

// Inbound converts the envelope into the inbound snapshot consumed by a
// reconciliation pass, tagging it with the server timestamp it arrived
// under. Tombstones become a snapshot with a nil record.
func (e RecordEnvelope) Inbound(ts ServerTimestamp) InboundRecord {
	if e.Deleted {
		return InboundRecord{ServerModified: ts}
	}
	rec := e.Record.Clone()
	return InboundRecord{Record: &rec, ServerModified: ts}
}

// TombstoneEnvelope builds the upload form of a deletion for guid.
func TombstoneEnvelope(guid string) RecordEnvelope {
	return RecordEnvelope{Record: Record{GUID: guid}, Deleted: true}
}

// MarshalJSON implements json.Marshaler. Tombstones serialize as the minimal
// {"id", "deleted"} pair instead of a full record with zeroed fields.
func (e RecordEnvelope) MarshalJSON() ([]byte, error) {
	if e.Deleted {
		return json.Marshal(struct {
			ID      string `json:"id"`
			Deleted bool   `json:"deleted"`
		}{ID: e.GUID, Deleted: true})
	}

	type plain RecordEnvelope // shed the method to avoid recursion
	return json.Marshal(plain(e))
}
