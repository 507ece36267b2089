// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import "github.com/MKhiriev/go-login-sync/models"

// StringChange is one overwrite-field slot of a delta: absent (Set false,
// no change) or the new value, which may legitimately be the empty string
// for the fields that are allowed to degenerate to empty.
type StringChange struct {
	Set   bool
	Value string
}

// OptionalOp is the tri-state of an optional-field slot. An explicit clear
// operation replaces the old empty-string-means-clear sentinel, so "set to
// empty" and "cleared" can never be confused.
type OptionalOp uint8

const (
	// OpUnchanged means the delta does not touch the field.
	OpUnchanged OptionalOp = iota
	// OpSet means the field takes the slot's value.
	OpSet
	// OpClear means the field becomes absent.
	OpClear
)

// OptionalChange is one sentinel-optional slot of a delta.
type OptionalChange struct {
	Op    OptionalOp
	Value string
}

// TimeChange is one timestamp slot of a delta. Values are always strictly
// positive: Diff never emits a non-positive timestamp.
type TimeChange struct {
	Set   bool
	Value int64
}

// Delta is a sparse field-level diff between two canonical records of the
// same guid. Produced by Diff, combined by Merge, consumed by Apply, then
// dropped.
//
// TimesUsed holds an increment, not an absolute value, which makes it
// commutative under Merge — and makes applying the same delta twice
// double-count the field. Callers apply a delta at most once per target.
type Delta struct {
	Hostname      StringChange
	Password      StringChange
	Username      StringChange
	UsernameField StringChange
	PasswordField StringChange

	HTTPRealm     OptionalChange
	FormSubmitURL OptionalChange

	TimeCreated         TimeChange
	TimeLastUsed        TimeChange
	TimePasswordChanged TimeChange

	TimesUsed int64
}

// IsEmpty reports whether the delta changes nothing.
func (d Delta) IsEmpty() bool {
	return d == Delta{}
}

// Diff computes the field-level difference between two snapshots of the same
// record, newer relative to older.
//
// Per-class policy:
//   - overwrite fields emit the newer value whenever it differs, including
//     an empty string where the field may degenerate to empty;
//   - sentinel-optional fields emit OpSet/OpClear when presence or content
//     differs;
//   - timestamps emit only strictly positive differing values, so a record
//     with unknown timestamps never clobbers one that has real ones;
//   - timesUsed emits the increment, and only a positive one.
func Diff(newer, older *models.Record) Delta {
	var d Delta

	for _, f := range stringFields {
		if v := f.get(newer); v != f.get(older) {
			*f.slot(&d) = StringChange{Set: true, Value: v}
		}
	}

	for _, f := range optionalFields {
		nv, ov := f.get(newer), f.get(older)
		switch {
		case nv == nil && ov == nil:
		case nv == nil:
			*f.slot(&d) = OptionalChange{Op: OpClear}
		case ov == nil || *nv != *ov:
			*f.slot(&d) = OptionalChange{Op: OpSet, Value: *nv}
		}
	}

	for _, f := range timeFields {
		if v := f.get(newer); v > 0 && v != f.get(older) {
			*f.slot(&d) = TimeChange{Set: true, Value: v}
		}
	}

	if inc := newer.TimesUsed - older.TimesUsed; inc > 0 {
		d.TimesUsed = inc
	}

	return d
}

// Apply writes the delta onto rec in place. Overwrite and timestamp entries
// replace the field outright (timestamps were sanitized when the delta was
// computed), optional entries set or clear the field, and TimesUsed is added
// to the counter rather than replacing it.
func Apply(rec *models.Record, d Delta) {
	for _, f := range stringFields {
		if c := f.slot(&d); c.Set {
			f.set(rec, c.Value)
		}
	}

	for _, f := range optionalFields {
		switch c := f.slot(&d); c.Op {
		case OpSet:
			v := c.Value
			f.set(rec, &v)
		case OpClear:
			f.set(rec, nil)
		}
	}

	for _, f := range timeFields {
		if c := f.slot(&d); c.Set {
			f.set(rec, c.Value)
		}
	}

	rec.TimesUsed += d.TimesUsed
}
