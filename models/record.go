// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Record is the canonical credential record shared by every view of a login:
// the local row, the server mirror and the inbound server snapshot.
//
// A record is identified by its GUID, which is immutable once assigned.
// The target identity of a record is its Hostname plus exactly one of
// FormSubmitURL or HTTPRealm; a record carrying both or neither is invalid
// and must be rejected by reconcile.CheckValid before it is persisted or
// uploaded. Construction itself never enforces the target invariant because
// invalid records legitimately exist mid-merge.
type Record struct {
	// GUID is the unique identifier of the record. Field name on the wire
	// is "id" to match the server record schema.
	GUID string `json:"id"`

	// Hostname is the origin the credential belongs to. Never empty on a
	// valid record.
	Hostname string `json:"hostname"`

	// FormSubmitURL is set for credentials captured from a form submission.
	// Mutually exclusive with HTTPRealm.
	FormSubmitURL *string `json:"formSubmitURL,omitempty"`

	// HTTPRealm is set for credentials captured from an HTTP auth challenge.
	// Mutually exclusive with FormSubmitURL.
	HTTPRealm *string `json:"httpRealm,omitempty"`

	// Username may be empty; Password never is on a valid record.
	Username string `json:"username,omitempty"`
	Password string `json:"password"`

	// UsernameField and PasswordField are free-text hints naming the form
	// fields the credential was captured from.
	UsernameField string `json:"usernameField,omitempty"`
	PasswordField string `json:"passwordField,omitempty"`

	// Timestamps are milliseconds since the epoch; 0 means unknown.
	// Decoding coerces malformed or negative input to 0, see Timestamp.
	TimeCreated         Timestamp `json:"timeCreated"`
	TimePasswordChanged Timestamp `json:"timePasswordChanged"`
	TimeLastUsed        Timestamp `json:"timeLastUsed"`

	// TimesUsed is a monotonically non-decreasing usage counter.
	TimesUsed int64 `json:"timesUsed"`
}

// Timestamp is a millisecond epoch timestamp that survives untrusted input.
//
// Server payloads are not to be trusted: timestamps arrive missing, negative,
// non-numeric or too large for an int64. All of those decode to 0 ("unknown")
// instead of failing, so one garbled timestamp never aborts a sync pass.
// Values that fit in an int64 but are implausible (a date centuries ahead,
// timeLastUsed before timeCreated) are accepted as-is; only the sign is
// guarded. Tightening that would need a reupload scheme, so it stays a known
// limitation.
type Timestamp int64

// UnmarshalJSON implements json.Unmarshaler with the leniency described on
// the type: any undecodable or negative value becomes 0.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil || v < 0 {
		*t = 0
		return nil
	}
	*t = Timestamp(v)
	return nil
}

// Clone returns a deep copy of the record. The optional target pointers are
// duplicated so mutating the copy never aliases the original.
func (r Record) Clone() Record {
	c := r
	if r.FormSubmitURL != nil {
		u := *r.FormSubmitURL
		c.FormSubmitURL = &u
	}
	if r.HTTPRealm != nil {
		realm := *r.HTTPRealm
		c.HTTPRealm = &realm
	}
	return c
}

// String returns a pointer to s, for filling the optional target fields.
func String(s string) *string {
	return &s
}
