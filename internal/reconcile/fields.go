// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import "github.com/MKhiriev/go-login-sync/models"

// Field names a mergeable record field. The values double as the wire-schema
// field names, which is what collision diagnostics report.
type Field string

// Mergeable record fields. Each belongs to exactly one merge class:
//
//   - overwrite: the newer byte-for-byte different value wins outright
//     (hostname, password, username, usernameField, passwordField);
//   - sentinel-optional: like overwrite, but the field itself is optional,
//     so a delta entry distinguishes "set to value" from "cleared"
//     (httpRealm, formSubmitURL);
//   - timestamp: only strictly positive values carry information and may
//     overwrite (timeCreated, timeLastUsed, timePasswordChanged);
//   - commutative: merged by accumulation, order-independent (timesUsed).
const (
	FieldHostname      Field = "hostname"
	FieldPassword      Field = "password"
	FieldUsername      Field = "username"
	FieldUsernameField Field = "usernameField"
	FieldPasswordField Field = "passwordField"

	FieldHTTPRealm     Field = "httpRealm"
	FieldFormSubmitURL Field = "formSubmitURL"

	FieldTimeCreated         Field = "timeCreated"
	FieldTimeLastUsed        Field = "timeLastUsed"
	FieldTimePasswordChanged Field = "timePasswordChanged"

	FieldTimesUsed Field = "timesUsed"
)

// The tables below are the single source of truth for the field taxonomy.
// Diff, Merge and Apply all iterate them instead of repeating per-field
// logic, so adding a field means adding one table row.

type stringField struct {
	name Field
	get  func(*models.Record) string
	set  func(*models.Record, string)
	slot func(*Delta) *StringChange
}

var stringFields = []stringField{
	{
		name: FieldHostname,
		get:  func(r *models.Record) string { return r.Hostname },
		set:  func(r *models.Record, v string) { r.Hostname = v },
		slot: func(d *Delta) *StringChange { return &d.Hostname },
	},
	{
		name: FieldPassword,
		get:  func(r *models.Record) string { return r.Password },
		set:  func(r *models.Record, v string) { r.Password = v },
		slot: func(d *Delta) *StringChange { return &d.Password },
	},
	{
		name: FieldUsername,
		get:  func(r *models.Record) string { return r.Username },
		set:  func(r *models.Record, v string) { r.Username = v },
		slot: func(d *Delta) *StringChange { return &d.Username },
	},
	{
		name: FieldUsernameField,
		get:  func(r *models.Record) string { return r.UsernameField },
		set:  func(r *models.Record, v string) { r.UsernameField = v },
		slot: func(d *Delta) *StringChange { return &d.UsernameField },
	},
	{
		name: FieldPasswordField,
		get:  func(r *models.Record) string { return r.PasswordField },
		set:  func(r *models.Record, v string) { r.PasswordField = v },
		slot: func(d *Delta) *StringChange { return &d.PasswordField },
	},
}

type optionalField struct {
	name Field
	get  func(*models.Record) *string
	set  func(*models.Record, *string)
	slot func(*Delta) *OptionalChange
}

var optionalFields = []optionalField{
	{
		name: FieldHTTPRealm,
		get:  func(r *models.Record) *string { return r.HTTPRealm },
		set:  func(r *models.Record, v *string) { r.HTTPRealm = v },
		slot: func(d *Delta) *OptionalChange { return &d.HTTPRealm },
	},
	{
		name: FieldFormSubmitURL,
		get:  func(r *models.Record) *string { return r.FormSubmitURL },
		set:  func(r *models.Record, v *string) { r.FormSubmitURL = v },
		slot: func(d *Delta) *OptionalChange { return &d.FormSubmitURL },
	},
}

type timeField struct {
	name Field
	get  func(*models.Record) int64
	set  func(*models.Record, int64)
	slot func(*Delta) *TimeChange
}

var timeFields = []timeField{
	{
		name: FieldTimeCreated,
		get:  func(r *models.Record) int64 { return int64(r.TimeCreated) },
		set:  func(r *models.Record, v int64) { r.TimeCreated = models.Timestamp(v) },
		slot: func(d *Delta) *TimeChange { return &d.TimeCreated },
	},
	{
		name: FieldTimeLastUsed,
		get:  func(r *models.Record) int64 { return int64(r.TimeLastUsed) },
		set:  func(r *models.Record, v int64) { r.TimeLastUsed = models.Timestamp(v) },
		slot: func(d *Delta) *TimeChange { return &d.TimeLastUsed },
	},
	{
		name: FieldTimePasswordChanged,
		get:  func(r *models.Record) int64 { return int64(r.TimePasswordChanged) },
		set:  func(r *models.Record, v int64) { r.TimePasswordChanged = models.Timestamp(v) },
		slot: func(d *Delta) *TimeChange { return &d.TimePasswordChanged },
	},
}
