// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-login-sync/models"
)

// Column order here must match the scan order in rows.go.
var (
	localColumns = []string{
		"guid",
		"hostname",
		"httpRealm",
		"formSubmitURL",
		"username",
		"password",
		"usernameField",
		"passwordField",
		"timeCreated",
		"timeLastUsed",
		"timePasswordChanged",
		"timesUsed",
		"local_modified",
		"is_deleted",
		"sync_status",
	}

	mirrorColumns = []string{
		"guid",
		"hostname",
		"httpRealm",
		"formSubmitURL",
		"username",
		"password",
		"usernameField",
		"passwordField",
		"timeCreated",
		"timeLastUsed",
		"timePasswordChanged",
		"timesUsed",
		"is_overridden",
		"server_modified",
	}
)

const (
	upsertLocal = `
		INSERT OR REPLACE INTO loginsL (
			guid,
			hostname,
			httpRealm,
			formSubmitURL,
			username,
			password,
			usernameField,
			passwordField,
			timeCreated,
			timeLastUsed,
			timePasswordChanged,
			timesUsed,
			local_modified,
			is_deleted,
			sync_status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	insertLocal = `
		INSERT INTO loginsL (
			guid,
			hostname,
			httpRealm,
			formSubmitURL,
			username,
			password,
			usernameField,
			passwordField,
			timeCreated,
			timeLastUsed,
			timePasswordChanged,
			timesUsed,
			local_modified,
			is_deleted,
			sync_status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	upsertMirror = `
		INSERT OR REPLACE INTO loginsM (
			guid,
			hostname,
			httpRealm,
			formSubmitURL,
			username,
			password,
			usernameField,
			passwordField,
			timeCreated,
			timeLastUsed,
			timePasswordChanged,
			timesUsed,
			is_overridden,
			server_modified
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	deleteLocalByGUID  = `DELETE FROM loginsL WHERE guid = ?;`
	deleteMirrorByGUID = `DELETE FROM loginsM WHERE guid = ?;`

	markMirrorOverridden = `UPDATE loginsM SET is_overridden = 1 WHERE guid = ?;`
)

// recordArgs flattens a canonical record into the argument order shared by
// the insert/upsert statements above.
func recordArgs(rec models.Record) []any {
	return []any{
		rec.GUID,
		rec.Hostname,
		rec.HTTPRealm,
		rec.FormSubmitURL,
		rec.Username,
		rec.Password,
		rec.UsernameField,
		rec.PasswordField,
		int64(rec.TimeCreated),
		int64(rec.TimeLastUsed),
		int64(rec.TimePasswordChanged),
		rec.TimesUsed,
	}
}

func buildListLocalByGUIDsQuery(guids []string) (string, []any, error) {
	return sq.Select(localColumns...).
		From("loginsL").
		Where(sq.Eq{"guid": guids}).
		ToSql()
}

func buildGetLocalQuery(guid string) (string, []any, error) {
	return sq.Select(localColumns...).
		From("loginsL").
		Where(sq.Eq{"guid": guid}).
		ToSql()
}

func buildListMirrorByGUIDsQuery(guids []string) (string, []any, error) {
	return sq.Select(mirrorColumns...).
		From("loginsM").
		Where(sq.Eq{"guid": guids}).
		ToSql()
}

func buildListUnsyncedLocalQuery() (string, []any, error) {
	return sq.Select(localColumns...).
		From("loginsL").
		Where(sq.NotEq{"sync_status": int64(models.SyncStatusSynced)}).
		ToSql()
}

// buildUpdateLocalQuery overwrites the record fields of a live local row and
// stamps the write: local_modified moves to nowMillis and a synced row
// becomes changed (new and changed rows keep their status).
func buildUpdateLocalQuery(rec models.Record, nowMillis int64) (string, []any, error) {
	return sq.Update("loginsL").
		Set("hostname", rec.Hostname).
		Set("httpRealm", rec.HTTPRealm).
		Set("formSubmitURL", rec.FormSubmitURL).
		Set("username", rec.Username).
		Set("password", rec.Password).
		Set("usernameField", rec.UsernameField).
		Set("passwordField", rec.PasswordField).
		Set("timeCreated", int64(rec.TimeCreated)).
		Set("timeLastUsed", int64(rec.TimeLastUsed)).
		Set("timePasswordChanged", int64(rec.TimePasswordChanged)).
		Set("timesUsed", rec.TimesUsed).
		Set("local_modified", nowMillis).
		Set("sync_status", sq.Expr("CASE WHEN sync_status = 0 THEN 1 ELSE sync_status END")).
		Where(sq.Eq{"guid": rec.GUID, "is_deleted": 0}).
		ToSql()
}

// buildMarkDeletedQuery turns a live local row into a tombstone pending
// upload.
func buildMarkDeletedQuery(guid string, nowMillis int64) (string, []any, error) {
	return sq.Update("loginsL").
		Set("is_deleted", 1).
		Set("local_modified", nowMillis).
		Set("sync_status", sq.Expr("CASE WHEN sync_status = 0 THEN 1 ELSE sync_status END")).
		Where(sq.Eq{"guid": guid, "is_deleted": 0}).
		ToSql()
}
