// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-login-sync/models"
)

// rowScanner abstracts *sql.Row and *sql.Rows for the scan helpers below.
type rowScanner interface {
	Scan(dest ...any) error
}

// scannedRecord collects the nullable column values shared by the local and
// mirror tables before they are lifted into a canonical record.
type scannedRecord struct {
	guid          string
	hostname      string
	httpRealm     sql.NullString
	formSubmitURL sql.NullString
	username      sql.NullString
	password      string
	usernameField sql.NullString
	passwordField sql.NullString
	timeCreated   sql.NullInt64
	timeLastUsed  sql.NullInt64
	timePwChanged sql.NullInt64
	timesUsed     int64
}

func (s *scannedRecord) record() models.Record {
	rec := models.Record{
		GUID:                s.guid,
		Hostname:            s.hostname,
		Username:            s.username.String,
		Password:            s.password,
		UsernameField:       s.usernameField.String,
		PasswordField:       s.passwordField.String,
		TimeCreated:         models.Timestamp(s.timeCreated.Int64),
		TimeLastUsed:        models.Timestamp(s.timeLastUsed.Int64),
		TimePasswordChanged: models.Timestamp(s.timePwChanged.Int64),
		TimesUsed:           s.timesUsed,
	}
	if s.httpRealm.Valid {
		rec.HTTPRealm = models.String(s.httpRealm.String)
	}
	if s.formSubmitURL.Valid {
		rec.FormSubmitURL = models.String(s.formSubmitURL.String)
	}

	return rec
}

// scanLocalRow decodes one loginsL row. A sync_status ordinal outside the
// closed set fails the row with models.ErrBadSyncStatus; the caller skips
// that guid and continues with the rest of the batch.
func scanLocalRow(row rowScanner) (models.LocalRecord, error) {
	var (
		sr            scannedRecord
		localModified sql.NullInt64
		isDeleted     bool
		syncStatus    int64
	)

	err := row.Scan(
		&sr.guid,
		&sr.hostname,
		&sr.httpRealm,
		&sr.formSubmitURL,
		&sr.username,
		&sr.password,
		&sr.usernameField,
		&sr.passwordField,
		&sr.timeCreated,
		&sr.timeLastUsed,
		&sr.timePwChanged,
		&sr.timesUsed,
		&localModified,
		&isDeleted,
		&syncStatus,
	)
	if err != nil {
		return models.LocalRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	// On an ordinal failure the scanned record is still returned so the
	// caller can attribute the corrupt row to its guid.
	if syncStatus < 0 || syncStatus > math.MaxUint8 {
		return models.LocalRecord{Record: sr.record()}, fmt.Errorf("%w: %d", models.ErrBadSyncStatus, syncStatus)
	}
	status, err := models.SyncStatusFromOrdinal(uint8(syncStatus))
	if err != nil {
		return models.LocalRecord{Record: sr.record()}, err
	}

	local := models.LocalRecord{
		Record:     sr.record(),
		SyncStatus: status,
		IsDeleted:  isDeleted,
	}
	if localModified.Valid && localModified.Int64 > 0 {
		local.LocalModified = time.UnixMilli(localModified.Int64)
	}

	return local, nil
}

// scanMirrorRow decodes one loginsM row.
func scanMirrorRow(row rowScanner) (models.MirrorRecord, error) {
	var (
		sr             scannedRecord
		isOverridden   bool
		serverModified int64
	)

	err := row.Scan(
		&sr.guid,
		&sr.hostname,
		&sr.httpRealm,
		&sr.formSubmitURL,
		&sr.username,
		&sr.password,
		&sr.usernameField,
		&sr.passwordField,
		&sr.timeCreated,
		&sr.timeLastUsed,
		&sr.timePwChanged,
		&sr.timesUsed,
		&isOverridden,
		&serverModified,
	)
	if err != nil {
		return models.MirrorRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.MirrorRecord{
		Record:         sr.record(),
		IsOverridden:   isOverridden,
		ServerModified: models.ServerTimestamp(serverModified),
	}, nil
}
