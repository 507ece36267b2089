// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-login-sync/internal/logger"
	"github.com/MKhiriev/go-login-sync/models"
)

// loginRepository is the sqlite-backed implementation of [LoginRepository].
// It executes all local/mirror row operations directly against the loginsL
// and loginsM tables using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (guid, row counts, etc.).
type loginRepository struct {
	*DB
	logger *logger.Logger
}

// NewLoginRepository constructs a [LoginRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewLoginRepository(db *DB, logger *logger.Logger) LoginRepository {
	return &loginRepository{
		DB:     db,
		logger: logger,
	}
}

// GetLocal retrieves one local row by guid.
func (r *loginRepository) GetLocal(ctx context.Context, guid string) (models.LocalRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLocalQuery(guid)
	if err != nil {
		log.Err(err).
			Str("func", "loginRepository.GetLocal").
			Str("guid", guid).
			Msg("failed to create query")
		return models.LocalRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	local, err := scanLocalRow(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LocalRecord{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "loginRepository.GetLocal").
			Str("guid", guid).
			Msg("failed to scan local login row")
		return models.LocalRecord{}, err
	}

	return local, nil
}

// ListLocalByGUIDs loads the local rows for the given guids. Rows with a
// corrupt sync_status ordinal are skipped and reported per-row so one bad
// row never aborts the whole reconciliation batch.
func (r *loginRepository) ListLocalByGUIDs(ctx context.Context, guids []string) ([]models.LocalRecord, []CorruptRow, error) {
	if len(guids) == 0 {
		return nil, nil, nil
	}

	query, args, err := buildListLocalByGUIDsQuery(guids)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.listLocal(ctx, "loginRepository.ListLocalByGUIDs", query, args)
}

// ListUnsyncedLocal returns every local row that still needs an upload.
func (r *loginRepository) ListUnsyncedLocal(ctx context.Context) ([]models.LocalRecord, []CorruptRow, error) {
	query, args, err := buildListUnsyncedLocalQuery()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.listLocal(ctx, "loginRepository.ListUnsyncedLocal", query, args)
}

func (r *loginRepository) listLocal(ctx context.Context, caller, query string, args []any) ([]models.LocalRecord, []CorruptRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute query for local login rows")
		return nil, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		results []models.LocalRecord
		corrupt []CorruptRow
	)
	for rows.Next() {
		local, scanErr := scanLocalRow(rows)
		if scanErr != nil {
			if errors.Is(scanErr, models.ErrBadSyncStatus) {
				log.Warn().
					Str("func", caller).
					Str("guid", local.GUID).
					Err(scanErr).
					Msg("skipping local row with corrupt sync status")
				corrupt = append(corrupt, CorruptRow{GUID: local.GUID, Err: scanErr})
				continue
			}
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan local login row")
			return nil, nil, scanErr
		}

		results = append(results, local)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, corrupt, nil
}

// ListMirrorByGUIDs loads the mirror rows for the given guids.
func (r *loginRepository) ListMirrorByGUIDs(ctx context.Context, guids []string) ([]models.MirrorRecord, []CorruptRow, error) {
	if len(guids) == 0 {
		return nil, nil, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildListMirrorByGUIDsQuery(guids)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "loginRepository.ListMirrorByGUIDs").
			Int("guids", len(guids)).
			Msg("failed to execute query for mirror login rows")
		return nil, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.MirrorRecord, 0, len(guids))
	for rows.Next() {
		mirror, scanErr := scanMirrorRow(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "loginRepository.ListMirrorByGUIDs").
				Msg("failed to scan mirror login row")
			return nil, nil, scanErr
		}

		results = append(results, mirror)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "loginRepository.ListMirrorByGUIDs").
			Msg("error occurred during rows iteration")
		return nil, nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil, nil
}

// AddLocal inserts rec as a freshly created local row with status new.
func (r *loginRepository) AddLocal(ctx context.Context, rec models.Record, now time.Time) error {
	log := logger.FromContext(ctx)

	args := append(recordArgs(rec), now.UnixMilli(), 0, int64(models.SyncStatusNew))
	res, err := r.DB.ExecContext(ctx, insertLocal, args...)
	if err != nil {
		log.Err(err).
			Str("func", "loginRepository.AddLocal").
			Str("guid", rec.GUID).
			Msg("failed to insert local login row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNothingSaved
	}

	return nil
}

// UpdateLocal overwrites the record fields of a live local row and marks the
// guid's mirror row overridden.
func (r *loginRepository) UpdateLocal(ctx context.Context, rec models.Record, now time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateLocalQuery(rec, now.UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "loginRepository.UpdateLocal").
			Str("guid", rec.GUID).
			Msg("failed to update local login row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRecordNotFound
	}

	if _, err = tx.ExecContext(ctx, markMirrorOverridden, rec.GUID); err != nil {
		log.Err(err).
			Str("func", "loginRepository.UpdateLocal").
			Str("guid", rec.GUID).
			Msg("failed to mark mirror row overridden")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// MarkDeleted turns a live local row into a tombstone pending upload.
func (r *loginRepository) MarkDeleted(ctx context.Context, guid string, now time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkDeletedQuery(guid, now.UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "loginRepository.MarkDeleted").
			Str("guid", guid).
			Msg("failed to mark local login row deleted")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// AcceptBaseline installs rec as the guid's new server baseline: mirror row
// replaced with is_overridden reset, local row overwritten as synced.
func (r *loginRepository) AcceptBaseline(ctx context.Context, rec models.Record, ts models.ServerTimestamp) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	mirrorArgs := append(recordArgs(rec), 0, int64(ts))
	if _, err = tx.ExecContext(ctx, upsertMirror, mirrorArgs...); err != nil {
		log.Err(err).
			Str("func", "loginRepository.AcceptBaseline").
			Str("guid", rec.GUID).
			Msg("failed to replace mirror login row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	localArgs := append(recordArgs(rec), int64(ts), 0, int64(models.SyncStatusSynced))
	if _, err = tx.ExecContext(ctx, upsertLocal, localArgs...); err != nil {
		log.Err(err).
			Str("func", "loginRepository.AcceptBaseline").
			Str("guid", rec.GUID).
			Msg("failed to overwrite local login row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// DropRecord removes the guid's local and mirror rows entirely.
func (r *loginRepository) DropRecord(ctx context.Context, guid string) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteLocalByGUID, guid); err != nil {
		log.Err(err).
			Str("func", "loginRepository.DropRecord").
			Str("guid", guid).
			Msg("failed to delete local login row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, deleteMirrorByGUID, guid); err != nil {
		log.Err(err).
			Str("func", "loginRepository.DropRecord").
			Str("guid", guid).
			Msg("failed to delete mirror login row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
