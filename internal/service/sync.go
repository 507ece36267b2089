// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-login-sync/internal/adapter"
	"github.com/MKhiriev/go-login-sync/internal/logger"
	"github.com/MKhiriev/go-login-sync/internal/reconcile"
	"github.com/MKhiriev/go-login-sync/internal/store"
	"github.com/MKhiriev/go-login-sync/models"
)

// SyncStats summarizes one sync pass.
type SyncStats struct {
	// Downloaded is the number of inbound envelopes received.
	Downloaded int
	// Applied is the number of server snapshots accepted as new baselines.
	Applied int
	// Uploaded is the number of records and tombstones pushed upstream.
	Uploaded int
	// Deleted is the number of guids dropped after confirmed deletions.
	Deleted int
	// Skipped counts per-row failures: undecodable envelopes and corrupt
	// local rows, all skipped without aborting the pass.
	Skipped int
	// Rejected counts records that failed validation and were withheld
	// from persistence/upload. Each is surfaced as a per-record failure.
	Rejected int
	// Collisions counts conflicting field edits resolved during merges.
	Collisions int
}

// syncService drives one three-way reconciliation pass per call: download
// inbound snapshots, reconcile them per guid against the local and mirror
// rows, persist the outcomes and push pending local state back up.
//
// The reconciliation core itself is pure; everything stateful (rows, HTTP,
// the last-seen server timestamp) lives here or in the collaborators.
type syncService struct {
	repo    store.LoginRepository
	adapter adapter.ServerAdapter
	log     *logger.Logger

	lastServerTS models.ServerTimestamp
}

// NewSyncService constructs a SyncService over the given persistence and
// transport collaborators.
func NewSyncService(repo store.LoginRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) SyncService {
	return &syncService{
		repo:    repo,
		adapter: serverAdapter,
		log:     log,
	}
}

// pendingUpload is one staged outgoing envelope plus the row write to run
// once the server acknowledges it.
type pendingUpload struct {
	envelope  models.RecordEnvelope
	tombstone bool
}

func (s *syncService) Sync(ctx context.Context) (SyncStats, error) {
	var stats SyncStats

	payloads, serverTS, err := s.adapter.Download(ctx, s.lastServerTS)
	if err != nil {
		return stats, fmt.Errorf("download inbound records: %w", err)
	}
	stats.Downloaded = len(payloads)

	inbound := s.decodeInbound(payloads, serverTS, &stats)

	guids := make([]string, 0, len(inbound))
	for guid := range inbound {
		guids = append(guids, guid)
	}

	locals, corruptL, err := s.repo.ListLocalByGUIDs(ctx, guids)
	if err != nil {
		return stats, fmt.Errorf("load local rows: %w", err)
	}
	mirrors, corruptM, err := s.repo.ListMirrorByGUIDs(ctx, guids)
	if err != nil {
		return stats, fmt.Errorf("load mirror rows: %w", err)
	}

	skip := make(map[string]bool, len(corruptL)+len(corruptM))
	for _, c := range append(corruptL, corruptM...) {
		skip[c.GUID] = true
		stats.Skipped++
	}

	localIndex := make(map[string]models.LocalRecord, len(locals))
	for _, l := range locals {
		localIndex[l.GUID] = l
	}
	mirrorIndex := make(map[string]models.MirrorRecord, len(mirrors))
	for _, m := range mirrors {
		mirrorIndex[m.GUID] = m
	}

	pending := make(map[string]pendingUpload)

	for guid, snapshot := range inbound {
		if skip[guid] {
			continue
		}

		data, err := s.assemble(guid, snapshot, localIndex, mirrorIndex)
		if err != nil {
			// Identity-integrity violation: the dispatch above is broken,
			// continuing would corrupt further merges.
			return stats, err
		}

		outcome := reconcile.Reconcile(data)
		s.logCollisions(guid, outcome.Collisions)
		stats.Collisions += len(outcome.Collisions)

		if err := s.applyOutcome(ctx, guid, snapshot, outcome, pending, &stats); err != nil {
			return stats, err
		}
	}

	if err := s.stageUnsynced(ctx, inbound, pending, &stats); err != nil {
		return stats, err
	}

	if err := s.pushPending(ctx, pending, serverTS, &stats); err != nil {
		return stats, err
	}

	if serverTS.Newer(s.lastServerTS) {
		s.lastServerTS = serverTS
	}

	return stats, nil
}

// decodeInbound lifts raw download payloads into inbound snapshots keyed by
// guid. Undecodable envelopes are logged and skipped per-row; a duplicate
// guid in one batch keeps the last envelope.
func (s *syncService) decodeInbound(payloads []json.RawMessage, ts models.ServerTimestamp, stats *SyncStats) map[string]models.InboundRecord {
	inbound := make(map[string]models.InboundRecord, len(payloads))

	for _, raw := range payloads {
		envelope, err := models.DecodeEnvelope(raw)
		if err != nil {
			s.log.Warn().Err(err).Msg("skipping undecodable inbound envelope")
			stats.Skipped++
			continue
		}

		inbound[envelope.GUID] = envelope.Inbound(ts)
	}

	return inbound
}

// assemble builds the reconciliation context for one guid from the loaded
// row indexes.
func (s *syncService) assemble(
	guid string,
	snapshot models.InboundRecord,
	localIndex map[string]models.LocalRecord,
	mirrorIndex map[string]models.MirrorRecord,
) (*reconcile.RecordData, error) {
	data, err := reconcile.NewRecordData(guid, snapshot)
	if err != nil {
		return nil, err
	}

	if local, ok := localIndex[guid]; ok {
		if err := data.SetLocal(local); err != nil {
			return nil, err
		}
	}
	if mirror, ok := mirrorIndex[guid]; ok {
		if err := data.SetMirror(mirror); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// applyOutcome executes the row writes for one reconciliation outcome and
// stages whatever has to go upstream.
func (s *syncService) applyOutcome(
	ctx context.Context,
	guid string,
	snapshot models.InboundRecord,
	outcome reconcile.Outcome,
	pending map[string]pendingUpload,
	stats *SyncStats,
) error {
	switch outcome.Action {
	case reconcile.ActionNone:
		return nil

	case reconcile.ActionDeleteLocal:
		if err := s.repo.DropRecord(ctx, guid); err != nil {
			return fmt.Errorf("drop record %s: %w", guid, err)
		}
		stats.Deleted++
		return nil

	case reconcile.ActionApplyInbound:
		if !s.admit(guid, outcome.Record, stats) {
			return nil
		}
		if err := s.repo.AcceptBaseline(ctx, *outcome.Record, snapshot.ServerModified); err != nil {
			return fmt.Errorf("accept inbound baseline %s: %w", guid, err)
		}
		stats.Applied++
		return nil

	case reconcile.ActionUploadLocal, reconcile.ActionUploadMerged:
		if !s.admit(guid, outcome.Record, stats) {
			return nil
		}
		pending[guid] = pendingUpload{
			envelope: models.RecordEnvelope{Record: *outcome.Record},
		}
		return nil

	case reconcile.ActionUploadTombstone:
		pending[guid] = pendingUpload{
			envelope:  models.TombstoneEnvelope(guid),
			tombstone: true,
		}
		return nil

	default:
		return fmt.Errorf("unhandled reconcile action %v for %s", outcome.Action, guid)
	}
}

// stageUnsynced queues the local rows the inbound batch never mentioned but
// whose state the server has not seen: edits, new records and pending
// tombstones.
func (s *syncService) stageUnsynced(
	ctx context.Context,
	inbound map[string]models.InboundRecord,
	pending map[string]pendingUpload,
	stats *SyncStats,
) error {
	unsynced, corrupt, err := s.repo.ListUnsyncedLocal(ctx)
	if err != nil {
		return fmt.Errorf("load unsynced local rows: %w", err)
	}
	stats.Skipped += len(corrupt)

	for _, local := range unsynced {
		if _, seen := inbound[local.GUID]; seen {
			continue // already reconciled this pass
		}
		if _, staged := pending[local.GUID]; staged {
			continue
		}

		if local.IsDeleted {
			pending[local.GUID] = pendingUpload{
				envelope:  models.TombstoneEnvelope(local.GUID),
				tombstone: true,
			}
			continue
		}

		rec := local.Record.Clone()
		if !s.admit(local.GUID, &rec, stats) {
			continue
		}
		pending[local.GUID] = pendingUpload{
			envelope: models.RecordEnvelope{Record: rec},
		}
	}

	return nil
}

// pushPending uploads the staged envelopes in one batch conditioned on
// baseTS, then promotes the acknowledged records to the new mirror baseline
// (or drops confirmed tombstones).
func (s *syncService) pushPending(
	ctx context.Context,
	pending map[string]pendingUpload,
	baseTS models.ServerTimestamp,
	stats *SyncStats,
) error {
	if len(pending) == 0 {
		return nil
	}

	envelopes := make([]models.RecordEnvelope, 0, len(pending))
	for _, p := range pending {
		envelopes = append(envelopes, p.envelope)
	}

	newTS, err := s.adapter.Upload(ctx, envelopes, baseTS)
	if err != nil {
		return fmt.Errorf("upload staged records: %w", err)
	}

	for guid, p := range pending {
		if p.tombstone {
			if err := s.repo.DropRecord(ctx, guid); err != nil {
				return fmt.Errorf("drop uploaded tombstone %s: %w", guid, err)
			}
		} else {
			if err := s.repo.AcceptBaseline(ctx, p.envelope.Record, newTS); err != nil {
				return fmt.Errorf("promote uploaded record %s: %w", guid, err)
			}
		}
		stats.Uploaded++
	}

	if newTS.Newer(s.lastServerTS) {
		s.lastServerTS = newTS
	}

	return nil
}

// admit runs the pre-persistence validation gate. A rejected record is
// logged as a per-record sync failure and counted, never silently dropped.
func (s *syncService) admit(guid string, rec *models.Record, stats *SyncStats) bool {
	if err := reconcile.CheckValid(rec); err != nil {
		s.log.Error().
			Str("guid", guid).
			Err(err).
			Msg("record failed validation and was withheld from sync")
		stats.Rejected++
		return false
	}

	return true
}

// logCollisions reports merge collisions through the observability channel.
// Collisions are never errors; the merge already resolved them.
func (s *syncService) logCollisions(guid string, collisions []reconcile.Collision) {
	for _, c := range collisions {
		s.log.Warn().
			Str("guid", guid).
			Str("field", string(c.Field)).
			Bool("took_inbound", c.TookB).
			Msg("collision merging login field")
	}
}
