// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-login-sync/internal/logger"
	"github.com/MKhiriev/go-login-sync/internal/reconcile"
	"github.com/MKhiriev/go-login-sync/internal/store"
	"github.com/MKhiriev/go-login-sync/internal/utils"
	"github.com/MKhiriev/go-login-sync/models"
)

type recordService struct {
	repo  store.LoginRepository
	guids *utils.GUIDGenerator
	log   *logger.Logger
}

// NewRecordService constructs the local write surface over the repository.
func NewRecordService(repo store.LoginRepository, log *logger.Logger) RecordService {
	return &recordService{
		repo:  repo,
		guids: utils.NewGUIDGenerator(),
		log:   log,
	}
}

func (s *recordService) Add(ctx context.Context, rec models.Record) (models.Record, error) {
	if rec.GUID == "" {
		rec.GUID = s.guids.Generate()
	}
	now := time.Now()
	if rec.TimeCreated == 0 {
		rec.TimeCreated = models.Timestamp(now.UnixMilli())
	}

	if err := reconcile.CheckValid(&rec); err != nil {
		return models.Record{}, fmt.Errorf("add record: %w", err)
	}

	if err := s.repo.AddLocal(ctx, rec, now); err != nil {
		return models.Record{}, fmt.Errorf("add record %s: %w", rec.GUID, err)
	}

	s.log.Debug().Str("guid", rec.GUID).Msg("added local record")
	return rec, nil
}

func (s *recordService) Update(ctx context.Context, rec models.Record) error {
	if err := reconcile.CheckValid(&rec); err != nil {
		return fmt.Errorf("update record %s: %w", rec.GUID, err)
	}

	if err := s.repo.UpdateLocal(ctx, rec, time.Now()); err != nil {
		return fmt.Errorf("update record %s: %w", rec.GUID, err)
	}

	return nil
}

func (s *recordService) Delete(ctx context.Context, guid string) error {
	if err := s.repo.MarkDeleted(ctx, guid, time.Now()); err != nil {
		return fmt.Errorf("delete record %s: %w", guid, err)
	}

	s.log.Debug().Str("guid", guid).Msg("tombstoned local record")
	return nil
}

func (s *recordService) RecordUsage(ctx context.Context, guid string, at time.Time) error {
	local, err := s.repo.GetLocal(ctx, guid)
	if err != nil {
		return fmt.Errorf("record usage for %s: %w", guid, err)
	}

	rec := local.Record.Clone()
	rec.TimesUsed++
	if ms := at.UnixMilli(); ms > 0 {
		rec.TimeLastUsed = models.Timestamp(ms)
	}

	if err := s.repo.UpdateLocal(ctx, rec, at); err != nil {
		return fmt.Errorf("record usage for %s: %w", guid, err)
	}

	return nil
}
