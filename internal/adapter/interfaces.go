// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the transport collaborator of the
// reconciliation core: it fetches inbound record envelopes from the sync
// server and pushes outgoing ones, carrying the server timestamps the merge
// policy keys on.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-login-sync/models"
)

// ServerAdapter is the record-server transport consumed by the sync service.
type ServerAdapter interface {
	// Download fetches every record envelope modified after since, raw so
	// the caller can decode (and skip) envelopes one by one. The returned
	// timestamp is the server's modification time for the batch and
	// becomes the optimistic-concurrency base of the following upload.
	Download(ctx context.Context, since models.ServerTimestamp) ([]json.RawMessage, models.ServerTimestamp, error)

	// Upload pushes outgoing envelopes. ifUnmodifiedSince must be the
	// timestamp of the last download; the server rejects the batch with a
	// conflict when its state moved past it. Returns the new server
	// timestamp assigned to the uploaded records.
	Upload(ctx context.Context, envelopes []models.RecordEnvelope, ifUnmodifiedSince models.ServerTimestamp) (models.ServerTimestamp, error)
}
