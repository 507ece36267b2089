// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-login-sync/models"
)

var (
	// ErrConcurrentModification is returned when the server's state moved
	// past the timestamp an upload was conditioned on; the caller should
	// download again and re-reconcile.
	ErrConcurrentModification = errors.New("server state changed since last download")

	// ErrUnexpectedStatus is returned for any response status the adapter
	// has no mapping for.
	ErrUnexpectedStatus = errors.New("unexpected server response status")
)

// Header names of the record API. The download response carries the batch
// timestamp; uploads are conditioned on it.
const (
	headerLastModified      = "X-Last-Modified"
	headerIfUnmodifiedSince = "X-If-Unmodified-Since"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) Download(ctx context.Context, since models.ServerTimestamp) ([]json.RawMessage, models.ServerTimestamp, error) {
	var payloads []json.RawMessage

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("newer", strconv.FormatInt(int64(since), 10)).
		SetResult(&payloads).
		Get("/records")
	if err != nil {
		return nil, 0, fmt.Errorf("download records: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, 0, fmt.Errorf("%w: %d on download", ErrUnexpectedStatus, resp.StatusCode())
	}

	ts, err := timestampFromHeader(resp)
	if err != nil {
		return nil, 0, err
	}

	return payloads, ts, nil
}

func (h *httpServerAdapter) Upload(ctx context.Context, envelopes []models.RecordEnvelope, ifUnmodifiedSince models.ServerTimestamp) (models.ServerTimestamp, error) {
	if len(envelopes) == 0 {
		return ifUnmodifiedSince, nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(headerIfUnmodifiedSince, strconv.FormatInt(int64(ifUnmodifiedSince), 10)).
		SetBody(envelopes).
		Post("/records")
	if err != nil {
		return 0, fmt.Errorf("upload records: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
	case http.StatusPreconditionFailed, http.StatusConflict:
		return 0, ErrConcurrentModification
	default:
		return 0, fmt.Errorf("%w: %d on upload", ErrUnexpectedStatus, resp.StatusCode())
	}

	return timestampFromHeader(resp)
}

// timestampFromHeader extracts the server's batch timestamp. Unlike record
// timestamps this one is load-bearing for optimistic concurrency, so a
// missing or garbled value is an error rather than a sanitized zero.
func timestampFromHeader(resp *resty.Response) (models.ServerTimestamp, error) {
	raw := resp.Header().Get(headerLastModified)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing %s header", ErrUnexpectedStatus, headerLastModified)
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: bad %s header %q", ErrUnexpectedStatus, headerLastModified, raw)
	}

	return models.ServerTimestamp(v), nil
}
