package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-login-sync/internal/logger"
	"github.com/MKhiriev/go-login-sync/internal/reconcile"
	"github.com/MKhiriev/go-login-sync/internal/store"
	"github.com/MKhiriev/go-login-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-login-sync/internal/mock"
)

func newTestRecordService(t *testing.T, ctrl *gomock.Controller) (*recordService, *mock.MockLoginRepository) {
	t.Helper()
	mockRepo := mock.NewMockLoginRepository(ctrl)
	svc := NewRecordService(mockRepo, logger.Nop()).(*recordService)
	return svc, mockRepo
}

// ── Add ──────────────────────────────────────────────────────────────────────

func TestRecordService_Add_MintsGUIDAndCreationTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordService(t, ctrl)
	ctx := context.Background()

	rec := validRecord("")
	rec.TimeCreated = 0

	var stored models.Record
	mockRepo.EXPECT().AddLocal(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, got models.Record, _ time.Time) error {
			stored = got
			return nil
		},
	)

	created, err := svc.Add(ctx, rec)
	require.NoError(t, err)

	assert.NotEmpty(t, created.GUID, "a record without an id gets one minted")
	assert.NotZero(t, created.TimeCreated)
	assert.Equal(t, stored, created)
}

func TestRecordService_Add_KeepsSuppliedGUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordService(t, ctrl)
	ctx := context.Background()

	rec := validRecord("supplied-guid")
	mockRepo.EXPECT().AddLocal(ctx, gomock.Any(), gomock.Any()).Return(nil)

	created, err := svc.Add(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, "supplied-guid", created.GUID)
}

func TestRecordService_Add_RejectsInvalidRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRecordService(t, ctrl)
	ctx := context.Background()

	rec := validRecord("g1")
	rec.Password = ""

	_, err := svc.Add(ctx, rec)
	require.ErrorIs(t, err, reconcile.ErrEmptyPassword, "invalid records never reach the repository")
}

// ── Update / Delete ──────────────────────────────────────────────────────────

func TestRecordService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordService(t, ctrl)
	ctx := context.Background()

	rec := validRecord("g1")
	mockRepo.EXPECT().UpdateLocal(ctx, rec, gomock.Any()).Return(nil)

	require.NoError(t, svc.Update(ctx, rec))
}

func TestRecordService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordService(t, ctrl)
	ctx := context.Background()

	rec := validRecord("missing")
	mockRepo.EXPECT().UpdateLocal(ctx, rec, gomock.Any()).Return(store.ErrRecordNotFound)

	err := svc.Update(ctx, rec)
	require.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestRecordService_Update_RejectsBothTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRecordService(t, ctrl)
	ctx := context.Background()

	rec := validRecord("g1")
	rec.HTTPRealm = models.String("Example Realm")

	err := svc.Update(ctx, rec)
	require.ErrorIs(t, err, reconcile.ErrBothTargets)
}

func TestRecordService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().MarkDeleted(ctx, "g1", gomock.Any()).Return(nil)

	require.NoError(t, svc.Delete(ctx, "g1"))
}

// ── RecordUsage ──────────────────────────────────────────────────────────────

func TestRecordService_RecordUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordService(t, ctrl)
	ctx := context.Background()

	rec := validRecord("g1")
	rec.TimesUsed = 4
	at := time.UnixMilli(9_000)

	mockRepo.EXPECT().GetLocal(ctx, "g1").Return(models.LocalRecord{Record: rec}, nil)
	mockRepo.EXPECT().UpdateLocal(ctx, gomock.Any(), at).DoAndReturn(
		func(_ context.Context, got models.Record, _ time.Time) error {
			assert.Equal(t, int64(5), got.TimesUsed)
			assert.Equal(t, models.Timestamp(9_000), got.TimeLastUsed)
			return nil
		},
	)

	require.NoError(t, svc.RecordUsage(ctx, "g1", at))
}

func TestRecordService_RecordUsage_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetLocal(ctx, "missing").Return(models.LocalRecord{}, store.ErrRecordNotFound)

	err := svc.RecordUsage(ctx, "missing", time.Now())
	require.ErrorIs(t, err, store.ErrRecordNotFound)
}
