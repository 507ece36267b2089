package reconcile

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-login-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inboundFor(rec models.Record, ts models.ServerTimestamp) models.InboundRecord {
	return models.InboundRecord{Record: &rec, ServerModified: ts}
}

func TestNewRecordData_GUIDMismatch(t *testing.T) {
	_, err := NewRecordData("g1", inboundFor(baseRecord("g2"), 100))

	require.Error(t, err)
	assert.True(t, IsIntegrityError(err))
	assert.ErrorIs(t, err, ErrGUIDMismatch)

	var integrity *IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "g1", integrity.GUID)
	assert.Equal(t, "inbound", integrity.Slot)
}

func TestNewRecordData_Tombstone(t *testing.T) {
	d, err := NewRecordData("g1", models.InboundRecord{ServerModified: 100})

	require.NoError(t, err)
	assert.True(t, d.Inbound().IsTombstone())
	assert.Nil(t, d.Local())
	assert.Nil(t, d.Mirror())
}

func TestRecordData_SetLocal(t *testing.T) {
	d, err := NewRecordData("g1", inboundFor(baseRecord("g1"), 100))
	require.NoError(t, err)

	local := models.NewLocalRecord(baseRecord("g1"))
	require.NoError(t, d.SetLocal(local))
	require.NotNil(t, d.Local())

	// Occupied slot rejects a second assignment and keeps the first.
	err = d.SetLocal(models.NewLocalRecord(baseRecord("g1")))
	require.ErrorIs(t, err, ErrSlotOccupied)
	assert.True(t, IsIntegrityError(err))
	assert.Equal(t, local.Record, d.Local().Record)
}

func TestRecordData_SetLocal_GUIDMismatchLeavesSlotEmpty(t *testing.T) {
	d, err := NewRecordData("g1", inboundFor(baseRecord("g1"), 100))
	require.NoError(t, err)

	err = d.SetLocal(models.NewLocalRecord(baseRecord("g2")))
	require.ErrorIs(t, err, ErrGUIDMismatch)
	assert.Nil(t, d.Local(), "failed assignment must not mutate the context")
}

func TestRecordData_SetMirror(t *testing.T) {
	d, err := NewRecordData("g1", inboundFor(baseRecord("g1"), 100))
	require.NoError(t, err)

	require.NoError(t, d.SetMirror(models.NewMirrorRecord(baseRecord("g1"), 50)))

	err = d.SetMirror(models.NewMirrorRecord(baseRecord("g1"), 60))
	require.ErrorIs(t, err, ErrSlotOccupied)
	assert.Equal(t, models.ServerTimestamp(50), d.Mirror().ServerModified)

	var integrity *IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "mirror", integrity.Slot)
}

func TestIsIntegrityError(t *testing.T) {
	assert.True(t, IsIntegrityError(&IntegrityError{GUID: "g1", Slot: "local", Err: ErrSlotOccupied}))
	assert.False(t, IsIntegrityError(errors.New("plain error")))
	assert.False(t, IsIntegrityError(nil))
}
