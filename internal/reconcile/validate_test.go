package reconcile

import (
	"testing"

	"github.com/MKhiriev/go-login-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Record)
		wantErr error
	}{
		{
			name:   "valid form login",
			mutate: func(r *models.Record) {},
		},
		{
			name: "valid http-auth login",
			mutate: func(r *models.Record) {
				r.FormSubmitURL = nil
				r.HTTPRealm = models.String("Example Realm")
			},
		},
		{
			name: "empty realm is still a target",
			mutate: func(r *models.Record) {
				r.FormSubmitURL = nil
				r.HTTPRealm = models.String("")
			},
		},
		{
			name:    "empty hostname",
			mutate:  func(r *models.Record) { r.Hostname = "" },
			wantErr: ErrEmptyHostname,
		},
		{
			name:    "empty password",
			mutate:  func(r *models.Record) { r.Password = "" },
			wantErr: ErrEmptyPassword,
		},
		{
			name: "both targets set",
			mutate: func(r *models.Record) {
				r.HTTPRealm = models.String("Example Realm")
			},
			wantErr: ErrBothTargets,
		},
		{
			name: "no target set",
			mutate: func(r *models.Record) {
				r.FormSubmitURL = nil
			},
			wantErr: ErrNoTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord("g1")
			tt.mutate(&rec)

			err := CheckValid(&rec)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestCheckValid_Order pins the check order for a record violating several
// invariants at once, so diagnostics stay stable across devices.
func TestCheckValid_Order(t *testing.T) {
	rec := models.Record{GUID: "g1"} // no hostname, no password, no target
	require.ErrorIs(t, CheckValid(&rec), ErrEmptyHostname)

	rec.Hostname = "https://www.example.com"
	require.ErrorIs(t, CheckValid(&rec), ErrEmptyPassword)

	rec.Password = "hunter2"
	require.ErrorIs(t, CheckValid(&rec), ErrNoTarget)
}
