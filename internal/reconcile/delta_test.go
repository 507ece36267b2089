package reconcile

import (
	"testing"

	"github.com/MKhiriev/go-login-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseRecord — a valid form-login record most tests start from.
func baseRecord(guid string) models.Record {
	return models.Record{
		GUID:                guid,
		Hostname:            "https://www.example.com",
		FormSubmitURL:       models.String("https://www.example.com/submit"),
		Username:            "user",
		Password:            "hunter2",
		UsernameField:       "login-input",
		PasswordField:       "password-input",
		TimeCreated:         1_000,
		TimePasswordChanged: 2_000,
		TimeLastUsed:        3_000,
		TimesUsed:           4,
	}
}

// ── Diff ─────────────────────────────────────────────────────────────────────

func TestDiff_IdenticalRecords(t *testing.T) {
	rec := baseRecord("g1")
	other := rec.Clone()

	d := Diff(&rec, &other)

	assert.True(t, d.IsEmpty())
	assert.Zero(t, d.TimesUsed)
}

func TestDiff_Apply_RoundTrip(t *testing.T) {
	older := baseRecord("g1")

	newer := older.Clone()
	newer.Hostname = "https://login.example.com"
	newer.Password = "correct horse battery staple"
	newer.Username = ""
	newer.FormSubmitURL = nil
	newer.HTTPRealm = models.String("Example Realm")
	newer.TimePasswordChanged = 5_000
	newer.TimesUsed = 7

	got := older.Clone()
	Apply(&got, Diff(&newer, &older))

	assert.Equal(t, newer, got)
}

func TestDiff_OverwriteFieldsEmitEmptyString(t *testing.T) {
	older := baseRecord("g1")
	newer := older.Clone()
	newer.Username = ""

	d := Diff(&newer, &older)

	require.True(t, d.Username.Set, "empty string is a real value, not an absent entry")
	assert.Equal(t, "", d.Username.Value)
}

func TestDiff_OptionalClearIsExplicit(t *testing.T) {
	older := baseRecord("g1")
	older.HTTPRealm = models.String("Old Realm")

	newer := older.Clone()
	newer.HTTPRealm = nil

	d := Diff(&newer, &older)

	assert.Equal(t, OpClear, d.HTTPRealm.Op)
	assert.Equal(t, OptionalChange{}, d.FormSubmitURL, "untouched optional stays unchanged")
}

func TestDiff_TimestampGuard(t *testing.T) {
	tests := []struct {
		name      string
		newerTime models.Timestamp
		olderTime models.Timestamp
		wantEntry bool
	}{
		{name: "newer positive and differing", newerTime: 9_000, olderTime: 2_000, wantEntry: true},
		{name: "newer zero never clobbers", newerTime: 0, olderTime: 2_000, wantEntry: false},
		{name: "both zero", newerTime: 0, olderTime: 0, wantEntry: false},
		{name: "equal positive", newerTime: 2_000, olderTime: 2_000, wantEntry: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			older := baseRecord("g1")
			older.TimePasswordChanged = tt.olderTime
			newer := older.Clone()
			newer.TimePasswordChanged = tt.newerTime

			d := Diff(&newer, &older)

			assert.Equal(t, tt.wantEntry, d.TimePasswordChanged.Set)
			if tt.wantEntry {
				assert.Equal(t, int64(tt.newerTime), d.TimePasswordChanged.Value)
			}
		})
	}
}

func TestDiff_TimesUsedIncrement(t *testing.T) {
	older := baseRecord("g1")

	newer := older.Clone()
	newer.TimesUsed = older.TimesUsed + 6
	assert.Equal(t, int64(6), Diff(&newer, &older).TimesUsed)

	// A counter going backwards carries no usable increment.
	newer.TimesUsed = older.TimesUsed - 2
	assert.Zero(t, Diff(&newer, &older).TimesUsed)
}

// ── Apply ────────────────────────────────────────────────────────────────────

func TestApply_EmptyDeltaIsNoop(t *testing.T) {
	rec := baseRecord("g1")
	want := rec.Clone()

	Apply(&rec, Delta{})

	assert.Equal(t, want, rec)
}

func TestApply_TimesUsedAccumulates(t *testing.T) {
	rec := baseRecord("g1")

	Apply(&rec, Delta{TimesUsed: 5})

	assert.Equal(t, int64(9), rec.TimesUsed, "increment adds to the counter, never replaces it")
}

func TestApply_OptionalSetAndClear(t *testing.T) {
	rec := baseRecord("g1")

	Apply(&rec, Delta{
		FormSubmitURL: OptionalChange{Op: OpClear},
		HTTPRealm:     OptionalChange{Op: OpSet, Value: "Example Realm"},
	})

	assert.Nil(t, rec.FormSubmitURL)
	require.NotNil(t, rec.HTTPRealm)
	assert.Equal(t, "Example Realm", *rec.HTTPRealm)
}
