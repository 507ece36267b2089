package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Merge ────────────────────────────────────────────────────────────────────

func TestMerge_DisjointFields(t *testing.T) {
	a := Delta{Password: StringChange{Set: true, Value: "new-password"}}
	b := Delta{Username: StringChange{Set: true, Value: "new-user"}}

	merged, collisions := Merge(a, b, false)

	assert.Empty(t, collisions)
	assert.Equal(t, StringChange{Set: true, Value: "new-password"}, merged.Password)
	assert.Equal(t, StringChange{Set: true, Value: "new-user"}, merged.Username)
}

func TestMerge_CollisionTieBreak(t *testing.T) {
	a := Delta{UsernameField: StringChange{Set: true, Value: "username"}}
	b := Delta{UsernameField: StringChange{Set: true, Value: "login"}}

	tests := []struct {
		name     string
		bIsNewer bool
		want     string
	}{
		{name: "b newer takes b", bIsNewer: true, want: "login"},
		{name: "a newer keeps a", bIsNewer: false, want: "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, collisions := Merge(a, b, tt.bIsNewer)

			require.Len(t, collisions, 1)
			assert.Equal(t, FieldUsernameField, collisions[0].Field)
			assert.Equal(t, tt.bIsNewer, collisions[0].TookB)
			assert.Equal(t, tt.want, merged.UsernameField.Value)
		})
	}
}

func TestMerge_OptionalSetVersusClear(t *testing.T) {
	a := Delta{HTTPRealm: OptionalChange{Op: OpSet, Value: "Example Realm"}}
	b := Delta{HTTPRealm: OptionalChange{Op: OpClear}}

	merged, collisions := Merge(a, b, true)

	require.Len(t, collisions, 1)
	assert.Equal(t, FieldHTTPRealm, collisions[0].Field)
	assert.Equal(t, OpClear, merged.HTTPRealm.Op, "set versus clear is a genuine conflicting edit")
}

func TestMerge_TimestampCollision(t *testing.T) {
	a := Delta{TimePasswordChanged: TimeChange{Set: true, Value: 5_000}}
	b := Delta{TimePasswordChanged: TimeChange{Set: true, Value: 6_000}}

	merged, collisions := Merge(a, b, false)

	require.Len(t, collisions, 1)
	assert.Equal(t, FieldTimePasswordChanged, collisions[0].Field)
	assert.Equal(t, int64(5_000), merged.TimePasswordChanged.Value)
}

// TestMerge_TimesUsedAdditive verifies that usage counters from both sides
// are kept: two devices each using the login three times means six uses, not
// whichever side happened to be newer.
func TestMerge_TimesUsedAdditive(t *testing.T) {
	a := Delta{TimesUsed: 3}
	b := Delta{TimesUsed: 3}

	for _, bIsNewer := range []bool{true, false} {
		merged, collisions := Merge(a, b, bIsNewer)

		assert.Empty(t, collisions, "a counter is never a collision")
		assert.Equal(t, int64(6), merged.TimesUsed)
	}
}

// TestMerge_Commutative verifies order independence: swapping the deltas and
// inverting the tie-break produces the same merged delta, so two devices
// reconciling the same pair converge.
func TestMerge_Commutative(t *testing.T) {
	a := Delta{
		Password:     StringChange{Set: true, Value: "from-a"},
		Username:     StringChange{Set: true, Value: "user-a"},
		HTTPRealm:    OptionalChange{Op: OpSet, Value: "Realm A"},
		TimeLastUsed: TimeChange{Set: true, Value: 7_000},
		TimesUsed:    2,
	}
	b := Delta{
		Password:      StringChange{Set: true, Value: "from-b"},
		UsernameField: StringChange{Set: true, Value: "login"},
		TimesUsed:     5,
	}

	ab, _ := Merge(a, b, true)
	ba, _ := Merge(b, a, false)

	assert.Equal(t, ab, ba)
}
