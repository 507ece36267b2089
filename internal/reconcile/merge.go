// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

// Collision records two deltas disagreeing on one field's new value. It is
// observability data, never an error: the merge already resolved the field
// deterministically. Values are deliberately not included — collisions get
// logged, and half of these fields are credentials.
type Collision struct {
	// Field is the contested field.
	Field Field

	// TookB reports which side won: true when delta b's value was kept.
	TookB bool
}

// Merge reconciles two deltas computed against the same ancestor record
// (typically local-vs-mirror and inbound-vs-mirror) into one delta
// representing the combined change.
//
// A field present in only one delta is taken as-is. A field present in both
// is a genuine conflicting edit; no content merge is attempted within the
// field — a keeps the slot unless bIsNewer is true, and the collision is
// reported in the returned slice. TimesUsed is always summed, independent of
// bIsNewer.
//
// bIsNewer is the only tie-break and must be supplied deterministically
// (e.g. from server-timestamp ordering) or merges stop being reproducible
// across devices.
func Merge(a, b Delta, bIsNewer bool) (Delta, []Collision) {
	merged := a
	var collisions []Collision

	for _, f := range stringFields {
		bc := f.slot(&b)
		if !bc.Set {
			continue
		}
		mc := f.slot(&merged)
		if mc.Set {
			collisions = append(collisions, Collision{Field: f.name, TookB: bIsNewer})
			if bIsNewer {
				*mc = *bc
			}
			continue
		}
		*mc = *bc
	}

	for _, f := range optionalFields {
		bc := f.slot(&b)
		if bc.Op == OpUnchanged {
			continue
		}
		mc := f.slot(&merged)
		if mc.Op != OpUnchanged {
			collisions = append(collisions, Collision{Field: f.name, TookB: bIsNewer})
			if bIsNewer {
				*mc = *bc
			}
			continue
		}
		*mc = *bc
	}

	for _, f := range timeFields {
		bc := f.slot(&b)
		if !bc.Set {
			continue
		}
		mc := f.slot(&merged)
		if mc.Set {
			collisions = append(collisions, Collision{Field: f.name, TookB: bIsNewer})
			if bIsNewer {
				*mc = *bc
			}
			continue
		}
		*mc = *bc
	}

	merged.TimesUsed = a.TimesUsed + b.TimesUsed

	return merged, collisions
}
