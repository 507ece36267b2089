// Package reconcile implements the three-way merge core of the login store.
//
// A sync pass hands each guid's local row, server mirror and freshly
// downloaded snapshot to this package, which decides how the three combine
// into one consistent record: Diff computes a sparse field-level delta
// between two record snapshots, Merge reconciles two deltas computed against
// the shared mirror ancestor under the per-field conflict policy, Apply
// writes a delta back onto a record, CheckValid guards the record invariants
// before anything is persisted or uploaded, and Reconcile ties the pieces
// together into a per-guid outcome the storage layer executes.
//
// Everything here is a pure transformation over values owned by the caller:
// no I/O, no shared state, no blocking. Independent guids may therefore be
// reconciled concurrently as long as no two RecordData contexts exist for
// the same guid at once.
package reconcile
