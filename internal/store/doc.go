// Package store is the generic record store: CRUD over one record kind,
// one text file per record, with a history commit on every mutation.
//
// A Store is parameterized by a kind descriptor and that kind's codec; the
// per-kind constructors in kinds.go are the only concrete wiring. Records
// live at <folder>/<id>.md. Writes are last-writer-wins with no optimistic
// locking; identifier allocation is the only operation with a cross-call
// ordering guarantee (see internal/idgen).
//
// Failure semantics:
//   - Load of a missing or undecodable record returns (nil, nil).
//   - LoadAll never fails because of one corrupt file; corrupt entries are
//     skipped, soft-deleted ones filtered unless asked for.
//   - SoftDelete of a missing record is a no-op.
//   - Hard Delete of a missing record surfaces the substrate error.
//   - Substrate I/O failures propagate wrapped, never retried.
package store
