// Package substrate is the key-value-with-history storage layer the engine
// builds on.
//
// The engine treats the substrate as a reliable, order-preserving-per-key
// store of text files with a version-control-style commit log per path.
// There is no atomicity beyond a single call and no transactions; the
// layers above (internal/idgen, internal/store) own whatever ordering they
// need.
//
// Three implementations ship:
//   - GitFS: plain files in a project directory, history via an embedded
//     git repository (go-git). This is the production backend and matches
//     the original git-based project layout on disk.
//   - SQLiteFS: files and commits as rows in a single SQLite database, for
//     single-file embedded deployments.
//   - Memory: in-process maps, for tests.
//
// Paths are slash-separated and relative to the store root, e.g.
// "requirements/REQ-001.md". ReadFile and DeleteFile return ErrNotFound
// for missing paths; ListFiles on a missing folder returns an empty list.
package substrate
