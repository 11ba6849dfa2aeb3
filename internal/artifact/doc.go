// Package artifact defines the record kinds stored by the ReqTrace engine
// and the metadata every record shares.
//
// A record is one persisted unit of a given kind (requirement, use case,
// test case, risk, information document, attribute definition, workflow, or
// link). Each kind owns a storage folder and an identifier prefix; the Kind
// registry in this package is the single source of truth for both, and
// KindForID is the only place an artifact type is inferred from an
// identifier prefix.
//
// Records carry:
//   - an immutable generated identifier (<PREFIX>-<zero-padded sequence>)
//   - creation/modification timestamps in epoch milliseconds
//   - a revision tag maintained by callers, not computed by the engine
//   - soft-delete markers (isDeleted, deletedAt)
//   - an ordered list of custom attribute values (sealed AttrValue sum type)
//
// The package holds no I/O; persistence lives in internal/store and the
// wire format in internal/codec.
package artifact
