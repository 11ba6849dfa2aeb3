// Package codec serializes records to and from their on-disk text format.
//
// The format is a metadata block of "key: value" lines, a blank line, and
// free-form body text:
//
//	id: REQ-001
//	title: Login requires MFA
//	status: draft
//	priority: high
//	revision: 1
//	created: 1700000000000
//	modified: 1700000000000
//
//	The system shall require a second factor at login.
//
// Rules the whole package obeys:
//   - List fields are comma-joined; on read they split on commas with
//     whitespace trimming and empty-token removal.
//   - Multi-line metadata fields (test steps, preconditions, ...) escape
//     backslashes and newlines so they never break the line-oriented block;
//     the body carries raw text verbatim.
//   - Booleans and numbers round-trip by type, not as strings.
//   - Optional fields absent in the record produce no line at all, and a
//     missing line reads back as the zero value.
//
// Codecs are pure: Serialize has no side effects and Deserialize returns
// (nil, false) on malformed input instead of an error or a panic.
// Round-trip law: Deserialize(Serialize(r)) == r for every valid r.
package codec
