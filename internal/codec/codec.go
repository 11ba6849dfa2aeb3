package codec

import (
	"strconv"
	"strings"
)

// Codec converts one record kind to and from its storage text.
//
// Serialize is total for valid records. Deserialize never fails loudly:
// malformed input, a missing mandatory field, or an unrecognized layout all
// yield (zero, false).
type Codec[T any] interface {
	Serialize(record T) string
	Deserialize(text string) (T, bool)
}

// field is one metadata line. Repeated keys are legal (custom attributes).
type field struct {
	key   string
	value string
}

// doc is an ordered metadata block plus a raw body. It is the shared
// builder/parser all kind codecs go through.
type doc struct {
	fields []field
	body   string
}

// set appends a metadata line. Empty values are omitted entirely so absent
// optionals stay absent through a round trip.
func (d *doc) set(key, value string) {
	if value == "" {
		return
	}
	d.fields = append(d.fields, field{key: key, value: value})
}

// setRaw appends a metadata line even when the value is empty.
func (d *doc) setRaw(key, value string) {
	d.fields = append(d.fields, field{key: key, value: value})
}

// setInt appends an integer line, omitting zeros.
func (d *doc) setInt(key string, v int64) {
	if v == 0 {
		return
	}
	d.set(key, strconv.FormatInt(v, 10))
}

// setBool appends a boolean line, omitting false.
func (d *doc) setBool(key string, v bool) {
	if v {
		d.set(key, "true")
	}
}

// setList appends a comma-joined list line, omitting empty lists.
// Items are stored trimmed; items that trim to nothing are dropped.
func (d *doc) setList(key string, items []string) {
	var kept []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return
	}
	d.set(key, strings.Join(kept, ", "))
}

// setEscaped appends a line whose value may span multiple lines in the
// record; newlines and backslashes are escaped so the block stays
// line-oriented.
func (d *doc) setEscaped(key, value string) {
	if value == "" {
		return
	}
	d.set(key, escape(value))
}

// get returns the first value for key.
func (d *doc) get(key string) (string, bool) {
	for _, f := range d.fields {
		if f.key == key {
			return f.value, true
		}
	}
	return "", false
}

// getString returns the first value for key, or "".
func (d *doc) getString(key string) string {
	v, _ := d.get(key)
	return v
}

// getEscaped returns an escaped multi-line value, unescaped.
func (d *doc) getEscaped(key string) string {
	return unescape(d.getString(key))
}

// getInt parses an integer field; missing or malformed reads as (0, false).
func (d *doc) getInt(key string) (int64, bool) {
	v, ok := d.get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// getBool parses a boolean field; anything but "true" reads as false.
func (d *doc) getBool(key string) bool {
	v, _ := d.get(key)
	return v == "true"
}

// getList splits a comma-joined list field: whitespace-trimmed, empty
// tokens dropped. A missing field reads as nil.
func (d *doc) getList(key string) []string {
	v, ok := d.get(key)
	if !ok {
		return nil
	}
	return SplitList(v)
}

// all returns every value stored under key, in order.
func (d *doc) all(key string) []string {
	var values []string
	for _, f := range d.fields {
		if f.key == key {
			values = append(values, f.value)
		}
	}
	return values
}

// render produces the storage text: metadata lines, a blank separator, and
// the raw body. The separator is emitted only when a body exists, so
// body-less kinds round-trip without trailing whitespace.
func (d *doc) render() string {
	var b strings.Builder
	for i, f := range d.fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.key)
		b.WriteString(": ")
		b.WriteString(f.value)
	}
	if d.body != "" {
		b.WriteString("\n\n")
		b.WriteString(d.body)
	}
	return b.String()
}

// parseDoc splits storage text back into a doc. Returns false when a
// metadata line has no "key: value" shape; the body (everything after the
// first blank line) is taken verbatim.
func parseDoc(text string) (*doc, bool) {
	d := &doc{}
	header := text
	if idx := strings.Index(text, "\n\n"); idx >= 0 {
		header = text[:idx]
		d.body = text[idx+2:]
	}
	if strings.TrimSpace(header) == "" {
		return nil, false
	}
	for _, line := range strings.Split(header, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found || strings.TrimSpace(key) == "" {
			return nil, false
		}
		d.fields = append(d.fields, field{
			key:   strings.TrimSpace(key),
			value: strings.TrimPrefix(value, " "),
		})
	}
	return d, true
}

// SplitList implements the list-splitting rule used across the format:
// split on commas, trim whitespace, drop empty tokens.
func SplitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// escape makes a value safe for a single metadata line.
func escape(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, "\n", `\n`)
	return v
}

// unescape reverses escape. Unknown escapes pass through unchanged.
func unescape(v string) string {
	if !strings.ContainsRune(v, '\\') {
		return v
	}
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' || i+1 == len(v) {
			b.WriteByte(v[i])
			continue
		}
		switch v[i+1] {
		case 'n':
			b.WriteByte('\n')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String()
}
