package httpmsg

import "strings"

// Field is a single header line as it appeared on the wire.
type Field struct {
	Name  string
	Value string
}

// Header is an ordered list of header fields. Duplicates are kept and
// arrival order survives a decode/encode round trip. Lookups compare
// names case-insensitively; stored names keep their original case.
type Header []Field

// Get returns the value of the first field matching key, or "".
func (h Header) Get(key string) string {
	for _, f := range h {
		if strings.EqualFold(f.Name, key) {
			return f.Value
		}
	}
	return ""
}

// Values returns every value stored under key, in order.
func (h Header) Values(key string) []string {
	var vv []string
	for _, f := range h {
		if strings.EqualFold(f.Name, key) {
			vv = append(vv, f.Value)
		}
	}
	return vv
}

// Has reports whether at least one field matches key.
func (h Header) Has(key string) bool {
	for _, f := range h {
		if strings.EqualFold(f.Name, key) {
			return true
		}
	}
	return false
}

// Add appends a field, preserving any existing fields with the same name.
func (h *Header) Add(key, value string) {
	*h = append(*h, Field{Name: key, Value: value})
}

// Set replaces the first field matching key and removes the rest. If no
// field matches, the pair is appended.
func (h *Header) Set(key, value string) {
	out := (*h)[:0]
	replaced := false
	for _, f := range *h {
		if strings.EqualFold(f.Name, key) {
			if replaced {
				continue
			}
			f.Value = value
			replaced = true
		}
		out = append(out, f)
	}
	if !replaced {
		out = append(out, Field{Name: key, Value: value})
	}
	*h = out
}

// Del removes every field matching key.
func (h *Header) Del(key string) {
	out := (*h)[:0]
	for _, f := range *h {
		if strings.EqualFold(f.Name, key) {
			continue
		}
		out = append(out, f)
	}
	*h = out
}
