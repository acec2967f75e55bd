package header

import (
	"net/http"
	"sort"
	"strings"
)

type Field struct {
	Name  string
	Value string
}

// List is an ordered header list. Names are compared case-insensitively and
// duplicates are allowed. A List is not safe for concurrent mutation.
type List []Field

// FindFirstCI returns the index of the first field named name, ignoring case.
func (l List) FindFirstCI(name string) (int, bool) {
	for i, f := range l {
		if strings.EqualFold(f.Name, name) {
			return i, true
		}
	}
	return -1, false
}

func (l List) Value(name string) string {
	i, ok := l.FindFirstCI(name)
	if !ok {
		return ""
	}
	return l[i].Value
}

func (l List) Values(name string) []string {
	var values []string
	for _, f := range l {
		if strings.EqualFold(f.Name, name) {
			values = append(values, f.Value)
		}
	}
	return values
}

// Set replaces the first field named name or appends a new one.
func (l *List) Set(name, value string) {
	*l = ReplaceHeader(name, value, *l)
}

// Add appends a field without looking for an existing one. The name is
// stored as given.
func (l *List) Add(name, value string) {
	*l = append(*l, Field{Name: name, Value: value})
}

// Remove deletes every field named name.
func (l *List) Remove(name string) {
	kept := (*l)[:0]
	for _, f := range *l {
		if !strings.EqualFold(f.Name, name) {
			kept = append(kept, f)
		}
	}
	*l = kept
}

func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// FromHTTP flattens h into a List ordered by key.
func FromHTTP(h http.Header) List {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var l List
	for _, k := range keys {
		for _, v := range h[k] {
			l = append(l, Field{Name: k, Value: v})
		}
	}
	return l
}

func (l List) HTTP() http.Header {
	h := make(http.Header, len(l))
	for _, f := range l {
		h.Add(f.Name, f.Value)
	}
	return h
}

func title(name string) string {
	return http.CanonicalHeaderKey(name)
}
