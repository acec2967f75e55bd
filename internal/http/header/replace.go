package header

import (
	"sort"
	"strings"
)

// ReplaceHeader sets the first field matching name, ignoring case, to value
// and canonicalizes its name. Without a match the field is appended. The
// list is modified in place when possible; always use the returned list.
func ReplaceHeader(name, value string, headers List) List {
	if i, ok := headers.FindFirstCI(name); ok {
		headers[i] = Field{Name: title(name), Value: value}
		return headers
	}
	return append(headers, Field{Name: title(name), Value: value})
}

// ReplaceHeaders applies every field of newHeaders to headers in a single
// pass. Each matching field gets the new value and a canonical name. The scan
// stops as soon as every new name has matched at least once, so matches past
// that point keep their old values. Names that never matched are appended in
// the order they appear in newHeaders.
func ReplaceHeaders(newHeaders []Field, headers List) List {
	type pending struct {
		name  string
		value string
	}
	index := make(map[string]*pending, len(newHeaders))
	var order []string
	for _, f := range newHeaders {
		key := strings.ToUpper(f.Name)
		if p, ok := index[key]; ok {
			p.name, p.value = f.Name, f.Value
			continue
		}
		index[key] = &pending{name: f.Name, value: f.Value}
		order = append(order, key)
	}
	if len(index) == 0 {
		return headers
	}

	found := make(map[string]struct{}, len(index))
	for i, f := range headers {
		key := strings.ToUpper(f.Name)
		p, ok := index[key]
		if !ok {
			continue
		}
		headers[i] = Field{Name: title(f.Name), Value: p.value}
		found[key] = struct{}{}
		if len(found) == len(index) {
			return headers
		}
	}

	for _, key := range order {
		if _, ok := found[key]; ok {
			continue
		}
		p := index[key]
		headers = append(headers, Field{Name: title(p.name), Value: p.value})
	}
	return headers
}

// FieldsFromMap converts a name to value map into fields sorted by name.
func FieldsFromMap(m map[string]string) []Field {
	fields := make([]Field, 0, len(m))
	for k, v := range m {
		fields = append(fields, Field{Name: k, Value: v})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
	return fields
}
