package cli

import (
	"fmt"
	"strings"

	"restkit/internal/http/header"
	"restkit/internal/uri"
)

// fieldsFlag collects repeated Name=Value flags in order.
type fieldsFlag struct {
	fields []header.Field
}

func (f *fieldsFlag) String() string {
	parts := make([]string, len(f.fields))
	for i, fl := range f.fields {
		parts[i] = fl.Name + "=" + fl.Value
	}
	return strings.Join(parts, ",")
}

func (f *fieldsFlag) Set(s string) error {
	name, value, err := splitPair(s)
	if err != nil {
		return err
	}
	f.fields = append(f.fields, header.Field{Name: name, Value: value})
	return nil
}

func (f *fieldsFlag) Type() string {
	return "name=value"
}

// params groups the collected pairs by key; a repeated key becomes a list.
func (f *fieldsFlag) params() uri.Params {
	grouped := make(map[string][]string)
	var order []string
	for _, fl := range f.fields {
		if _, ok := grouped[fl.Name]; !ok {
			order = append(order, fl.Name)
		}
		grouped[fl.Name] = append(grouped[fl.Name], fl.Value)
	}

	params := make(uri.Params, len(grouped))
	for _, k := range order {
		vs := grouped[k]
		if len(vs) == 1 {
			params[k] = uri.Scalar(vs[0])
			continue
		}
		params[k] = uri.Strings(vs...)
	}
	return params
}

func splitPair(s string) (string, string, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: expected name=value, got %q", ErrUsage, s)
	}
	return name, value, nil
}
