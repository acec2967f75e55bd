package header

import (
	"fmt"

	"golang.org/x/net/http/httpguts"
)

var (
	ErrInvalidName  = fmt.Errorf("invalid header field name")
	ErrInvalidValue = fmt.Errorf("invalid header field value")
)

// Validate checks every field against the RFC 7230 field grammar. The
// replace operations never call it.
func (l List) Validate() error {
	for i, f := range l {
		if !httpguts.ValidHeaderFieldName(f.Name) {
			return fmt.Errorf("field %d: %w: %q", i, ErrInvalidName, f.Name)
		}
		if !httpguts.ValidHeaderFieldValue(f.Value) {
			return fmt.Errorf("field %d (%s): %w", i, f.Name, ErrInvalidValue)
		}
	}
	return nil
}

// HasToken reports whether any field named name holds token in its
// comma-separated value, ignoring case.
func (l List) HasToken(name, token string) bool {
	return httpguts.HeaderValuesContainsToken(l.Values(name), token)
}
