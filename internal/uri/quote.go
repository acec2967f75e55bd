package uri

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

const (
	DefaultCharset = "utf-8"
	DefaultSafe    = "/:"
)

var ErrUnknownCharset = fmt.Errorf("unknown charset")

// url.PathEscape has a fixed reserved set, and Quote needs a caller-supplied
// one, so the unreserved bytes are kept in a table.
var unreserved [256]bool

func init() {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"_.-~"
	for i := 0; i < len(chars); i++ {
		unreserved[chars[i]] = true
	}
}

// Quote percent-encodes every byte of s except ASCII letters, digits, "_.-~"
// and the bytes listed in safe. Hex digits are uppercase.
func Quote(s, safe string) string {
	b := &strings.Builder{}
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved[c] || strings.IndexByte(safe, c) != -1 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(b, "%%%02X", c)
	}
	return b.String()
}

// QuotePlus form-encodes s: like Quote with no safe bytes, but a space
// becomes "+".
func QuotePlus(s string) string {
	return url.QueryEscape(s)
}

// ValidCharset reports whether charset names an encoding known to the
// WHATWG encoding index.
func ValidCharset(charset string) bool {
	_, err := htmlindex.Get(charset)
	return err == nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
