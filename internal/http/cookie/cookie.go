// Package cookie turns Cookie and Set-Cookie header text into a flat
// name to value mapping.
package cookie

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// attributes are cookie metadata, never cookie names.
var attributes = map[string]struct{}{
	"expires":     {},
	"path":        {},
	"comment":     {},
	"domain":      {},
	"max-age":     {},
	"secure":      {},
	"httponly":    {},
	"version":     {},
	"samesite":    {},
	"partitioned": {},
}

// Parse decodes a "name=value; name2=value2" header. Attributes such as Path
// or Expires are dropped and quoted values are unquoted. When a name repeats
// the last value wins. A header that cannot be parsed yields an empty map.
func Parse(raw string) map[string]string {
	result := make(map[string]string)
	if raw == "" {
		return result
	}

	var pairs []string
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, _, _ := strings.Cut(part, "=")
		if isAttribute(strings.TrimSpace(name)) {
			continue
		}
		pairs = append(pairs, part)
	}
	if len(pairs) == 0 {
		return result
	}

	cookies, err := http.ParseCookie(strings.Join(pairs, "; "))
	if err != nil {
		zap.L().Debug("ignoring malformed cookie header", zap.String("cookie", raw), zap.Error(err))
		return result
	}
	for _, c := range cookies {
		result[c.Name] = c.Value
	}
	return result
}

// FromCookies builds the same mapping from cookies that were already parsed,
// such as the result of (*http.Response).Cookies.
func FromCookies(cookies []*http.Cookie) map[string]string {
	result := make(map[string]string, len(cookies))
	for _, c := range cookies {
		if c == nil {
			continue
		}
		result[c.Name] = c.Value
	}
	return result
}

func isAttribute(name string) bool {
	if strings.HasPrefix(name, "$") {
		return true
	}
	_, ok := attributes[strings.ToLower(name)]
	return ok
}
