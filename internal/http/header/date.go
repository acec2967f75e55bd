package header

import (
	"net/http"
	"time"
)

// Date formats t as an RFC 1123 date in GMT, e.g.
// "Sun, 06 Nov 1994 08:49:37 GMT".
func Date(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

func Now() string {
	return Date(time.Now())
}
