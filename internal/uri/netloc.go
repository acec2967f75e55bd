package uri

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var ErrInvalidURL = fmt.Errorf("invalid url")

// SplitHostPort returns the host and port of u. Without an explicit port it
// falls back to 443 for https and 80 for everything else. Brackets around an
// IPv6 literal are removed.
func SplitHostPort(u *url.URL) (string, int, error) {
	host := u.Host
	port := 80
	if u.Scheme == "https" {
		port = 443
	}

	i := strings.LastIndexByte(host, ':')
	j := strings.LastIndexByte(host, ']')
	if i > j {
		p, err := strconv.Atoi(host[i+1:])
		if err != nil {
			return "", 0, fmt.Errorf("%w: nonnumeric port: %q", ErrInvalidURL, host[i+1:])
		}
		port = p
		host = host[:i]
	}

	if len(host) > 1 && host[0] == '[' && host[len(host)-1] == ']' {
		host = host[1 : len(host)-1]
	}
	return host, port, nil
}
