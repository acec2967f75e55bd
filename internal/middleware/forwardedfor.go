package middleware

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

var ErrInvalidClientAddr = errors.New("invalid client address")

// ForwardedFor appends the client address to X-Forwarded-For. Earlier hops
// are kept and every X-Forwarded-For field is folded into one.
type ForwardedFor struct {
	client string
}

// NewForwardedFor accepts "host:port", a bare IP or a bracketed IPv6 address.
func NewForwardedFor(client string) *ForwardedFor {
	return &ForwardedFor{client: client}
}

func (ff *ForwardedFor) HandleRequest(header Header) error {
	clientIP, err := clientHost(ff.client)
	if err != nil {
		return err
	}

	if prior := header.Values("X-Forwarded-For"); len(prior) > 0 {
		clientIP = strings.Join(prior, ", ") + ", " + clientIP
	}
	header.Remove("X-Forwarded-For")
	header.Set("X-Forwarded-For", clientIP)
	return nil
}

func clientHost(addr string) (string, error) {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	ip := net.ParseIP(strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]"))
	if ip == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidClientAddr, addr)
	}
	return ip.String(), nil
}
