package middleware

import (
	"restkit/internal/http/location"
)

// LocationRewrite points Location headers from the backend at hostURI back
// through the proxy mounted at prefix.
type LocationRewrite struct {
	hostURI string
	prefix  string
}

func NewLocationRewrite(hostURI, prefix string) *LocationRewrite {
	return &LocationRewrite{hostURI: hostURI, prefix: prefix}
}

func (lr *LocationRewrite) HandleResponse(header Header, body []byte) error {
	loc := header.Value("Location")
	if loc == "" {
		return nil
	}
	header.Set("Location", location.Rewrite(lr.hostURI, loc, lr.prefix))
	return nil
}
