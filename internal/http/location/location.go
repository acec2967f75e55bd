// Package location rewrites redirect targets returned by a backend so they
// point back through a reverse proxy.
package location

import (
	"net/url"
	"regexp"
)

var absoluteHTTP = regexp.MustCompile(`(?i)^https?://`)

// Rewrite maps a Location value sent by the backend at hostURI.
//
// Relative locations are resolved against hostURI+prefixPath. Absolute
// locations on the same scheme and host get prefixPath prepended to their
// path. Locations on other hosts, and anything that fails to parse, are
// returned unchanged.
func Rewrite(hostURI, location, prefixPath string) string {
	if !absoluteHTTP.MatchString(location) {
		base, err := url.Parse(hostURI + prefixPath)
		if err != nil {
			return location
		}
		ref, err := url.Parse(location)
		if err != nil {
			return location
		}
		return base.ResolveReference(ref).String()
	}

	target, err := url.Parse(location)
	if err != nil {
		return location
	}
	host, err := url.Parse(hostURI)
	if err != nil {
		return location
	}
	if target.Scheme != host.Scheme || target.Host != host.Host || target.User.String() != host.User.String() {
		return location
	}

	rewritten := *target
	rewritten.Path = prefixPath + target.Path
	rewritten.RawPath = ""
	if target.RawPath != "" {
		rewritten.RawPath = prefixPath + target.RawPath
	}
	return rewritten.String()
}
