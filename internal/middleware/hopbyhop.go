package middleware

import "strings"

var hopHeaders = []string{
	"Connection",
	"Proxy-Connection", // non-standard but still sent by libcurl
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// HopByHop removes hop-by-hop fields, including any named in Connection.
// A protocol upgrade survives as "Connection: Upgrade" plus its Upgrade
// field.
type HopByHop struct{}

func NewHopByHop() *HopByHop {
	return &HopByHop{}
}

func (hb *HopByHop) HandleRequest(header Header) error {
	hb.strip(header)
	return nil
}

func (hb *HopByHop) HandleResponse(header Header, body []byte) error {
	hb.strip(header)
	return nil
}

func (hb *HopByHop) strip(header Header) {
	upgrade := upgradeType(header)

	for _, f := range header.Values("Connection") {
		for _, sf := range strings.Split(f, ",") {
			if sf = strings.TrimSpace(sf); sf != "" {
				header.Remove(sf)
			}
		}
	}
	for _, name := range hopHeaders {
		header.Remove(name)
	}

	if upgrade != "" {
		header.Set("Connection", "Upgrade")
		header.Set("Upgrade", upgrade)
	}
}

func upgradeType(header Header) string {
	if !header.HasToken("Connection", "Upgrade") {
		return ""
	}
	return header.Value("Upgrade")
}
