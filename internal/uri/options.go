package uri

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

type Option func(*options)

type options struct {
	charset    string
	safe       string
	encodeKeys bool
	enc        encoding.Encoding
}

// WithCharset sets the charset text is converted to before percent-encoding.
// Labels are resolved through the WHATWG encoding index, so "utf8",
// "latin1" and "shift_jis" are all accepted.
func WithCharset(charset string) Option {
	return func(o *options) { o.charset = charset }
}

// WithSafe sets the bytes left unescaped in path segments.
func WithSafe(safe string) Option {
	return func(o *options) { o.safe = safe }
}

// WithEncodeKeys controls whether query keys are percent-encoded.
func WithEncodeKeys(encode bool) Option {
	return func(o *options) { o.encodeKeys = encode }
}

func newOptions(encodeKeys bool, opts []Option) (*options, error) {
	o := &options{
		charset:    DefaultCharset,
		safe:       DefaultSafe,
		encodeKeys: encodeKeys,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.charset == "" {
		return o, nil
	}
	enc, err := htmlindex.Get(o.charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, o.charset)
	}
	if name, _ := htmlindex.Name(enc); name != "utf-8" {
		o.enc = enc
	}
	return o, nil
}

func (o *options) transcode(s string) (string, error) {
	if o.enc == nil || isASCII(s) {
		return s, nil
	}
	out, err := o.enc.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("encode %q as %s: %w", s, o.charset, err)
	}
	return out, nil
}
