package uri

import (
	"sort"
	"strings"
)

// Build assembles base, the path segments and the query parameters into one
// percent-encoded URI.
//
// One trailing slash is stripped from base and restored only when no segment
// follows it. Each segment is stripped of surrounding slashes and encoded with
// the safe set; segments that end up empty are skipped. The result ends in a
// slash only when the last non-empty segment did. Query keys are converted to
// the charset unless WithEncodeKeys(false) is given.
func Build(base string, segments []string, params Params, opts ...Option) (string, error) {
	o, err := newOptions(true, opts)
	if err != nil {
		return "", err
	}

	baseTrailingSlash := false
	if strings.HasSuffix(base, "/") {
		baseTrailingSlash = true
		base = base[:len(base)-1]
	}

	var path []string
	trailingSlash := false
	for _, s := range segments {
		stripped := strings.Trim(s, "/")
		if stripped == "" {
			continue
		}
		trailingSlash = len(s) > 1 && strings.HasSuffix(s, "/")

		stripped, err = o.transcode(stripped)
		if err != nil {
			return "", err
		}
		path = append(path, Quote(stripped, o.safe))
	}

	b := &strings.Builder{}
	b.WriteString(base)
	switch {
	case len(path) > 0:
		b.WriteString("/")
		b.WriteString(strings.Join(path, "/"))
		if trailingSlash {
			b.WriteString("/")
		}
	case baseTrailingSlash:
		b.WriteString("/")
	}

	query, err := encode(params, o)
	if err != nil {
		return "", err
	}
	if query != "" {
		b.WriteString("?")
		b.WriteString(query)
	}
	return b.String(), nil
}

// Encode form-encodes params into a query string without the leading "?".
// Keys are always percent-encoded with "/" left alone; they are converted to
// the charset first only when WithEncodeKeys(true) is given. A nil value
// encodes as an empty string and a list value produces one pair per element.
func Encode(params Params, opts ...Option) (string, error) {
	o, err := newOptions(false, opts)
	if err != nil {
		return "", err
	}
	return encode(params, o)
}

func encode(params Params, o *options) (string, error) {
	if len(params) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var pairs []string
	for _, k := range keys {
		values, err := params[k].resolve()
		if err != nil {
			return "", err
		}

		key := k
		if o.encodeKeys {
			if key, err = o.transcode(key); err != nil {
				return "", err
			}
		}
		key = Quote(key, "/")

		for _, v := range values {
			if v, err = o.transcode(v); err != nil {
				return "", err
			}
			pairs = append(pairs, key+"="+QuotePlus(v))
		}
	}
	return strings.Join(pairs, "&"), nil
}
