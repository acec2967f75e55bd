package uri

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringerID int

func (s stringerID) String() string { return "id-" + string(rune('0'+int(s))) }

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		segments []string
		params   Params
		opts     []Option
		expected string
	}{
		{
			name:     "base only",
			base:     "http://x",
			expected: "http://x",
		},
		{
			name:     "base with trailing slash and nothing else",
			base:     "http://x/",
			expected: "http://x/",
		},
		{
			name:     "base trailing slash is not doubled",
			base:     "http://x/",
			segments: []string{"a"},
			expected: "http://x/a",
		},
		{
			name:     "last segment without trailing slash",
			base:     "http://x",
			segments: []string{"a/", "b"},
			expected: "http://x/a/b",
		},
		{
			name:     "last segment with trailing slash",
			base:     "http://x",
			segments: []string{"a/", "b/"},
			expected: "http://x/a/b/",
		},
		{
			name:     "only the last segment decides",
			base:     "http://x",
			segments: []string{"a", "b/", "c"},
			expected: "http://x/a/b/c",
		},
		{
			name:     "surrounding slashes are stripped",
			base:     "http://x",
			segments: []string{"/a/", "//b"},
			expected: "http://x/a/b",
		},
		{
			name:     "empty segments are skipped",
			base:     "http://x",
			segments: []string{"", "/", "a/", "//"},
			expected: "http://x/a/",
		},
		{
			name:     "single slash does not set trailing slash",
			base:     "http://x",
			segments: []string{"a", "/"},
			expected: "http://x/a",
		},
		{
			name:     "inner slashes and colons stay",
			base:     "http://x",
			segments: []string{"a/b:c"},
			expected: "http://x/a/b:c",
		},
		{
			name:     "spaces and unicode in segments",
			base:     "http://x",
			segments: []string{"hello world", "café"},
			expected: "http://x/hello%20world/caf%C3%A9",
		},
		{
			name:     "custom safe set",
			base:     "http://x",
			segments: []string{"a/b:c"},
			opts:     []Option{WithSafe("")},
			expected: "http://x/a%2Fb%3Ac",
		},
		{
			name:     "query only",
			base:     "http://x",
			params:   Params{"k": Scalar("v 1")},
			expected: "http://x?k=v+1",
		},
		{
			name:     "path and query",
			base:     "http://x/",
			segments: []string{"users", "42"},
			params:   Params{"b": Scalar(2), "a": Scalar("1")},
			expected: "http://x/users/42?a=1&b=2",
		},
		{
			name:     "keys are encoded by default",
			base:     "http://x",
			params:   Params{"a key": Scalar("v")},
			expected: "http://x?a%20key=v",
		},
		{
			name:     "keys still quoted without key transcoding",
			base:     "http://x",
			params:   Params{"a key": Scalar("v")},
			opts:     []Option{WithEncodeKeys(false)},
			expected: "http://x?a%20key=v",
		},
		{
			name:     "latin1 keys transcoded by default",
			base:     "http://x",
			params:   Params{"é": Scalar("1")},
			opts:     []Option{WithCharset("latin1")},
			expected: "http://x?%E9=1",
		},
		{
			name:     "latin1 keys kept as utf-8 without key transcoding",
			base:     "http://x",
			params:   Params{"é": Scalar("1")},
			opts:     []Option{WithCharset("latin1"), WithEncodeKeys(false)},
			expected: "http://x?%C3%A9=1",
		},
		{
			name:     "latin1 charset",
			base:     "http://x",
			segments: []string{"café"},
			params:   Params{"q": Scalar("é")},
			opts:     []Option{WithCharset("latin1")},
			expected: "http://x/caf%E9?q=%E9",
		},
		{
			name:     "empty params add no question mark",
			base:     "http://x",
			params:   Params{},
			expected: "http://x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.base, tt.segments, tt.params, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildBaseUnchanged(t *testing.T) {
	for _, base := range []string{"", "http://x", "https://example.com/api", "relative/path", "http://x?already=1"} {
		got, err := Build(base, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, base, got)
	}
}

func TestBuildQueryRoundTrip(t *testing.T) {
	got, err := Build("http://x", nil, Params{"k": Scalar("v 1")})
	require.NoError(t, err)
	assert.NotContains(t, got, "%20")

	_, query, found := strings.Cut(got, "?")
	require.True(t, found)
	values, err := url.ParseQuery(query)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"k": {"v 1"}}, values)
}

func TestBuildErrors(t *testing.T) {
	t.Run("unknown charset", func(t *testing.T) {
		_, err := Build("http://x", []string{"a"}, nil, WithCharset("no-such-charset"))
		assert.ErrorIs(t, err, ErrUnknownCharset)
	})

	t.Run("unstringable value", func(t *testing.T) {
		_, err := Build("http://x", nil, Params{"k": Scalar(struct{}{})})
		assert.ErrorIs(t, err, ErrUnsupportedValue)
	})

	t.Run("text outside charset", func(t *testing.T) {
		_, err := Build("http://x", []string{"日本"}, nil, WithCharset("latin1"))
		assert.Error(t, err)
	})
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		opts     []Option
		expected string
	}{
		{
			name:     "nil params",
			expected: "",
		},
		{
			name:     "nil value encodes empty",
			params:   Params{"k": Scalar(nil)},
			expected: "k=",
		},
		{
			name:     "list value repeats the key",
			params:   Params{"tag": List("a", "b c", 3)},
			expected: "tag=a&tag=b+c&tag=3",
		},
		{
			name:     "empty list emits nothing",
			params:   Params{"tag": List()},
			expected: "",
		},
		{
			name:     "lazy value",
			params:   Params{"ts": Lazy(func() any { return 12345 })},
			expected: "ts=12345",
		},
		{
			name:     "lazy nil",
			params:   Params{"ts": Lazy(func() any { return nil })},
			expected: "ts=",
		},
		{
			name: "scalar kinds",
			params: Params{
				"a": Scalar(true),
				"b": Scalar(1.5),
				"c": Scalar(uint8(7)),
				"d": Scalar([]byte("raw")),
				"e": Scalar(stringerID(3)),
				"f": Scalar(errors.New("boom")),
			},
			expected: "a=true&b=1.5&c=7&d=raw&e=id-3&f=boom",
		},
		{
			name:     "reserved characters in values",
			params:   Params{"q": Scalar("a&b=c/d?~")},
			expected: "q=a%26b%3Dc%2Fd%3F~",
		},
		{
			name:     "keys quoted by default",
			params:   Params{"a/b c": Scalar("v")},
			expected: "a/b%20c=v",
		},
		{
			name:     "reserved characters in keys",
			params:   Params{"a&b": Scalar("1"), "c=d": Scalar("2")},
			expected: "a%26b=1&c%3Dd=2",
		},
		{
			name:     "keys transcoded on request",
			params:   Params{"é": Scalar("v")},
			opts:     []Option{WithCharset("latin1"), WithEncodeKeys(true)},
			expected: "%E9=v",
		},
		{
			name:     "url values",
			params:   FromValues(url.Values{"x": {"1", "2"}}),
			expected: "x=1&x=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.params, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEncodeLazyCalledOnce(t *testing.T) {
	calls := 0
	params := Params{"n": Lazy(func() any {
		calls++
		return calls
	})}

	got, err := Encode(params)
	require.NoError(t, err)
	assert.Equal(t, "n=1", got)
	assert.Equal(t, 1, calls)
}

func TestEncodeUnsupportedInList(t *testing.T) {
	_, err := Encode(Params{"k": List("ok", map[string]int{})})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
	assert.Contains(t, err.Error(), "map[string]int")
}

func TestValueKind(t *testing.T) {
	assert.Equal(t, KindScalar, Scalar(1).Kind())
	assert.Equal(t, KindList, List(1).Kind())
	assert.Equal(t, KindLazy, Lazy(nil).Kind())
	assert.Equal(t, KindList, Strings("a").Kind())
}

func TestBuildKeysStayASCII(t *testing.T) {
	params := Params{"a&b": Scalar("1"), "é k": Scalar("2")}
	for _, encodeKeys := range []bool{true, false} {
		got, err := Build("http://x", nil, params, WithEncodeKeys(encodeKeys))
		require.NoError(t, err)

		for i := 0; i < len(got); i++ {
			assert.Truef(t, got[i] > ' ' && got[i] < 0x7f, "byte %q at %d in %q", got[i], i, got)
		}

		u, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, url.Values{"a&b": {"1"}, "é k": {"2"}}, u.Query())
	}
}
