package config

import (
	"fmt"
	"os"
	"strings"

	"restkit/internal/deprecation"
	"restkit/internal/uri"

	"github.com/joho/godotenv"
)

type config struct {
	charset    string
	safeChars  string
	encodeKeys bool

	proxyPrefix string

	logLevel  string
	logFormat string

	noColor bool

	retired []deprecation.Field
}

var retiredSafe = deprecation.Field{
	Name:    "SAFE",
	Message: "use SAFE_CHARS instead",
}

func parse() (*config, error) {
	charset := getenv("CHARSET", uri.DefaultCharset)
	if !uri.ValidCharset(charset) {
		return nil, fmt.Errorf("invalid CHARSET value %q", charset)
	}

	var retired []deprecation.Field
	safeChars, usedRetired := parseSafeChars()
	if usedRetired {
		retired = append(retired, retiredSafe)
	}

	encodeKeys := getenvBool("ENCODE_KEYS", true)

	proxyPrefix := getenv("PROXY_PREFIX", "")
	if proxyPrefix != "" && !strings.HasPrefix(proxyPrefix, "/") {
		return nil, fmt.Errorf("PROXY_PREFIX must start with /")
	}

	logLevel := strings.ToLower(getenv("LOG_LEVEL", "info"))
	logFormat, err := parseLogFormat()
	if err != nil {
		return nil, err
	}

	noColor := getenvBool("NO_COLOR", false)

	return &config{
		charset:     charset,
		safeChars:   safeChars,
		encodeKeys:  encodeKeys,
		proxyPrefix: proxyPrefix,
		logLevel:    logLevel,
		logFormat:   logFormat,
		noColor:     noColor,
		retired:     retired,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

// parseSafeChars reads SAFE_CHARS, falling back to the retired SAFE key.
// An empty value is meaningful: nothing beyond the unreserved set is safe.
func parseSafeChars() (string, bool) {
	if v, ok := os.LookupEnv("SAFE_CHARS"); ok {
		return v, false
	}
	if v, ok := os.LookupEnv("SAFE"); ok {
		return v, true
	}
	return uri.DefaultSafe, false
}

func parseLogFormat() (string, error) {
	switch format := strings.ToLower(getenv("LOG_FORMAT", "console")); format {
	case "console", "json":
		return format, nil
	default:
		return "", fmt.Errorf("invalid LOG_FORMAT value")
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
