package version

import "fmt"

var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("restkit %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func GetShortVersion() string {
	return Version
}

// UserAgent is the product token restkit reports, e.g. "restkit/v1.2.0".
func UserAgent() string {
	return "restkit/" + GetShortVersion()
}
