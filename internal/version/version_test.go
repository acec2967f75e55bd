package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setBuildInfo(t *testing.T, version, commit, buildDate string) {
	t.Helper()
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})
	Version, Commit, BuildDate = version, commit, buildDate
}

func TestBuildInfo(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		commit    string
		buildDate string
		wantFull  string
		wantShort string
		wantAgent string
	}{
		{
			name:      "dev build",
			version:   "dev",
			commit:    "unknown",
			buildDate: "unknown",
			wantFull:  "restkit dev (commit: unknown, built: unknown)",
			wantShort: "dev",
			wantAgent: "restkit/dev",
		},
		{
			name:      "tagged release",
			version:   "v0.4.2",
			commit:    "9f1c2ab",
			buildDate: "2026-10-01",
			wantFull:  "restkit v0.4.2 (commit: 9f1c2ab, built: 2026-10-01)",
			wantShort: "v0.4.2",
			wantAgent: "restkit/v0.4.2",
		},
		{
			name:      "stripped ldflags",
			wantFull:  "restkit  (commit: , built: )",
			wantShort: "",
			wantAgent: "restkit/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuildInfo(t, tt.version, tt.commit, tt.buildDate)

			assert.Equal(t, tt.wantFull, GetVersion())
			assert.Equal(t, tt.wantShort, GetShortVersion())
			assert.Equal(t, tt.wantAgent, UserAgent())
		})
	}
}
