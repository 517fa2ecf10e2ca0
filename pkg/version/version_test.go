package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetVersion(t *testing.T) {
	t.Helper()

	oldVersion, oldCommit, oldDate := Version, Commit, Date
	Version, Commit, Date = "dev", "unknown", "unknown"

	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })
}

func TestApplyBuildInfo(t *testing.T) {
	resetVersion(t)

	applyBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
		},
	})

	assert.Equal(t, "v1.2.0", Version)
	assert.Equal(t, "abc123", Commit)
	assert.Equal(t, "2024-05-01T10:00:00Z", Date)
}

func TestApplyBuildInfo_DevelKeepsDefault(t *testing.T) {
	resetVersion(t)

	applyBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

	assert.Equal(t, "dev", Version)
	assert.Equal(t, "unknown", Commit)
}

func TestApplyBuildInfo_LdflagsWin(t *testing.T) {
	resetVersion(t)

	Version, Commit = "v9.9.9", "deadbeef"

	applyBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v1.0.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})

	assert.Equal(t, "v9.9.9", Version)
	assert.Equal(t, "deadbeef", Commit)
}
