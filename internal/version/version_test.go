package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { SetBuildInfo(origVersion, origCommit, origDate) })
	SetBuildInfo(version, commit, date)
}

func TestGetInfo(t *testing.T) {
	withBuildInfo(t, "1.2.3-beta.1", "abcdef1234567", "2025-01-01")

	info, err := GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-beta.1", info.Version)
	assert.Equal(t, uint64(2), info.SemVer.Minor())
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestGetInfoInvalidVersion(t *testing.T) {
	withBuildInfo(t, "not-a-version", "unknown", "unknown")

	_, err := GetInfo()
	assert.Error(t, err)
	assert.Equal(t, "AssetTracker vnot-a-version (invalid version)", GetFormattedVersion())
	assert.Contains(t, GetDetailedVersion(), "error:")
}

func TestGetFormattedVersion(t *testing.T) {
	tests := []struct {
		name     string
		commit   string
		date     string
		expected string
	}{
		{"development build", "unknown", "unknown", "AssetTracker v0.1.0"},
		{"short commit", "abc", "unknown", "AssetTracker v0.1.0, commit abc"},
		{"release build", "abcdef1234567", "2025-01-01", "AssetTracker v0.1.0, commit abcdef1, built 2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, "0.1.0", tt.commit, tt.date)
			assert.Equal(t, tt.expected, GetFormattedVersion())
		})
	}
}

func TestGetDetailedVersion(t *testing.T) {
	withBuildInfo(t, "2.0.0-rc.1", "abcdef1", "2025-01-01")

	detailed := GetDetailedVersion()
	assert.Contains(t, detailed, "AssetTracker v2.0.0-rc.1")
	assert.Contains(t, detailed, "Git Commit: abcdef1")
	assert.Contains(t, detailed, "Prerelease: rc.1")
	assert.Contains(t, detailed, "Platform: ")
}

func TestIsDevelopment(t *testing.T) {
	withBuildInfo(t, "0.1.0", "unknown", "2025-01-01")
	assert.True(t, IsDevelopment())

	SetBuildInfo("0.1.0", "abcdef1", "2025-01-01")
	assert.False(t, IsDevelopment())
}
