package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())

	old := version
	t.Cleanup(func() { version = old })
	version = "v1.2.3"
	assert.Equal(t, "v1.2.3", GetVersion())
}

func TestBuildMetadata(t *testing.T) {
	oldCommit, oldDate := gitCommit, buildDate
	t.Cleanup(func() { gitCommit, buildDate = oldCommit, oldDate })

	buildDate = ""
	assert.Equal(t, "unknown", GetBuildDate())

	gitCommit = "abc123"
	buildDate = "2026-01-02T03:04:05Z"
	assert.Equal(t, "abc123", GetGitCommit())
	assert.Equal(t, "2026-01-02T03:04:05Z", GetBuildDate())
	assert.Contains(t, String(), "commit abc123")
}
