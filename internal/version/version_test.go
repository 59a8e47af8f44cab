package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFullVersion(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origCommit }()

	Version, GitCommit = "", "unknown"
	assert.Equal(t, "dev", GetVersion())
	assert.Equal(t, "dev", GetFullVersion())

	Version, GitCommit = "v0.3.0", "abc1234"
	assert.Equal(t, "v0.3.0-abc1234", GetFullVersion())
	assert.Equal(t, "v0.3.0", GetInfo().Version)
	assert.Equal(t, "2019-12-02", GetInfo().APIVersion)
}
