package awsconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	content := `[default]
region = us-west-2

[profile factory]
region = eu-central-1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"AWS_REGION", "AWS_DEFAULT_REGION", "AWS_PROFILE", "AWS_DEFAULT_PROFILE"} {
		t.Setenv(key, "")
	}
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "credentials"))
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t)
	ctx := context.Background()

	t.Run("default profile", func(t *testing.T) {
		cfg, err := Load(ctx, WithConfigFiles(path))
		require.NoError(t, err)
		assert.Equal(t, "us-west-2", cfg.Region)
	})

	t.Run("named profile", func(t *testing.T) {
		cfg, err := Load(ctx, WithConfigFiles(path), WithProfile("factory"))
		require.NoError(t, err)
		assert.Equal(t, "eu-central-1", cfg.Region)
	})

	t.Run("region override wins", func(t *testing.T) {
		cfg, err := Load(ctx, WithConfigFiles(path), WithProfile("factory"), WithRegion("ap-northeast-1"))
		require.NoError(t, err)
		assert.Equal(t, "ap-northeast-1", cfg.Region)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := Load(ctx, WithConfigFiles(path), WithProfile("missing"))
		assert.Error(t, err)
	})
}

func TestResolveRegion(t *testing.T) {
	clearEnv(t)
	empty := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(empty, []byte("[default]\n"), 0o600))

	region, err := ResolveRegion(context.Background(), "us-east-1", WithConfigFiles(empty))
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", region)

	region, err = ResolveRegion(context.Background(), "us-east-1", WithConfigFiles(writeConfig(t)))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", region)
}
