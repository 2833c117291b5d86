package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathsDefaults(t *testing.T) {
	t.Setenv("OMNIKIT_HOME", "")
	t.Setenv("OMNIKIT_ASSETS", "")
	require.NoError(t, os.Unsetenv("OMNIKIT_HOME"))
	require.NoError(t, os.Unsetenv("OMNIKIT_ASSETS"))

	paths := ResolvePaths()
	assert.Equal(t, ".omnikit", paths.Home)
	assert.Equal(t, filepath.Join(".omnikit", "assets"), paths.Assets)
	assert.Equal(t, filepath.Join(".omnikit", "settings.yml"), paths.Settings)
}

func TestResolvePathsFromEnv(t *testing.T) {
	t.Setenv("OMNIKIT_HOME", "/var/lib/omnikit")
	t.Setenv("OMNIKIT_ASSETS", "/usr/share/omnikit/assets")

	paths := ResolvePaths()
	assert.Equal(t, "/var/lib/omnikit", paths.Home)
	assert.Equal(t, "/usr/share/omnikit/assets", paths.Assets)
	assert.Equal(t, filepath.Join("/var/lib/omnikit", "settings.yml"), paths.Settings)
}

func TestResolvePathsAssetsFollowHome(t *testing.T) {
	t.Setenv("OMNIKIT_HOME", "/home/u/.omnikit")
	t.Setenv("OMNIKIT_ASSETS", "")
	require.NoError(t, os.Unsetenv("OMNIKIT_ASSETS"))

	paths := ResolvePaths()
	assert.Equal(t, filepath.Join("/home/u/.omnikit", "assets"), paths.Assets)
}
