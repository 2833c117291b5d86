package bridge

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T) (*AssetLoader, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/assets/helpers/json.applescript", []byte("on encodeString(s)\nend encodeString\n"), 0o644))
	return NewAssetLoader(fs, "/assets"), fs
}

func TestAssetLoaderLoad(t *testing.T) {
	loader, _ := newTestLoader(t)

	content, err := loader.Load("helpers/json.applescript")
	require.NoError(t, err)
	assert.Contains(t, content, "encodeString")
}

func TestAssetLoaderLoadMissing(t *testing.T) {
	loader, _ := newTestLoader(t)

	_, err := loader.Load("helpers/nope.applescript")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "helpers/nope.applescript")
}

func TestAssetLoaderRejectsTraversal(t *testing.T) {
	loader, fs := newTestLoader(t)
	require.NoError(t, afero.WriteFile(fs, "/etc/passwd", []byte("root:x:0:0"), 0o644))

	for _, rel := range []string{
		"../../etc/passwd",
		"../assets-sibling/x.applescript",
		"helpers/../../secret",
	} {
		_, err := loader.Load(rel)
		require.Error(t, err, "path %q must fail closed", rel)
		assert.Contains(t, err.Error(), "escapes asset root")
	}
}

func TestAssetLoaderCache(t *testing.T) {
	loader, fs := newTestLoader(t)

	first, err := loader.LoadCached("helpers/json.applescript")
	require.NoError(t, err)

	// Mutate the backing file; the cache must keep serving the first read.
	require.NoError(t, afero.WriteFile(fs, "/assets/helpers/json.applescript", []byte("changed"), 0o644))

	second, err := loader.LoadCached("helpers/json.applescript")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	loader.ClearCache()
	third, err := loader.LoadCached("helpers/json.applescript")
	require.NoError(t, err)
	assert.Equal(t, "changed", third)
}

func TestAssetLoaderCacheMissNotPoisoned(t *testing.T) {
	loader, fs := newTestLoader(t)

	_, err := loader.LoadCached("serializers/task.applescript")
	require.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/assets/serializers/task.applescript", []byte("on serializeTask(t)\nend serializeTask\n"), 0o644))
	content, err := loader.LoadCached("serializers/task.applescript")
	require.NoError(t, err)
	assert.Contains(t, content, "serializeTask")
}
