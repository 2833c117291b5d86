package bridge

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// AssetLoader reads reusable script fragments (helpers, serializers) from a
// fixed root directory. Fragment identity is the relative path; content is
// cached for the process lifetime because most commands reuse the same one
// or two serializer fragments.
type AssetLoader struct {
	fs   afero.Fs
	root string

	mu    sync.Mutex
	cache map[string]string
}

// NewAssetLoader creates a loader over the given filesystem and root
// directory. Tests inject afero.NewMemMapFs.
func NewAssetLoader(fs afero.Fs, root string) *AssetLoader {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return &AssetLoader{
		fs:    fs,
		root:  abs,
		cache: make(map[string]string),
	}
}

// NewOsAssetLoader creates a loader over the real filesystem.
func NewOsAssetLoader(root string) *AssetLoader {
	return NewAssetLoader(afero.NewOsFs(), root)
}

// resolve maps a relative fragment path to an absolute path under the root.
// A path that escapes the root fails closed rather than being truncated.
func (l *AssetLoader) resolve(rel string) (string, error) {
	resolved := filepath.Join(l.root, filepath.FromSlash(rel))
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", err
	}
	if abs != l.root && !strings.HasPrefix(abs, l.root+string(filepath.Separator)) {
		return "", fmt.Errorf("asset path %q escapes asset root", rel)
	}
	return abs, nil
}

// Load reads a fragment from disk, bypassing the cache.
func (l *AssetLoader) Load(rel string) (string, error) {
	path, err := l.resolve(rel)
	if err != nil {
		return "", err
	}
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read script fragment %s: %w", rel, err)
	}
	return string(data), nil
}

// LoadCached reads a fragment through the process-wide cache, populating it
// on first successful read.
func (l *AssetLoader) LoadCached(rel string) (string, error) {
	l.mu.Lock()
	if content, ok := l.cache[rel]; ok {
		l.mu.Unlock()
		return content, nil
	}
	l.mu.Unlock()

	content, err := l.Load(rel)
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	l.cache[rel] = content
	l.mu.Unlock()
	return content, nil
}

// ClearCache drops every cached fragment. Primarily for tests.
func (l *AssetLoader) ClearCache() {
	l.mu.Lock()
	l.cache = make(map[string]string)
	l.mu.Unlock()
}
