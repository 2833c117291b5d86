package omni

import (
	"omnikit/internal/app/config"
	"omnikit/internal/bridge"
)

// Fragment paths consumed by the command layer. Serializers emit the JSON
// object shapes the types in this package decode.
const (
	taskSerializerFragment    = "serializers/task.applescript"
	projectSerializerFragment = "serializers/project.applescript"
	folderSerializerFragment  = "serializers/folder.applescript"
	tagSerializerFragment     = "serializers/tag.applescript"
)

// Client issues domain operations through the bridge. It owns nothing but
// wiring: a runner, the shared fragment loader, and the batch engine.
type Client struct {
	runner bridge.Runner
	assets *bridge.AssetLoader
	engine *bridge.BatchEngine
}

// NewClient wires a client from explicit parts. Tests pass a fake runner
// and a memfs-backed loader.
func NewClient(runner bridge.Runner, assets *bridge.AssetLoader, chunkSize int) *Client {
	return &Client{
		runner: runner,
		assets: assets,
		engine: bridge.NewBatchEngine(runner, chunkSize),
	}
}

// NewClientFromConfig wires a production client from loaded configuration.
func NewClientFromConfig(cfg config.Config) *Client {
	runner := bridge.NewOsaRunner(cfg.OsascriptBin(), cfg.Timeout())
	assets := bridge.NewOsAssetLoader(cfg.AssetRoot())
	return NewClient(runner, assets, cfg.ChunkSize())
}

// composeJSON builds a structured-result program with the given serializer
// fragments.
func (c *Client) composeJSON(fragments []string, body string) (string, *bridge.StructuredError) {
	return bridge.ComposeJSON(c.assets, fragments, body)
}
