package app

import (
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem layout.
type Paths struct {
	Home     string // base directory, OMNIKIT_HOME or .omnikit
	Assets   string // script fragment root
	Settings string // settings.yml
}

// ResolvePaths builds the layout from OMNIKIT_HOME. The asset root can be
// pinned independently with OMNIKIT_ASSETS, which stand-alone installs use
// to point at the bundled scripts.
func ResolvePaths() Paths {
	home := os.Getenv("OMNIKIT_HOME")
	if home == "" {
		home = ".omnikit"
	}

	assets := os.Getenv("OMNIKIT_ASSETS")
	if assets == "" {
		assets = filepath.Join(home, "assets")
	}

	return Paths{
		Home:     home,
		Assets:   assets,
		Settings: filepath.Join(home, "settings.yml"),
	}
}
