package build

import (
	"os"
	"path/filepath"
)

// DefaultTheme is the theme name used when no theme is requested and the
// fallback when a requested theme is missing.
const DefaultTheme = "default"

// Theme is a named stylesheet.
type Theme struct {
	Name string
	CSS  string
}

// ThemeResolver loads named stylesheets from the themes directory.
type ThemeResolver struct {
	Dir     string
	Default string
	Logger  Logger
}

// Load reads the stylesheet for name. An unknown name logs a warning and
// falls back to the default theme; a missing default theme is fatal so
// the build never silently produces unstyled output. The returned theme
// carries the name that was actually loaded.
func (t *ThemeResolver) Load(name string) (Theme, error) {
	logger := t.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	fallback := t.Default
	if fallback == "" {
		fallback = DefaultTheme
	}
	if name == "" {
		name = fallback
	}

	css, err := os.ReadFile(filepath.Join(t.Dir, name+".css"))
	if err == nil {
		return Theme{Name: name, CSS: string(css)}, nil
	}
	if name == fallback {
		return Theme{}, NewError(KindTheme, "default theme "+fallback+" is missing", err)
	}

	logger.Infof("theme %q not found, falling back to %q: %v", name, fallback, err)
	css, err = os.ReadFile(filepath.Join(t.Dir, fallback+".css"))
	if err != nil {
		return Theme{}, NewError(KindTheme, "default theme "+fallback+" is missing", err)
	}
	return Theme{Name: fallback, CSS: string(css)}, nil
}
