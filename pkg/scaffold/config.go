package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the working directory first, then in the
// user's home directory. A missing file means defaults.
const ConfigFileName = ".spinup.yml"

// Packages declares the dependency groups installed into the generated
// project. Each styling group is one installer invocation.
type Packages struct {
	State   []string   `yaml:"state,omitempty" json:"state,omitempty" jsonschema:"description=State-management packages"`
	Routing []string   `yaml:"routing,omitempty" json:"routing,omitempty" jsonschema:"description=Routing packages"`
	Styling [][]string `yaml:"styling,omitempty" json:"styling,omitempty" jsonschema:"description=UI-styling package groups; each group is one installer invocation"`
}

// Config holds the optional user-level defaults for scaffold runs.
// Command-line flags override config values; config overrides built-ins.
type Config struct {
	ParentDir      string   `yaml:"parent_dir,omitempty" json:"parent_dir,omitempty" jsonschema:"description=Directory the finished project is moved under"`
	PackageManager string   `yaml:"package_manager,omitempty" json:"package_manager,omitempty" jsonschema:"enum=yarn,enum=npm"`
	Template       string   `yaml:"template,omitempty" json:"template,omitempty" jsonschema:"enum=redux,enum=plain"`
	SkipFormat     bool     `yaml:"skip_format,omitempty" json:"skip_format,omitempty" jsonschema:"description=Skip the formatting configuration step"`
	Packages       Packages `yaml:"packages,omitempty" json:"packages,omitempty"`
}

// DefaultConfig returns the built-in defaults: yarn, the redux variant, and
// the standard dependency groups.
func DefaultConfig() *Config {
	return &Config{
		ParentDir:      ".",
		PackageManager: PackageManagerYarn,
		Template:       TemplateRedux,
		Packages: Packages{
			State:   []string{"@reduxjs/toolkit", "react-redux"},
			Routing: []string{"react-router-dom"},
			Styling: [][]string{
				{"sass"},
				{"bootstrap", "react-bootstrap"},
			},
		},
	}
}

// LoadConfig resolves the effective configuration: built-in defaults overlaid
// with the first config file found in the working directory, then $HOME.
func LoadConfig() (*Config, error) {
	paths := []string{ConfigFileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ConfigFileName))
	}
	return loadFirst(paths)
}

// loadFirst applies the first existing config file in paths on top of the
// defaults. Files after the first match are ignored.
func loadFirst(paths []string) (*Config, error) {
	cfg := DefaultConfig()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		var overlay Config
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		cfg.apply(&overlay)
		return cfg, nil
	}
	return cfg, nil
}

// apply overlays non-zero fields of overlay onto c.
func (c *Config) apply(overlay *Config) {
	if overlay.ParentDir != "" {
		c.ParentDir = overlay.ParentDir
	}
	if overlay.PackageManager != "" {
		c.PackageManager = overlay.PackageManager
	}
	if overlay.Template != "" {
		c.Template = overlay.Template
	}
	if overlay.SkipFormat {
		c.SkipFormat = true
	}
	if len(overlay.Packages.State) > 0 {
		c.Packages.State = overlay.Packages.State
	}
	if len(overlay.Packages.Routing) > 0 {
		c.Packages.Routing = overlay.Packages.Routing
	}
	if len(overlay.Packages.Styling) > 0 {
		c.Packages.Styling = overlay.Packages.Styling
	}
}
