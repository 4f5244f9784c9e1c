package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the project configuration file searched for upwards from
// the working directory.
const ManifestName = "fieldgen.toml"

// Config is the decoded manifest.
type Config struct {
	Output   OutputConfig   `toml:"output"`
	Generate GenerateConfig `toml:"generate"`
	Dialect  DialectConfig  `toml:"dialect"`
}

// OutputConfig controls where and how generated scripts are written.
type OutputConfig struct {
	Dir       string `toml:"dir"`
	Extension string `toml:"extension"`
	Indent    int    `toml:"indent"`
	Tabs      bool   `toml:"tabs"`
}

// GenerateConfig controls the batch driver.
type GenerateConfig struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

// DialectConfig overrides the literal pieces of the emitted dialect.
type DialectConfig struct {
	Container     string `toml:"container"`
	DefaultReturn string `toml:"default_return"`
}

// Manifest is a located and decoded fieldgen.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Dir:       ".",
			Extension: ".lua",
			Indent:    4,
		},
		Dialect: DialectConfig{
			Container:     "EntityContainer",
			DefaultReturn: "return 0",
		},
	}
}

// FindManifest walks from startDir to the filesystem root looking for
// ManifestName.
func FindManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the manifest. Without a manifest it returns the
// defaults rooted at startDir and ok=false.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		root, absErr := filepath.Abs(startDir)
		if absErr != nil {
			return nil, false, absErr
		}
		return &Manifest{Root: root, Config: Default()}, false, nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes a manifest file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Output.Indent < 1 || c.Output.Indent > 16 {
		return fmt.Errorf("[output].indent must be between 1 and 16, got %d", c.Output.Indent)
	}
	if c.Output.Extension != "" && !strings.HasPrefix(c.Output.Extension, ".") {
		return fmt.Errorf("[output].extension must start with '.', got %q", c.Output.Extension)
	}
	if c.Generate.Jobs < 0 {
		return fmt.Errorf("[generate].jobs must not be negative, got %d", c.Generate.Jobs)
	}
	return nil
}

// OutputDir resolves [output].dir against the manifest root.
func (m *Manifest) OutputDir() string {
	dir := m.Config.Output.Dir
	if dir == "" {
		dir = "."
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.Root, filepath.FromSlash(dir))
}
