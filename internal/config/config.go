package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config file names, in lookup order
const (
	JSONFile = "rustgen.json"
	TOMLFile = "rustgen.toml"
	YAMLFile = "rustgen.yaml"
)

// FileNames lists the config file names searched in every directory
var FileNames = []string{JSONFile, TOMLFile, YAMLFile}

// Config represents a rustgen project configuration
type Config struct {
	Name     string `json:"name" toml:"name" yaml:"name"`
	Language string `json:"language" toml:"language" yaml:"language"`
	Schema   string `json:"schema" toml:"schema" yaml:"schema"`
	// SchemaVersion is a semver constraint the schema metadata version must satisfy
	SchemaVersion string       `json:"schemaVersion,omitempty" toml:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty"`
	Output        OutputConfig `json:"output" toml:"output" yaml:"output"`
	Watch         WatchConfig  `json:"watch" toml:"watch" yaml:"watch"`
}

// OutputConfig controls the generated file
type OutputConfig struct {
	Path       string   `json:"path" toml:"path" yaml:"path"`
	Module     string   `json:"module" toml:"module" yaml:"module"`
	Derives    []string `json:"derives,omitempty" toml:"derives,omitempty" yaml:"derives,omitempty"`
	NoComments bool     `json:"noComments,omitempty" toml:"noComments,omitempty" yaml:"noComments,omitempty"`
}

// WatchConfig contains the patterns used by `rustgen watch`
type WatchConfig struct {
	Patterns []string `json:"patterns" toml:"patterns" yaml:"patterns"`
	Exclude  []string `json:"exclude" toml:"exclude" yaml:"exclude"`
}

// Default returns the configuration written by `rustgen init`
func Default(name string) *Config {
	c := &Config{Name: name}
	c.applyDefaults()
	return c
}

// Load searches for a config file in the current directory and its
// parents. It returns the config and the directory it was found in.
func Load() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFromDir(dir)
}

// LoadFromDir searches startDir and its parents for a config file
func LoadFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		for _, name := range FileNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				config, err := LoadFromPath(configPath)
				if err != nil {
					return nil, "", err
				}
				return config, dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("%w in %s or any parent directory", ErrConfigNotFound, startDir)
}

// LoadFromPath loads a config file, choosing the decoder by extension
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	config.applyDefaults()
	return &config, nil
}

// Encode serializes the config in the format implied by the extension of
// path: TOML for .toml, YAML for .yaml and .yml, JSON otherwise.
func (c *Config) Encode(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		data, err = toml.Marshal(c)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Save writes the config to path. An existing file is never overwritten.
func (c *Config) Save(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := c.Encode(path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Resolve makes a config-relative path absolute against the project dir
func Resolve(projectDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}

func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = "rust"
	}
	if c.Schema == "" {
		c.Schema = "./schema.rgen.gql"
	}
	if c.Output.Path == "" {
		c.Output.Path = "./src/generated.rs"
	}
	if c.Output.Module == "" {
		c.Output.Module = moduleName(c.Name)
	}
	if len(c.Watch.Patterns) == 0 {
		c.Watch.Patterns = []string{"*" + schemaSuffix(c.Schema), "**/*" + schemaSuffix(c.Schema)}
	}
	if len(c.Watch.Exclude) == 0 {
		c.Watch.Exclude = []string{".git", "target", "node_modules"}
	}
}

// schemaSuffix returns ".rgen.gql" for "./api/schema.rgen.gql": everything
// from the first dot of the file name.
func schemaSuffix(schemaPath string) string {
	base := filepath.Base(schemaPath)
	if i := strings.Index(base, "."); i > 0 {
		return base[i:]
	}
	return base
}

func moduleName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == '-' || r == ' ' || r == '.':
			return '_'
		}
		return -1
	}, name)
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return "types"
	}
	return name
}
