package spec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ProjectFiles are the config file names looked up in a project
// directory, in order.
var ProjectFiles = []string{"neighborhood.yaml", "neighborhood.yml", "neighborhood.toml"}

// Load reads a config from a YAML or TOML file, chosen by extension.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes config data. ext selects the format (".toml" for TOML,
// anything else for YAML).
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	return &cfg, nil
}

// FindProjectFile returns the config file inside projectDir, or "" if the
// directory holds none.
func FindProjectFile(projectDir string) (string, error) {
	info, err := os.Stat(projectDir)
	if err != nil {
		return "", fmt.Errorf("opening project: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project path %s is not a directory", projectDir)
	}
	for _, name := range ProjectFiles {
		p := filepath.Join(projectDir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", p, err)
		}
	}
	return "", nil
}

// LoadProject loads the config from a project directory. A directory
// without a config file yields the defaults.
func LoadProject(projectDir string) (*Config, error) {
	path, err := FindProjectFile(projectDir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	return Load(path)
}
