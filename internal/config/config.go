// Package config loads the YAML project configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is where a project keeps its configuration.
const DefaultFileName = "reqtrace.yaml"

// Storage backends.
const (
	BackendGit    = "git"
	BackendSQLite = "sqlite"
)

// Config is the project configuration.
//
//	project:
//	  name: Flight Software
//	author:
//	  name: ReqTrace User
//	  email: user@reqtrace.local
//	storage:
//	  backend: git
//	  path: ./flight-software
//	projects:
//	  - P1
//	  - P2
type Config struct {
	Project struct {
		Name string `yaml:"name"`
	} `yaml:"project"`
	Author struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"author"`
	Storage struct {
		// Backend is "git" (plain files + git history) or "sqlite"
		// (single database file).
		Backend string `yaml:"backend"`
		// Path is the project directory for git, the database file for
		// sqlite.
		Path string `yaml:"path"`
	} `yaml:"storage"`
	// Projects lists the known project IDs used for link visibility
	// scoping. Purely declarative; the engine accepts unlisted IDs too.
	Projects []string `yaml:"projects"`
}

// Default returns a configuration with the git backend rooted at path.
func Default(path string) Config {
	var c Config
	c.Storage.Backend = BackendGit
	c.Storage.Path = path
	return c
}

// Load reads and validates a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Save writes the configuration to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration shape.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendGit, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}
	return nil
}
