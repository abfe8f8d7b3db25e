// CLAUDE:SUMMARY YAML + env configuration for the shopscan binary.
package main

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// config holds all shopscan configuration. Values come from an optional YAML
// file (SHOPSCAN_CONFIG) with environment variables taking precedence.
type config struct {
	Port     string `yaml:"port"`
	DataDir  string `yaml:"data_dir"`
	DBPath   string `yaml:"db_path"`
	ShotsDir string `yaml:"shots_dir"`

	Browser struct {
		Remote          string        `yaml:"remote"`
		RecycleInterval time.Duration `yaml:"recycle_interval"`
	} `yaml:"browser"`

	Lighthouse struct {
		Bin     string        `yaml:"bin"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"lighthouse"`

	Audit struct {
		RunTimeout time.Duration `yaml:"run_timeout"`
	} `yaml:"audit"`

	MCPTransport string `yaml:"mcp_transport"`
	LogLevel     string `yaml:"log_level"`
}

func (c *config) defaults() {
	if c.Port == "" {
		c.Port = "8090"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	// Explicit paths win over the derived DataDir layout.
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, "audits.db")
	}
	if c.ShotsDir == "" {
		c.ShotsDir = filepath.Join(c.DataDir, "screenshots")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// loadConfig reads the YAML file if SHOPSCAN_CONFIG points at one, then
// applies environment overrides and defaults.
func loadConfig() (*config, error) {
	cfg := &config{}
	if path := os.Getenv("SHOPSCAN_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	overrideString(&cfg.Port, "PORT")
	overrideString(&cfg.DataDir, "DATA_DIR")
	overrideString(&cfg.DBPath, "AUDIT_DB")
	overrideString(&cfg.ShotsDir, "SHOTS_DIR")
	overrideString(&cfg.Browser.Remote, "BROWSER_REMOTE")
	overrideString(&cfg.Lighthouse.Bin, "LIGHTHOUSE_BIN")
	overrideString(&cfg.MCPTransport, "MCP_TRANSPORT")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")

	cfg.defaults()
	return cfg, nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
