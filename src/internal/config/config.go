package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	zerrors "github.com/maksimkurb/zlog/src/internal/errors"
)

// LoadConfig reads a TOML file on top of Default. Keys missing from the file
// keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, zerrors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerrors.NewConfigError(fmt.Sprintf("configuration file not found: %s", configFile), err)
		}
		return nil, zerrors.NewConfigError("failed to read config file", err)
	}

	config, err := ParseConfig(content)
	if err != nil {
		return nil, err
	}
	config.absConfigFilePath = configFile

	return config, nil
}

// ParseConfig decodes TOML content on top of Default.
func ParseConfig(content []byte) (*Config, error) {
	config := Default()
	if err := toml.Unmarshal(content, config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, zerrors.NewConfigError(
				fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), derr)
		}
		return nil, zerrors.NewConfigError("failed to parse config file", err)
	}
	return config, nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// WriteConfig writes the configuration to path, creating parent directories.
func (c *Config) WriteConfig(path string) error {
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerrors.NewConfigError("failed to create parent directory", err)
	}
	if err := os.WriteFile(path, config.Bytes(), 0644); err != nil {
		return zerrors.NewConfigError("failed to write config file", err)
	}
	return nil
}
