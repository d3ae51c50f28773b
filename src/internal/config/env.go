package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	zerrors "github.com/maksimkurb/zlog/src/internal/errors"
)

// Environment variables read by ApplyEnv.
const (
	EnvMode        = "ZLOG_MODE"
	EnvDisable     = "ZLOG_DISABLE"
	EnvTestMode    = "ZLOG_TEST_MODE"
	EnvMinDebug    = "ZLOG_MIN_DEBUG"
	EnvMinRelease  = "ZLOG_MIN_RELEASE"
	EnvTimestamp   = "ZLOG_TIMESTAMP"
	EnvColor       = "ZLOG_COLOR"
	EnvTraceDull   = "ZLOG_TRACE_DULL"
	EnvForceStdErr = "ZLOG_FORCE_STDERR"
)

// LoadEnvFile loads variables from a .env file into the process environment.
// Variables that are already set are not overridden.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return zerrors.NewConfigError("failed to load env file "+path, err)
	}
	return nil
}

// ApplyEnv overrides configuration values from ZLOG_* variables. Unset
// variables leave the current value; unparsable booleans are ignored.
func (c *Config) ApplyEnv() {
	c.General.Mode = getString(EnvMode, c.General.Mode)
	c.General.DisableLogging = getBool(EnvDisable, c.General.DisableLogging)
	c.General.TestMode = getBool(EnvTestMode, c.General.TestMode)
	c.Levels.MinDebug = getString(EnvMinDebug, c.Levels.MinDebug)
	c.Levels.MinRelease = getString(EnvMinRelease, c.Levels.MinRelease)
	c.Output.Timestamp = getBool(EnvTimestamp, c.Output.Timestamp)
	c.Output.Color = getString(EnvColor, c.Output.Color)
	c.Output.TraceDull = getBool(EnvTraceDull, c.Output.TraceDull)
	c.Output.ForceStdErr = getBool(EnvForceStdErr, c.Output.ForceStdErr)
}

func getString(key, fallback string) string {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return val
}

func getBool(key string, fallback bool) bool {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	valBool, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return valBool
}
