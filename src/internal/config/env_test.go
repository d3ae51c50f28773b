package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvMode, "release")
	t.Setenv(EnvTestMode, "true")
	t.Setenv(EnvMinRelease, "error")
	t.Setenv(EnvColor, "never")
	t.Setenv(EnvTraceDull, "0")
	t.Setenv(EnvTimestamp, "not-a-bool")

	config := Default()
	config.Output.Timestamp = true
	config.ApplyEnv()

	if config.General.Mode != ModeRelease {
		t.Errorf("Expected mode release, got %s", config.General.Mode)
	}
	if !config.General.TestMode {
		t.Error("Expected test mode from environment")
	}
	if config.Levels.MinRelease != "error" {
		t.Errorf("Expected min_release error, got %s", config.Levels.MinRelease)
	}
	if config.Output.Color != ColorNever {
		t.Errorf("Expected color never, got %s", config.Output.Color)
	}
	if config.Output.TraceDull {
		t.Error("Expected trace_dull to be disabled")
	}
	if !config.Output.Timestamp {
		t.Error("Expected unparsable boolean to keep the current value")
	}
	if config.Levels.MinDebug != "trace" {
		t.Errorf("Expected unset variable to keep the current value, got %s", config.Levels.MinDebug)
	}
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "ZLOG_FORCE_STDERR=true\nZLOG_MIN_DEBUG=info\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	// t.Setenv registers cleanup for variables the file sets.
	t.Setenv(EnvForceStdErr, "")
	os.Unsetenv(EnvForceStdErr)
	t.Setenv(EnvMinDebug, "warn")

	if err := LoadEnvFile(envFile); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}

	config := Default()
	config.ApplyEnv()

	if !config.Output.ForceStdErr {
		t.Error("Expected force_stderr from env file")
	}
	if config.Levels.MinDebug != "warn" {
		t.Errorf("Expected existing variable to win over env file, got %s", config.Levels.MinDebug)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Expected error for missing env file")
	}
}
