// Package config handles configuration file parsing and validation for zlog.
//
// The configuration is read once at startup, optionally overridden from
// ZLOG_* environment variables, validated, and then turned into immutable
// log.Options. Nothing in this package is consulted after the logger is
// built.
//
// # Configuration Structure
//
// The configuration file defines:
//   - General settings (build mode, global disable, test mode)
//   - Minimum severities for debug and release mode
//   - Output settings (timestamps, color, trace label style, stream routing)
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/zlog.toml")
//	if err != nil {
//	    return err
//	}
//	cfg.ApplyEnv()
//	if err := cfg.ValidateConfig(); err != nil {
//	    return err
//	}
//	logger := log.New(cfg.Options(isatty.IsTerminal(os.Stdout.Fd())))
//
// Missing keys keep their defaults, so an empty file is a valid
// configuration.
package config
