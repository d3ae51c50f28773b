//go:build !release

package config

const defaultMode = ModeDebug
