package config

import (
	"os"
	"time"
)

// Config carries every knob the pipeline needs. It is resolved once at
// startup and passed down explicitly, instead of reading environment
// variables in the middle of a run.
type Config struct {
	TargetDir    string        // build-output root of the compiler
	OutDir       string        // final artifact directory (res/)
	WorkspaceDir string        // directory the workspace build runs in
	HistoryPath  string        // append-only build history file (JSONL)
	LogDir       string        // step output logs
	KeyDir       string        // ed25519 signing keys for build records
	StepTimeout  time.Duration // per-step limit
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TargetDir:    "target",
		OutDir:       "res",
		WorkspaceDir: ".",
		HistoryPath:  "builds.jsonl",
		LogDir:       "logs",
		KeyDir:       "keys",
		StepTimeout:  5 * time.Minute,
	}
}

// Load resolves the configuration from the environment.
// TARGET_DIR overrides the compiler output root (default "target").
func Load() Config {
	cfg := Default()
	if v := os.Getenv("TARGET_DIR"); v != "" {
		cfg.TargetDir = v
	}
	return cfg
}
