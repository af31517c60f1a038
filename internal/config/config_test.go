package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TARGET_DIR", "")

	cfg := Load()
	if cfg.TargetDir != "target" {
		t.Errorf("default TargetDir: expected %q, got %q", "target", cfg.TargetDir)
	}
	if cfg.OutDir != "res" {
		t.Errorf("default OutDir: expected %q, got %q", "res", cfg.OutDir)
	}
	if cfg.StepTimeout <= 0 {
		t.Error("default StepTimeout must be positive")
	}
}

func TestLoadTargetDirOverride(t *testing.T) {
	t.Setenv("TARGET_DIR", "/tmp/custom-target")

	cfg := Load()
	if cfg.TargetDir != "/tmp/custom-target" {
		t.Errorf("TARGET_DIR override ignored, got %q", cfg.TargetDir)
	}
}
