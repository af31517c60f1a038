package core

import (
	"path/filepath"
	"testing"

	"wasmci/internal/config"
)

func TestPlanTwoContracts(t *testing.T) {
	cfg := config.Default()
	p := Plan(cfg, []Contract{
		{Name: "adder", Metadata: true},
		{Name: "delegator"},
	})

	// install, build, then metadata for adder only
	wantSteps := []string{"install-cargo-near", "build-wasm", "metadata-adder"}
	if len(p.Steps) != len(wantSteps) {
		t.Fatalf("expected %d steps, got %d", len(wantSteps), len(p.Steps))
	}
	for i, name := range wantSteps {
		if p.Steps[i].Name != name {
			t.Errorf("step %d: expected %q, got %q", i, name, p.Steps[i].Name)
		}
	}

	// metadata step runs inside the contract directory
	if p.Steps[2].Dir != filepath.Join(".", "adder") {
		t.Errorf("metadata step dir: got %q", p.Steps[2].Dir)
	}

	wantDsts := []string{
		filepath.Join("res", "adder.wasm"),
		filepath.Join("res", "adder-metadata.json"),
		filepath.Join("res", "delegator.wasm"),
	}
	if len(p.Artifacts) != len(wantDsts) {
		t.Fatalf("expected %d artifacts, got %d", len(wantDsts), len(p.Artifacts))
	}
	for i, dst := range wantDsts {
		if p.Artifacts[i].Dst != dst {
			t.Errorf("artifact %d: expected dst %q, got %q", i, dst, p.Artifacts[i].Dst)
		}
	}

	wasmSrc := filepath.Join("target", "wasm32-unknown-unknown", "release", "adder.wasm")
	if p.Artifacts[0].Src != wasmSrc {
		t.Errorf("wasm source path: expected %q, got %q", wasmSrc, p.Artifacts[0].Src)
	}
	metaSrc := filepath.Join("target", "near", "adder", "metadata.json")
	if p.Artifacts[1].Src != metaSrc {
		t.Errorf("metadata source path: expected %q, got %q", metaSrc, p.Artifacts[1].Src)
	}
}

func TestPlanHonorsTargetDir(t *testing.T) {
	cfg := config.Default()
	cfg.TargetDir = "build-out"

	p := Plan(cfg, []Contract{{Name: "adder"}})
	want := filepath.Join("build-out", "wasm32-unknown-unknown", "release", "adder.wasm")
	if p.Artifacts[0].Src != want {
		t.Errorf("expected %q, got %q", want, p.Artifacts[0].Src)
	}
}
