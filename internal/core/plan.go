package core

import (
	"path/filepath"

	"wasmci/internal/config"
)

// Contract is one workspace member we build artifacts for.
type Contract struct {
	Name     string `yaml:"name"`               // crate name (e.g. "adder")
	Metadata bool   `yaml:"metadata,omitempty"` // also extract the contract metadata JSON
}

// DefaultContracts is the plan used when no pipeline.yaml is present:
// the example workspace with its two contracts.
func DefaultContracts() []Contract {
	return []Contract{
		{Name: "adder", Metadata: true},
		{Name: "delegator"},
	}
}

// Plan builds the default wasm pipeline for a workspace:
//
//  1. install the cargo-near helper CLI from the local path
//  2. compile every workspace member to wasm32-unknown-unknown (release)
//  3. extract metadata JSON for each contract that wants it, run from
//     inside that contract's directory
//
// then copy the .wasm binaries and metadata files into the output dir.
// Metadata runs after the build: no point describing code that does not
// compile.
func Plan(cfg config.Config, contracts []Contract) *Pipeline {
	steps := []Step{
		{
			Name: "install-cargo-near",
			Run:  "cargo install --path ./cargo-near",
			Dir:  cfg.WorkspaceDir,
		},
		{
			Name: "build-wasm",
			Run:  "cargo build --workspace --target wasm32-unknown-unknown --release",
			Dir:  cfg.WorkspaceDir,
			Env:  map[string]string{"RUSTFLAGS": "-C link-arg=-s"},
		},
	}

	for _, c := range contracts {
		if c.Metadata {
			steps = append(steps, Step{
				Name: "metadata-" + c.Name,
				Run:  "cargo near metadata",
				Dir:  filepath.Join(cfg.WorkspaceDir, c.Name),
			})
		}
	}

	artifacts := make([]ArtifactSpec, 0, len(contracts)*2)
	for _, c := range contracts {
		artifacts = append(artifacts, ArtifactSpec{
			Src: filepath.Join(cfg.TargetDir, "wasm32-unknown-unknown", "release", c.Name+".wasm"),
			Dst: filepath.Join(cfg.OutDir, c.Name+".wasm"),
		})
		if c.Metadata {
			artifacts = append(artifacts, ArtifactSpec{
				Src: filepath.Join(cfg.TargetDir, "near", c.Name, "metadata.json"),
				Dst: filepath.Join(cfg.OutDir, c.Name+"-metadata.json"),
			})
		}
	}

	return &Pipeline{
		Name:      "wasm-artifacts",
		Steps:     steps,
		Artifacts: artifacts,
	}
}
