package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wasmci/internal/config"
)

// File is the on-disk pipeline declaration. Either give explicit steps
// (and artifacts), or just a contracts list and let the default plan
// fill them in.
type File struct {
	Name      string         `yaml:"name"`
	Contracts []Contract     `yaml:"contracts,omitempty"`
	Steps     []Step         `yaml:"steps,omitempty"`
	Artifacts []ArtifactSpec `yaml:"artifacts,omitempty"`
}

// ParsePipeline parses YAML content into a runnable Pipeline.
func ParsePipeline(data []byte, cfg config.Config) (*Pipeline, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.resolve(cfg)
}

// LoadPipeline reads a pipeline.yaml and returns a runnable Pipeline.
func LoadPipeline(path string, cfg config.Config) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePipeline(data, cfg)
}

func (f *File) resolve(cfg config.Config) (*Pipeline, error) {
	if len(f.Steps) == 0 && len(f.Contracts) == 0 {
		return nil, fmt.Errorf("pipeline declares neither steps nor contracts")
	}

	// Explicit steps win over the generated plan.
	if len(f.Steps) > 0 {
		for i, s := range f.Steps {
			if s.Name == "" {
				return nil, fmt.Errorf("step %d has no name", i+1)
			}
			if s.Run == "" {
				return nil, fmt.Errorf("step %q has no run command", s.Name)
			}
		}
		name := f.Name
		if name == "" {
			name = "pipeline"
		}
		return &Pipeline{Name: name, Steps: f.Steps, Artifacts: f.Artifacts}, nil
	}

	p := Plan(cfg, f.Contracts)
	if f.Name != "" {
		p.Name = f.Name
	}
	return p, nil
}
