package core

// Pipeline is one ordered build run. Steps execute strictly in order and
// artifacts are copied only after every step has succeeded.
type Pipeline struct {
	Name      string         `yaml:"name"`      // pipeline name (from pipeline.yaml)
	Steps     []Step         `yaml:"steps"`     // ordered external commands
	Artifacts []ArtifactSpec `yaml:"artifacts"` // copies performed after the last step
}

// Step is a single external command invocation (e.g. "cargo build ...").
// The working directory is explicit; nothing mutates the process cwd.
type Step struct {
	Name string            `yaml:"name"`          // step name (e.g. "build-wasm")
	Run  string            `yaml:"run"`           // command, executed via sh -c
	Dir  string            `yaml:"dir,omitempty"` // working directory for the command
	Env  map[string]string `yaml:"env,omitempty"` // extra environment for the command
}

// ArtifactSpec describes one artifact copy: source build output to its
// fixed destination filename.
type ArtifactSpec struct {
	Src string `yaml:"src"`
	Dst string `yaml:"dst"`
}

// Result is the outcome of a successful run: the artifact destinations,
// in copy order. Failures are reported through StepError / CopyError.
type Result struct {
	Pipeline  string
	Artifacts []string
}
