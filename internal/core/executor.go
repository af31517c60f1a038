package core

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"
)

// Executor is responsible for running steps (external commands)
type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

// RunStep executes a single pipeline step and returns its combined output.
// The step's working directory and extra environment are applied to the
// command itself; the process-wide cwd is never touched.
func (e *Executor) RunStep(step Step, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Run the step in a shell (sh -c "cmd")
	cmd := exec.CommandContext(ctx, "sh", "-c", step.Run)
	if step.Dir != "" {
		cmd.Dir = step.Dir
	}
	if len(step.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range step.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return out.String(), err
}
