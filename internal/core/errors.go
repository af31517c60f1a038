package core

import "fmt"

// StepError reports the first failing pipeline step. The runner aborts the
// remaining steps and never reaches the artifact copies.
type StepError struct {
	Step   string // name of the failing step
	Output string // combined stdout+stderr of the command
	Err    error  // underlying process error (exit status, timeout)
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// CopyError reports a failed artifact copy: missing or unreadable source,
// or an unwritable destination.
type CopyError struct {
	Src string
	Dst string
	Err error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s -> %s: %v", e.Src, e.Dst, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }
