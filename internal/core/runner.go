package core

import (
	"crypto/ed25519"
	"fmt"
	"os"
	"time"

	"wasmci/internal/config"
	"wasmci/internal/history"
	"wasmci/internal/security"
	"wasmci/internal/storage"
	"wasmci/pkg/utils"
)

// Runner ties together Executor + storage + build history. Steps run
// strictly in order; the first failure aborts the run and the artifact
// copies never happen.
type Runner struct {
	Executor    *Executor
	LogStorage  *storage.LogStorage
	Ledger      *history.Ledger
	StepTimeout time.Duration

	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

func NewRunner(cfg config.Config) *Runner {
	// Build history is best-effort: a broken history file never fails a build.
	ledger, err := history.Open(cfg.HistoryPath)
	if err != nil {
		fmt.Printf("WARN: cannot open build history: %v\n", err)
	}

	pub, priv, err := security.EnsureKeyPair(cfg.KeyDir)
	if err != nil {
		fmt.Printf("WARN: cannot init signing keys: %v\n", err)
	}

	timeout := cfg.StepTimeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	return &Runner{
		Executor:    NewExecutor(),
		LogStorage:  storage.NewLogStorage(cfg.LogDir),
		Ledger:      ledger,
		StepTimeout: timeout,
		priv:        priv,
		pub:         pub,
	}
}

// RunPipeline executes all steps sequentially, then copies the artifacts.
func (r *Runner) RunPipeline(p *Pipeline) (*Result, error) {
	fmt.Printf("Starting pipeline: %s\n", p.Name)

	for i, step := range p.Steps {
		fmt.Printf("\n==> Step %d/%d: %s\n", i+1, len(p.Steps), step.Name)

		output, err := r.Executor.RunStep(step, r.StepTimeout)

		// Save log
		logPath, logErr := r.LogStorage.SaveLog(p.Name, step.Name, output)
		if logErr != nil {
			fmt.Printf("WARN: failed to save log: %v\n", logErr)
		}
		r.record(p.Name, step.Name, logPath, nil)

		if err != nil {
			// Surface the tool's own diagnostics before aborting.
			fmt.Fprint(os.Stderr, output)
			return nil, &StepError{Step: step.Name, Output: output, Err: err}
		}
		fmt.Println("  step ok")
	}

	// All steps passed; copy artifacts to their fixed destinations.
	dests := make([]string, 0, len(p.Artifacts))
	for _, a := range p.Artifacts {
		if err := CopyArtifact(a); err != nil {
			return nil, err
		}
		fmt.Printf("  copied %s -> %s\n", a.Src, a.Dst)
		dests = append(dests, a.Dst)
	}
	r.record(p.Name, "artifacts", "", digests(dests))

	fmt.Printf("\nPipeline %s finished successfully\n", p.Name)
	return &Result{Pipeline: p.Name, Artifacts: dests}, nil
}

// record appends one entry to the build history (best-effort; never
// blocks the pipeline when the history or keys are unavailable).
func (r *Runner) record(pipeline, step, logPath string, artifacts []history.ArtifactDigest) {
	if r.Ledger == nil || len(r.priv) == 0 {
		return
	}

	logHash := ""
	if logPath != "" {
		h, err := utils.HashFile(logPath)
		if err != nil {
			fmt.Printf("WARN: cannot hash log: %v\n", err)
		} else {
			logHash = h
		}
	}

	rec, err := history.NewRecord(r.Ledger.NextIndex(), pipeline, step, logPath, logHash, r.Ledger.LastHash(), artifacts)
	if err != nil {
		fmt.Printf("WARN: cannot create history record: %v\n", err)
		return
	}
	if err := r.Ledger.Append(rec, r.priv, r.pub); err != nil {
		fmt.Printf("WARN: cannot append history record: %v\n", err)
	}
}

func digests(paths []string) []history.ArtifactDigest {
	out := make([]history.ArtifactDigest, 0, len(paths))
	for _, p := range paths {
		sum, err := utils.HashFile(p)
		if err != nil {
			fmt.Printf("WARN: cannot hash artifact %s: %v\n", p, err)
			continue
		}
		out = append(out, history.ArtifactDigest{Path: p, SHA256: sum})
	}
	return out
}
