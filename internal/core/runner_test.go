package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wasmci/internal/config"
	"wasmci/internal/history"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.TargetDir = filepath.Join(dir, "target")
	cfg.OutDir = filepath.Join(dir, "res")
	cfg.WorkspaceDir = dir
	cfg.HistoryPath = filepath.Join(dir, "builds.jsonl")
	cfg.LogDir = filepath.Join(dir, "logs")
	cfg.KeyDir = filepath.Join(dir, "keys")
	cfg.StepTimeout = time.Minute
	return cfg
}

func TestRunPipelineFailFast(t *testing.T) {
	cfg := testConfig(t)
	dir := cfg.WorkspaceDir

	// Step 2 fails; step 3 must never run and nothing may be copied.
	src := filepath.Join(dir, "out.bin")
	p := &Pipeline{
		Name: "failing",
		Steps: []Step{
			{Name: "one", Run: "touch one.ran", Dir: dir},
			{Name: "two", Run: "echo build error >&2; exit 1", Dir: dir},
			{Name: "three", Run: "touch three.ran", Dir: dir},
		},
		Artifacts: []ArtifactSpec{
			{Src: src, Dst: filepath.Join(cfg.OutDir, "out.bin")},
		},
	}

	runner := NewRunner(cfg)
	_, err := runner.RunPipeline(p)
	if err == nil {
		t.Fatal("expected pipeline to fail")
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %T", err)
	}
	if stepErr.Step != "two" {
		t.Errorf("expected failing step %q, got %q", "two", stepErr.Step)
	}

	if _, err := os.Stat(filepath.Join(dir, "one.ran")); err != nil {
		t.Error("step one should have run before the failure")
	}
	if _, err := os.Stat(filepath.Join(dir, "three.ran")); !os.IsNotExist(err) {
		t.Error("step three ran after a failing step")
	}
	if entries, _ := os.ReadDir(cfg.OutDir); len(entries) != 0 {
		t.Errorf("artifacts copied despite step failure: %v", entries)
	}
}

func TestRunPipelineSuccess(t *testing.T) {
	cfg := testConfig(t)
	dir := cfg.WorkspaceDir

	p := &Pipeline{
		Name: "ok",
		Steps: []Step{
			{Name: "compile", Run: "printf '\\0asm-adder' > adder.wasm", Dir: dir},
			{Name: "metadata", Run: `echo '{"name":"adder"}' > metadata.json`, Dir: dir},
		},
		Artifacts: []ArtifactSpec{
			{Src: filepath.Join(dir, "adder.wasm"), Dst: filepath.Join(cfg.OutDir, "adder.wasm")},
			{Src: filepath.Join(dir, "metadata.json"), Dst: filepath.Join(cfg.OutDir, "adder-metadata.json")},
		},
	}

	runner := NewRunner(cfg)
	result, err := runner.RunPipeline(p)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if len(result.Artifacts) != 2 {
		t.Fatalf("expected 2 artifacts, got %v", result.Artifacts)
	}

	for _, a := range result.Artifacts {
		info, err := os.Stat(a)
		if err != nil {
			t.Errorf("missing artifact %s: %v", a, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("artifact %s is empty", a)
		}
	}

	// Rerun is idempotent: same artifact set, still verifiable history.
	if _, err := runner.RunPipeline(p); err != nil {
		t.Fatalf("rerun failed: %v", err)
	}
	entries, err := os.ReadDir(cfg.OutDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("rerun left extra files in output dir: %v", entries)
	}
}

func TestRunPipelineRecordsHistory(t *testing.T) {
	cfg := testConfig(t)
	dir := cfg.WorkspaceDir

	p := &Pipeline{
		Name:  "recorded",
		Steps: []Step{{Name: "compile", Run: "echo built > a.txt", Dir: dir}},
		Artifacts: []ArtifactSpec{
			{Src: filepath.Join(dir, "a.txt"), Dst: filepath.Join(cfg.OutDir, "a.txt")},
		},
	}

	runner := NewRunner(cfg)
	if _, err := runner.RunPipeline(p); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	ledger, err := history.Open(cfg.HistoryPath)
	if err != nil {
		t.Fatalf("cannot reopen history: %v", err)
	}
	if err := ledger.Verify(); err != nil {
		t.Fatalf("history verification failed: %v", err)
	}

	recs := ledger.Records()
	// one per step plus the final artifacts record
	if len(recs) != 2 {
		t.Fatalf("expected 2 history records, got %d", len(recs))
	}
	last := recs[len(recs)-1]
	if last.Step != "artifacts" {
		t.Errorf("expected final artifacts record, got step %q", last.Step)
	}
	if len(last.Artifacts) != 1 || last.Artifacts[0].SHA256 == "" {
		t.Errorf("final record missing artifact digest: %+v", last.Artifacts)
	}
}

func TestRunPipelineCopyFailure(t *testing.T) {
	cfg := testConfig(t)
	dir := cfg.WorkspaceDir

	p := &Pipeline{
		Name:  "badcopy",
		Steps: []Step{{Name: "noop", Run: "true", Dir: dir}},
		Artifacts: []ArtifactSpec{
			{Src: filepath.Join(dir, "never-built.wasm"), Dst: filepath.Join(cfg.OutDir, "x.wasm")},
		},
	}

	runner := NewRunner(cfg)
	_, err := runner.RunPipeline(p)
	if err == nil {
		t.Fatal("expected copy failure")
	}
	var copyErr *CopyError
	if !errors.As(err, &copyErr) {
		t.Fatalf("expected *CopyError, got %T", err)
	}
}
