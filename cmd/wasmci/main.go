package main

import (
	"fmt"
	"os"

	"wasmci/internal/config"
	"wasmci/internal/core"
)

func main() {
	cfg := config.Load()

	path := "pipeline.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// No pipeline.yaml means the default plan for the example workspace.
	var pipeline *core.Pipeline
	if _, err := os.Stat(path); os.IsNotExist(err) && len(os.Args) < 2 {
		pipeline = core.Plan(cfg, core.DefaultContracts())
	} else {
		p, err := core.LoadPipeline(path, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load pipeline: %v\n", err)
			os.Exit(1)
		}
		pipeline = p
	}

	runner := core.NewRunner(cfg)
	result, err := runner.RunPipeline(pipeline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ pipeline failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ artifacts:")
	for _, a := range result.Artifacts {
		fmt.Println("  ", a)
	}
}
