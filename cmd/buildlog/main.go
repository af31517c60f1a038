package main

import (
	"fmt"
	"os"

	"wasmci/internal/history"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: buildlog <inspect|verify> [builds.jsonl]")
		os.Exit(1)
	}

	cmd := os.Args[1]
	path := "builds.jsonl"
	if len(os.Args) > 2 {
		path = os.Args[2]
	}

	ledger, err := history.Open(path)
	if err != nil {
		fmt.Printf("Failed to open build history: %v\n", err)
		os.Exit(1)
	}

	switch cmd {

	case "inspect":
		for _, r := range ledger.Records() {
			fmt.Printf("Index=%d Pipeline=%s Step=%s Hash=%s Artifacts=%d\n",
				r.Index, r.Pipeline, r.Step, r.Hash[:16], len(r.Artifacts))
		}

	case "verify":
		if err := ledger.Verify(); err != nil {
			fmt.Printf("❌ Verification FAILED: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Build history verification OK")

	default:
		fmt.Println("Unknown command:", cmd)
		os.Exit(1)
	}
}
