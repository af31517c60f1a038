package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
)

func serverURL() string {
	if v := os.Getenv("WASMCI_SERVER"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  cli submit <pipeline.yaml>")
	fmt.Println("  cli status <pipeline-id>")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}

	command := os.Args[1]
	switch command {
	case "submit":
		pipelinePath := os.Args[2]

		data, err := os.ReadFile(pipelinePath)
		if err != nil {
			fmt.Println("❌ Failed to read pipeline file:", err)
			os.Exit(1)
		}

		resp, err := http.Post(serverURL()+"/pipelines", "application/x-yaml", bytes.NewBuffer(data))
		if err != nil {
			fmt.Println("❌ Failed to send request:", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		fmt.Println("✅ Server response:", string(body))

	case "status":
		id := os.Args[2]

		resp, err := http.Get(serverURL() + "/pipelines/" + id)
		if err != nil {
			fmt.Println("❌ Failed to send request:", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		fmt.Println(string(body))

	default:
		usage()
	}
}
