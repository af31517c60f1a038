package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"wasmci/internal/config"
	"wasmci/internal/core"
	"wasmci/internal/history"
	"wasmci/pkg/utils"
)

// Server accepts pipeline submissions over HTTP and runs them in-process.
// Runs are serialized: two pipelines never share the workspace at once.
type Server struct {
	cfg    config.Config
	runner *core.Runner

	mu     sync.Mutex
	status map[string]string
	nextID int

	runMu sync.Mutex // serializes pipeline execution
}

func NewServer(cfg config.Config) *Server {
	return &Server{
		cfg:    cfg,
		runner: core.NewRunner(cfg),
		status: make(map[string]string),
	}
}

// POST /pipelines -> submit a pipeline YAML and start it
func (s *Server) handleSubmitPipeline(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "cannot read body", http.StatusBadRequest)
		return
	}

	pipeline, err := core.ParsePipeline(data, s.cfg)
	if err != nil {
		http.Error(w, "invalid pipeline: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.nextID++
	id := fmt.Sprintf("p-%d", s.nextID)
	s.status[id] = "pending"
	s.mu.Unlock()

	go s.run(id, pipeline)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"id":     id,
		"status": "pending",
	})
}

func (s *Server) run(id string, pipeline *core.Pipeline) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.setStatus(id, "running")
	if _, err := s.runner.RunPipeline(pipeline); err != nil {
		var stepErr *core.StepError
		if errors.As(err, &stepErr) {
			s.setStatus(id, "failed: "+stepErr.Step)
		} else {
			s.setStatus(id, "failed: "+err.Error())
		}
		return
	}
	s.setStatus(id, "succeeded")
}

func (s *Server) setStatus(id, status string) {
	s.mu.Lock()
	s.status[id] = status
	s.mu.Unlock()
}

// GET /pipelines/{id} -> run status
func (s *Server) handleGetPipelineStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	status, ok := s.status[id]
	s.mu.Unlock()

	if !ok {
		http.Error(w, "pipeline not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"id": id, "status": status})
}

type artifactInfo struct {
	Name   string `json:"name"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// GET /artifacts -> list the output directory with checksums
func (s *Server) handleListArtifacts(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.cfg.OutDir)
	if err != nil {
		if os.IsNotExist(err) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]artifactInfo{})
			return
		}
		http.Error(w, "cannot read artifact dir: "+err.Error(), http.StatusInternalServerError)
		return
	}

	list := make([]artifactInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		sum, err := utils.HashFile(filepath.Join(s.cfg.OutDir, e.Name()))
		if err != nil {
			continue
		}
		list = append(list, artifactInfo{Name: e.Name(), Size: info.Size(), SHA256: sum})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /history/verify -> verify the build history chain
func (s *Server) handleVerifyHistory(w http.ResponseWriter, r *http.Request) {
	ledger, err := history.Open(s.cfg.HistoryPath)
	if err != nil {
		http.Error(w, "cannot open build history: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := ledger.Verify(); err != nil {
		http.Error(w, "history verification failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write([]byte("history verification ok"))
}

func main() {
	cfg := config.Load()
	s := NewServer(cfg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/pipelines", s.handleSubmitPipeline)
	r.Get("/pipelines/{id}", s.handleGetPipelineStatus)
	r.Get("/artifacts", s.handleListArtifacts)
	r.Get("/history/verify", s.handleVerifyHistory)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Println("wasmci server running on port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
