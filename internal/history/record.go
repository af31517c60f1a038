package history

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// ArtifactDigest is one produced artifact with its content checksum.
type ArtifactDigest struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
}

// Record is a tamper-evident entry in the build history: one per finished
// pipeline step, plus a final "artifacts" record for a completed run.
type Record struct {
	Index     int              `json:"index"`
	Timestamp string           `json:"timestamp"`
	Pipeline  string           `json:"pipeline"`
	Step      string           `json:"step"`
	LogPath   string           `json:"logPath,omitempty"`
	LogHash   string           `json:"logHash,omitempty"`
	Artifacts []ArtifactDigest `json:"artifacts,omitempty"`
	PrevHash  string           `json:"prevHash"`
	Hash      string           `json:"hash"`
	Signature string           `json:"signature"`
	PubKey    string           `json:"pubKey"`
}

// canonicalData returns the JSON bytes used to compute the record hash.
// It intentionally excludes Hash, Signature and PubKey.
func (r *Record) canonicalData() ([]byte, error) {
	view := struct {
		Index     int              `json:"index"`
		Timestamp string           `json:"timestamp"`
		Pipeline  string           `json:"pipeline"`
		Step      string           `json:"step"`
		LogPath   string           `json:"logPath,omitempty"`
		LogHash   string           `json:"logHash,omitempty"`
		Artifacts []ArtifactDigest `json:"artifacts,omitempty"`
		PrevHash  string           `json:"prevHash"`
	}{
		Index:     r.Index,
		Timestamp: r.Timestamp,
		Pipeline:  r.Pipeline,
		Step:      r.Step,
		LogPath:   r.LogPath,
		LogHash:   r.LogHash,
		Artifacts: r.Artifacts,
		PrevHash:  r.PrevHash,
	}
	return json.Marshal(view)
}

// ComputeHash calculates SHA256 over canonicalData
func (r *Record) ComputeHash() (string, error) {
	data, err := r.canonicalData()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// NewRecord constructs a record and computes its hash (no signature yet)
func NewRecord(index int, pipeline, step, logPath, logHash, prevHash string, artifacts []ArtifactDigest) (*Record, error) {
	rec := &Record{
		Index:     index,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Pipeline:  pipeline,
		Step:      step,
		LogPath:   logPath,
		LogHash:   logHash,
		Artifacts: artifacts,
		PrevHash:  prevHash,
	}

	h, err := rec.ComputeHash()
	if err != nil {
		return nil, fmt.Errorf("compute record hash: %w", err)
	}
	rec.Hash = h
	return rec, nil
}
