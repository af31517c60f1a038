package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LogStorage manages saving step output logs to files
type LogStorage struct {
	BaseDir string
}

// NewLogStorage creates a new log storage handler
func NewLogStorage(baseDir string) *LogStorage {
	return &LogStorage{BaseDir: baseDir}
}

// SaveLog saves the combined output of one pipeline step
func (ls *LogStorage) SaveLog(pipeline, step string, output string) (string, error) {
	// Ensure base directory exists
	if err := os.MkdirAll(ls.BaseDir, 0775); err != nil {
		return "", err
	}

	// Filename with timestamp for uniqueness
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_%s.log", sanitize(pipeline), sanitize(step), timestamp)
	filePath := filepath.Join(ls.BaseDir, filename)

	if err := os.WriteFile(filePath, []byte(output), 0644); err != nil {
		return "", err
	}
	return filePath, nil
}

// sanitize removes special characters from step names for filenames
func sanitize(name string) string {
	clean := ""
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' {
			clean += string(r)
		}
	}
	if clean == "" {
		return "step"
	}
	return clean
}
