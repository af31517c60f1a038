package core

import (
	"io"
	"os"
	"path/filepath"
)

// CopyArtifact copies one build output to its destination, byte for byte.
// The destination directory is created if missing and an existing
// destination file is overwritten, so reruns stay idempotent.
func CopyArtifact(spec ArtifactSpec) error {
	src, err := os.Open(spec.Src)
	if err != nil {
		return &CopyError{Src: spec.Src, Dst: spec.Dst, Err: err}
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(spec.Dst), 0775); err != nil {
		return &CopyError{Src: spec.Src, Dst: spec.Dst, Err: err}
	}

	dst, err := os.Create(spec.Dst)
	if err != nil {
		return &CopyError{Src: spec.Src, Dst: spec.Dst, Err: err}
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return &CopyError{Src: spec.Src, Dst: spec.Dst, Err: err}
	}
	if err := dst.Close(); err != nil {
		return &CopyError{Src: spec.Src, Dst: spec.Dst, Err: err}
	}
	return nil
}
