package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteResult describes a file written by WriteFile or WriteFileAtomic
type WriteResult struct {
	Size   int64
	SHA256 string
}

// WriteFile creates or truncates path and fills it in place. Symlinks are
// followed and an existing file keeps its mode and owner; perm only applies
// to newly created files.
func WriteFile(path string, perm os.FileMode, fill func(io.Writer) error) (*WriteResult, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	res, err := fillAndHash(f, fill)
	if err != nil {
		return nil, err
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	return res, nil
}

// WriteFileAtomic stages the content produced by fill in a temporary file
// next to destPath and moves it into place once everything was written.
// destPath is either left untouched or fully replaced, including a symlink
// at destPath itself.
func WriteFileAtomic(destPath string, perm os.FileMode, fill func(io.Writer) error) (result *WriteResult, err error) {
	tmpPath := filepath.Join(
		filepath.Dir(destPath),
		fmt.Sprintf(".%s-%s.tmp", filepath.Base(destPath), uuid.New().String()),
	)

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	closed := false
	defer func() {
		if !closed {
			f.Close()
		}
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	result, err = fillAndHash(f, fill)
	if err != nil {
		return nil, err
	}

	closed = true
	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	// OpenFile permissions are subject to umask
	if err = os.Chmod(tmpPath, perm); err != nil {
		return nil, fmt.Errorf("failed to set permissions: %w", err)
	}

	if err = os.Rename(tmpPath, destPath); err != nil {
		return nil, fmt.Errorf("failed to move file to destination: %w", err)
	}

	return result, nil
}

func fillAndHash(w io.Writer, fill func(io.Writer) error) (*WriteResult, error) {
	hasher := sha256.New()
	cw := &countingWriter{w: io.MultiWriter(w, hasher)}

	if err := fill(cw); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &WriteResult{
		Size:   cw.n,
		SHA256: hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

// countingWriter tracks how many bytes went through it
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
