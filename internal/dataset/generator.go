package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/draganm/zeroes/internal/utils"
)

// DefaultOutputPath is where downstream packages expect the intermediate result
const DefaultOutputPath = "/result/data"

// Config holds generator configuration
type Config struct {
	OutputPath string
	// Atomic stages the output in a temporary file and renames it over
	// OutputPath instead of truncating OutputPath in place
	Atomic bool
}

// Request describes a single dataset to generate
type Request struct {
	Count int
	Kind  Kind
}

// Result describes the file written by a successful generation
type Result struct {
	Path   string
	Size   int64
	SHA256 string
}

// Generator writes datasets to a single output file
type Generator struct {
	cfg *Config
}

// New creates a generator writing to cfg.OutputPath
func New(cfg *Config) (*Generator, error) {
	if cfg == nil || cfg.OutputPath == "" {
		return nil, errors.New("output path is required")
	}
	return &Generator{cfg: cfg}, nil
}

// Generate writes the requested dataset to the configured output path.
// The written file is read back and checked against the digest taken while
// writing it.
func (g *Generator) Generate(req Request) (*Result, error) {
	if req.Count < 0 {
		return nil, fmt.Errorf("%w, not %d", ErrNegativeCount, req.Count)
	}

	slog.Debug("Generating dataset",
		"path", g.cfg.OutputPath,
		"count", req.Count,
		"kind", req.Kind,
	)

	var fill func(io.Writer) error
	switch req.Kind {
	case KindVector:
		fill = func(w io.Writer) error {
			return writeVector(w, req.Count)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, req.Kind)
	}

	write := utils.WriteFile
	if g.cfg.Atomic {
		write = utils.WriteFileAtomic
	}

	wr, err := write(g.cfg.OutputPath, 0644, fill)
	if err != nil {
		return nil, &WriteError{Path: g.cfg.OutputPath, Err: err}
	}

	if err := g.verify(wr.SHA256); err != nil {
		return nil, &WriteError{Path: g.cfg.OutputPath, Err: err}
	}

	slog.Debug("Dataset written",
		"path", g.cfg.OutputPath,
		"bytes", wr.Size,
		"sha256", wr.SHA256,
	)

	return &Result{
		Path:   g.cfg.OutputPath,
		Size:   wr.Size,
		SHA256: wr.SHA256,
	}, nil
}

// verify checks the output against the digest computed while writing.
// Devices and pipes cannot be read back and are skipped.
func (g *Generator) verify(digest string) error {
	info, err := os.Stat(g.cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to stat output: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil
	}
	return utils.VerifyFileSHA256(g.cfg.OutputPath, digest)
}

// writeVector writes n ASCII zeroes separated by single spaces
func writeVector(w io.Writer, n int) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('0'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
