// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch converts several pose metadata files in one run, writing one
// ground-truth file per input into an output directory.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/gt-extractor/internal/pose"
	"github.com/pdiddy/gt-extractor/pkg/types"
)

// outputExt is the extension given to every ground-truth file.
const outputExt = ".txt"

// Status is the outcome of converting one input.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Result holds the outcome of a batch run.
type Result struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the number of inputs processed.
func (r Result) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any input failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath returns where the ground-truth file for input is written.
func OutputPath(input, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, base+outputExt)
}

// ConvertFile loads input and writes its ground-truth file into cfg.OutDir.
// An existing output is left alone unless cfg.Force is set. A status line is
// printed to w.
func ConvertFile(input string, cfg types.BatchConfig, w io.Writer) Status {
	out := OutputPath(input, cfg.OutDir)
	name := filepath.Base(input)

	if !cfg.Force {
		if _, err := os.Stat(out); err == nil {
			fmt.Fprintf(w, "skipped:   %s (%s exists)\n", name, out)
			return StatusSkipped
		}
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
		return StatusFailed
	}

	ds, err := pose.Load(input, cfg.Load)
	if err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
		return StatusFailed
	}
	if err := pose.Write(ds, out, cfg.Write.Selection, cfg.Write.Reference); err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
		return StatusFailed
	}

	fmt.Fprintf(w, "converted: %s (%d rows)\n", name, len(ds))
	return StatusConverted
}

// Convert processes every input, printing per-file status lines and a
// summary to w. A failure on one input does not stop the others.
func Convert(inputs []string, cfg types.BatchConfig, w io.Writer) Result {
	var result Result
	for _, in := range inputs {
		switch ConvertFile(in, cfg, w) {
		case StatusConverted:
			result.Converted++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
