// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pose converts whitespace-delimited pose records into tab-delimited
// ground-truth files. Load reads and cuts the records; Write emits the
// selected fields with a leading row counter, optionally zeroed against a
// reference record.
package pose

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/gt-extractor/pkg/types"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 * 1024 * 1024

// Load reads the file at path and returns one Record per line, each cut to
// the field range [cfg.StartIdx, cfg.EndIdx). The file is closed before Load
// returns, on every path.
func Load(path string, cfg types.LoadConfig) (types.Dataset, error) {
	if err := validateLoadConfig(cfg); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	return parse(f, path, cfg)
}

// Parse reads records from r. name is used in error messages only.
func Parse(r io.Reader, name string, cfg types.LoadConfig) (types.Dataset, error) {
	if err := validateLoadConfig(cfg); err != nil {
		return nil, err
	}
	return parse(r, name, cfg)
}

func validateLoadConfig(cfg types.LoadConfig) error {
	if cfg.StartIdx < 0 || cfg.EndIdx < cfg.StartIdx {
		return fmt.Errorf("invalid field range [%d:%d)", cfg.StartIdx, cfg.EndIdx)
	}
	if cfg.Delimiter == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	return nil
}

func parse(r io.Reader, name string, cfg types.LoadConfig) (types.Dataset, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	var (
		ds    types.Dataset
		lines int
	)
	for sc.Scan() {
		lines++
		rec, err := parseLine(sc.Text(), cfg)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Path = name
				pe.Line = lines
			}
			return nil, err
		}
		ds = append(ds, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, &IOError{Op: "read", Path: name, Err: err}
	}

	if len(ds) != lines {
		return nil, fmt.Errorf("%s: %d records from %d lines: %w", name, len(ds), lines, ErrInvariant)
	}
	return ds, nil
}

// parseLine converts every token on the line, then keeps the configured
// range. A line shorter than EndIdx gives a shorter Record. Out-of-range
// literals saturate to ±Inf instead of failing.
func parseLine(line string, cfg types.LoadConfig) (types.Record, error) {
	tokens := strings.Split(line, cfg.Delimiter)
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &ParseError{Field: i, Token: tok, Err: err}
		}
		values[i] = v
	}

	start, end := cfg.StartIdx, cfg.EndIdx
	if end > len(values) {
		end = len(values)
	}
	if start > end {
		start = end
	}
	rec := make(types.Record, end-start)
	copy(rec, values[start:end])
	return rec, nil
}
