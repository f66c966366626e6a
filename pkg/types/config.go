// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LoadConfig controls how input lines are parsed into Records.
type LoadConfig struct {
	// StartIdx is the first field kept from each line (inclusive).
	StartIdx int `json:"start_idx" yaml:"start_idx"`

	// EndIdx is the end of the kept field range (exclusive). Lines with fewer
	// fields yield shorter Records.
	EndIdx int `json:"end_idx" yaml:"end_idx"`

	// Delimiter separates fields on a line. Splitting is exact, not a pattern.
	Delimiter string `json:"delimiter" yaml:"delimiter"`
}

// DefaultLoadConfig returns the parameters used for pose metadata files:
// columns 4 through 10, single space separated.
func DefaultLoadConfig() LoadConfig {
	return LoadConfig{StartIdx: 3, EndIdx: 10, Delimiter: " "}
}

// WriteConfig controls which fields are written and what they are offset by.
type WriteConfig struct {
	Selection Selection `json:"-" yaml:"-"`
	Reference RefIndex  `json:"-" yaml:"-"`

	// Verbose prints the offset vector before writing.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// DefaultWriteConfig returns the position-only output: the first three
// fields, zeroed against the first record.
func DefaultWriteConfig() WriteConfig {
	return WriteConfig{Selection: Fields(0, 1, 2), Reference: Reference(0)}
}

// BatchConfig holds settings for converting several inputs at once.
type BatchConfig struct {
	Load  LoadConfig  `json:"load" yaml:"load"`
	Write WriteConfig `json:"write" yaml:"write"`

	// OutDir receives one output file per input.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Force overwrites outputs that already exist.
	Force bool `json:"force" yaml:"force"`
}

// StoreConfig holds settings for the dataset store.
type StoreConfig struct {
	// Dir is the directory holding the SQLite database file.
	Dir string `json:"dir" yaml:"dir"`
}
