// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record is one parsed line of numeric fields, already cut to the configured
// field range.
type Record []float64

// Dataset is the ordered list of Records read from one input file. Position in
// the Dataset is the output row index.
type Dataset []Record

// Selection lists the Record fields to emit, in output order. The zero value is
// "unset", which means every field of the first Record in natural order. An
// explicitly empty selection is a different thing: rows carry only the index.
type Selection struct {
	fields []int
	set    bool
}

// AllFields returns the unset Selection.
func AllFields() Selection { return Selection{} }

// Fields returns a Selection holding exactly the given field indices.
func Fields(idx ...int) Selection {
	f := make([]int, len(idx))
	copy(f, idx)
	return Selection{fields: f, set: true}
}

// Get returns the field indices and whether the Selection was set.
func (s Selection) Get() ([]int, bool) {
	return s.fields, s.set
}

// RefIndex names the reference Record whose selected values are subtracted
// from every row. The zero value is "unset": no offset is applied. Index 0 is
// a valid reference, hence the explicit flag.
type RefIndex struct {
	row int
	set bool
}

// NoReference returns the unset RefIndex.
func NoReference() RefIndex { return RefIndex{} }

// Reference returns a RefIndex pointing at row.
func Reference(row int) RefIndex { return RefIndex{row: row, set: true} }

// Get returns the reference row and whether one was set.
func (r RefIndex) Get() (int, bool) {
	return r.row, r.set
}

// DatasetInfo describes a dataset held in the dataset store.
type DatasetInfo struct {
	Name      string `json:"name" yaml:"name"`
	Source    string `json:"source" yaml:"source"`
	StartIdx  int    `json:"start_idx" yaml:"start_idx"`
	EndIdx    int    `json:"end_idx" yaml:"end_idx"`
	Delimiter string `json:"delimiter" yaml:"delimiter"`
	Records   int    `json:"records" yaml:"records"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}
