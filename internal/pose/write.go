// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pose

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/pdiddy/gt-extractor/pkg/types"
)

// Write renders ds and stores it at outputPath, replacing any existing file.
// Each line holds the zero-based row index followed by the selected fields,
// minus the reference record's values, tab separated with six decimals.
//
// Rows are rendered in memory first, so an IndexError leaves no output file
// behind.
func Write(ds types.Dataset, outputPath string, sel types.Selection, ref types.RefIndex) error {
	var buf bytes.Buffer
	if err := Render(&buf, ds, sel, ref); err != nil {
		return err
	}
	return writeFileAtomic(outputPath, buf.Bytes())
}

// Render writes the output rows for ds to w.
func Render(w io.Writer, ds types.Dataset, sel types.Selection, ref types.RefIndex) error {
	fields, err := resolveSelection(ds, sel)
	if err != nil {
		return err
	}
	offsets, err := offsetsFor(ds, fields, ref)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 16+len(fields)*16)
	for row, rec := range ds {
		line = strconv.AppendInt(line[:0], int64(row), 10)
		for i, f := range fields {
			if f < 0 || f >= len(rec) {
				return &IndexError{What: "field", Row: row, Index: f, Len: len(rec)}
			}
			line = append(line, '\t')
			line = appendFixed(line, rec[f]-offsets[i])
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Offsets returns the value subtracted from each selected field: the
// reference record's selected values, or zeros when ref is unset.
func Offsets(ds types.Dataset, sel types.Selection, ref types.RefIndex) ([]float64, error) {
	fields, err := resolveSelection(ds, sel)
	if err != nil {
		return nil, err
	}
	return offsetsFor(ds, fields, ref)
}

// resolveSelection expands an unset Selection to the natural field range of
// the first record.
func resolveSelection(ds types.Dataset, sel types.Selection) ([]int, error) {
	if fields, ok := sel.Get(); ok {
		return fields, nil
	}
	if len(ds) == 0 {
		return nil, &IndexError{What: "first record", Index: 0, Len: 0}
	}
	fields := make([]int, len(ds[0]))
	for i := range fields {
		fields[i] = i
	}
	return fields, nil
}

func offsetsFor(ds types.Dataset, fields []int, ref types.RefIndex) ([]float64, error) {
	offsets := make([]float64, len(fields))
	row, ok := ref.Get()
	if !ok {
		return offsets, nil
	}
	if row < 0 || row >= len(ds) {
		return nil, &IndexError{What: "reference", Index: row, Len: len(ds)}
	}
	base := ds[row]
	for i, f := range fields {
		if f < 0 || f >= len(base) {
			return nil, &IndexError{What: "field", Row: row, Index: f, Len: len(base)}
		}
		offsets[i] = base[f]
	}
	return offsets, nil
}

// appendFixed formats v like C's "%f": six decimals, sign kept, and
// lower-case names for the non-finite values.
func appendFixed(dst []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "nan"...)
	case math.IsInf(v, 1):
		return append(dst, "inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-inf"...)
	}
	return strconv.AppendFloat(dst, v, 'f', 6, 64)
}
