// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pose

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gt-extractor/pkg/types"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		cfg     types.LoadConfig
		want    types.Dataset
	}{
		{
			name:    "keeps columns 4 through 10",
			content: "1 2 3 10.0 20.0 30.0 40.0 50.0 60.0 70.0 80.0\n",
			cfg:     types.DefaultLoadConfig(),
			want:    types.Dataset{{10, 20, 30, 40, 50, 60, 70}},
		},
		{
			name:    "short line truncates",
			content: "1 2 3 4 5\n",
			cfg:     types.DefaultLoadConfig(),
			want:    types.Dataset{{4, 5}},
		},
		{
			name:    "line shorter than start gives empty record",
			content: "1 2\n",
			cfg:     types.DefaultLoadConfig(),
			want:    types.Dataset{{}},
		},
		{
			name:    "last line without newline",
			content: "0 0 0 1 2 3\n0 0 0 4 5 6",
			cfg:     types.DefaultLoadConfig(),
			want:    types.Dataset{{1, 2, 3}, {4, 5, 6}},
		},
		{
			name:    "crlf line endings",
			content: "0 0 0 1.5 -2.5\r\n0 0 0 3 4\r\n",
			cfg:     types.DefaultLoadConfig(),
			want:    types.Dataset{{1.5, -2.5}, {3, 4}},
		},
		{
			name:    "custom delimiter",
			content: "7,1e2,-0.5\n",
			cfg:     types.LoadConfig{StartIdx: 1, EndIdx: 3, Delimiter: ","},
			want:    types.Dataset{{100, -0.5}},
		},
		{
			name:    "multi-character delimiter",
			content: "1::2::3\n",
			cfg:     types.LoadConfig{StartIdx: 0, EndIdx: 2, Delimiter: "::"},
			want:    types.Dataset{{1, 2}},
		},
		{
			name:    "empty file",
			content: "",
			cfg:     types.DefaultLoadConfig(),
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, tt.content)
			got, err := Load(path, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_RecordCountMatchesLines(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 250; i++ {
		b.WriteString("1 2 3 4 5 6 7 8 9 10 11\n")
	}
	ds, err := Load(writeInput(t, b.String()), types.DefaultLoadConfig())
	require.NoError(t, err)
	assert.Len(t, ds, 250)
	for _, rec := range ds {
		assert.Len(t, rec, 7)
	}
}

func TestLoad_ParseError(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLine  int
		wantField int
	}{
		{name: "word token", content: "1 2 3 4\n1 2 x 4\n", wantLine: 2, wantField: 2},
		{name: "double space", content: "1  2 3\n", wantLine: 1, wantField: 1},
		{name: "trailing space", content: "1 2 3 \n", wantLine: 1, wantField: 3},
		{name: "bad token outside kept range", content: "a0 2 3 4\n", wantLine: 1, wantField: 0},
		{name: "blank line", content: "1 2 3\n\n1 2 3\n", wantLine: 2, wantField: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, tt.content)
			ds, err := Load(path, types.DefaultLoadConfig())
			require.Error(t, err)
			assert.Nil(t, ds)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, path, pe.Path)
			assert.Equal(t, tt.wantLine, pe.Line)
			assert.Equal(t, tt.wantField, pe.Field)
		})
	}
}

func TestLoad_SpecialValues(t *testing.T) {
	ds, err := Load(writeInput(t, "0 0 0 nan inf -Infinity 1e500\n"), types.DefaultLoadConfig())
	require.NoError(t, err)
	require.Len(t, ds, 1)
	rec := ds[0]
	assert.True(t, math.IsNaN(rec[0]))
	assert.True(t, math.IsInf(rec[1], 1))
	assert.True(t, math.IsInf(rec[2], -1))
	assert.True(t, math.IsInf(rec[3], 1))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), types.DefaultLoadConfig())
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeInput(t, "1 2 3\n")
	for _, cfg := range []types.LoadConfig{
		{StartIdx: -1, EndIdx: 2, Delimiter: " "},
		{StartIdx: 5, EndIdx: 2, Delimiter: " "},
		{StartIdx: 0, EndIdx: 2, Delimiter: ""},
	} {
		_, err := Load(path, cfg)
		assert.Error(t, err, "cfg %+v", cfg)
	}
}

func TestParse(t *testing.T) {
	ds, err := Parse(strings.NewReader("9 9 9 1 2\n"), "stdin", types.DefaultLoadConfig())
	require.NoError(t, err)
	assert.Equal(t, types.Dataset{{1, 2}}, ds)

	_, err = Parse(strings.NewReader("9 bad\n"), "stdin", types.DefaultLoadConfig())
	assert.ErrorContains(t, err, "stdin:1: field 1")
}
