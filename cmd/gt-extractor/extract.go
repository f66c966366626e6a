// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gt-extractor/internal/pose"
	"github.com/pdiddy/gt-extractor/pkg/types"
)

func runExtract(cmd *cobra.Command, args []string) error {
	wc, err := writeConfig()
	if err != nil {
		return err
	}
	return extract(args[0], args[1], loadConfig(), wc, cmd.OutOrStdout())
}

// extract loads input and writes the ground-truth file to output. With
// wc.Verbose the offset vector is printed to w first.
func extract(input, output string, lc types.LoadConfig, wc types.WriteConfig, w io.Writer) error {
	ds, err := pose.Load(input, lc)
	if err != nil {
		return err
	}
	return emit(ds, output, wc, w)
}

func emit(ds types.Dataset, output string, wc types.WriteConfig, w io.Writer) error {
	if wc.Verbose {
		offsets, err := pose.Offsets(ds, wc.Selection, wc.Reference)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "offsets: %v\n", offsets)
	}
	return pose.Write(ds, output, wc.Selection, wc.Reference)
}
