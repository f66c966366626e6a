// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gt-extractor/internal/batch"
	"github.com/pdiddy/gt-extractor/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [inputs...]",
	Short: "Convert several metadata files into an output directory",
	Long: `Batch converts each input into <out-dir>/<name>.txt using the same field
range, selection, and reference as the root command. Existing outputs are
skipped unless --force is given. A failure on one input does not stop the rest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("out-dir", "data/gt", "directory receiving the ground-truth files")
	batchCmd.Flags().Bool("force", false, "overwrite existing outputs")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	wc, err := writeConfig()
	if err != nil {
		return err
	}
	outDir, _ := cmd.Flags().GetString("out-dir")
	force, _ := cmd.Flags().GetBool("force")

	cfg := types.BatchConfig{
		Load:   loadConfig(),
		Write:  wc,
		OutDir: outDir,
		Force:  force,
	}

	result := batch.Convert(args, cfg, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
