// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <name> <output>",
	Short: "Write a stored dataset as a ground-truth file",
	Long: `Export reads a dataset saved with "store" and writes it using the current
--fields, --reference, and --no-reference settings.`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	wc, err := writeConfig()
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ds, err := store.Load(context.Background(), args[0])
	if err != nil {
		return err
	}
	return emit(ds, args[1], wc, cmd.OutOrStdout())
}
