// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gt-extractor/internal/pose"
	"github.com/pdiddy/gt-extractor/internal/posedb"
	"github.com/pdiddy/gt-extractor/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store [input]",
	Short: "Load a metadata file into the dataset store",
	Long: `Store parses a metadata file with the current field range and saves the
records in a SQLite database under --db-dir, replacing any dataset of the same
name. Use --list to print the stored datasets as YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStore,
}

func init() {
	storeCmd.Flags().String("name", "", "dataset name (default: input file name without extension)")
	storeCmd.Flags().Bool("list", false, "list stored datasets instead of storing")

	rootCmd.AddCommand(storeCmd)
}

func openStore() (*posedb.Store, error) {
	return posedb.NewStore(types.StoreConfig{Dir: viper.GetString("db-dir")})
}

func runStore(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetBool("list")
	if !list && len(args) != 1 {
		return fmt.Errorf("provide a metadata file to store, or --list")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if list {
		infos, err := store.List(ctx)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(infos)
	}

	input := args[0]
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	lc := loadConfig()
	ds, err := pose.Load(input, lc)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, name, input, lc, ds); err != nil {
		return fmt.Errorf("storing %s: %w", name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "stored: %s (%d records)\n", name, len(ds))
	return nil
}
