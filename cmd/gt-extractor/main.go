// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gt-extractor CLI. The root command
// turns a pose metadata file into a tab-delimited ground-truth file;
// subcommands cover batch conversion, the dataset store, and the camera
// field-of-view calculator.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gt-extractor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// errUsage marks a wrong argument count. Its message has already been
// printed, so main only sets the exit status.
var errUsage = errors.New("wrong number of args")

// rootCmd converts one metadata file. With no subcommand it takes exactly
// two arguments: the input file and the output file.
var rootCmd = &cobra.Command{
	Use:   "gt-extractor <input> <output>",
	Short: "Extract zero-referenced ground-truth poses from metadata files",
	Long: `gt-extractor reads a space-delimited metadata file, keeps the pose columns
(4 through 10 by default), and writes a tab-delimited ground-truth file with a
leading row counter. By default the first three pose fields are written,
offset so that the first record sits at the origin.

Every flag can also be set through a GT_EXTRACTOR_* environment variable,
e.g. GT_EXTRACTOR_START=3 or GT_EXTRACTOR_NO_REFERENCE=true.`,
	Args:          exactInputOutput,
	RunE:          runExtract,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	def := types.DefaultLoadConfig()
	pf := rootCmd.PersistentFlags()
	pf.Int("start", def.StartIdx, "first field kept from each line (0-based, inclusive)")
	pf.Int("end", def.EndIdx, "end of the kept field range (exclusive)")
	pf.String("delim", def.Delimiter, "field delimiter (exact string)")
	pf.String("fields", "0,1,2", `comma-separated record fields to write, or "all" for every field of the first record`)
	pf.Int("reference", 0, "row whose selected values are subtracted from every row")
	pf.Bool("no-reference", false, "write raw values without subtracting a reference row")
	pf.BoolP("verbose", "v", false, "print the offset vector before writing")
	pf.String("db-dir", "data/index", "directory holding the dataset store")

	for _, name := range []string{"start", "end", "delim", "fields", "reference", "no-reference", "verbose", "db-dir"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	viper.SetEnvPrefix("GT_EXTRACTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// exactInputOutput rejects any argument count other than two, printing the
// diagnostic to standard output.
func exactInputOutput(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(cmd.OutOrStdout(), "Wrong number of args supplied!")
		return errUsage
	}
	return nil
}

// loadConfig assembles the loader settings from flags and environment.
func loadConfig() types.LoadConfig {
	return types.LoadConfig{
		StartIdx:  viper.GetInt("start"),
		EndIdx:    viper.GetInt("end"),
		Delimiter: viper.GetString("delim"),
	}
}

// writeConfig assembles the writer settings from flags and environment.
func writeConfig() (types.WriteConfig, error) {
	sel, err := parseFields(viper.GetString("fields"))
	if err != nil {
		return types.WriteConfig{}, err
	}
	ref := types.Reference(viper.GetInt("reference"))
	if viper.GetBool("no-reference") {
		ref = types.NoReference()
	}
	return types.WriteConfig{
		Selection: sel,
		Reference: ref,
		Verbose:   viper.GetBool("verbose"),
	}, nil
}

// parseFields turns "0,1,2" into a Selection. "all" leaves the Selection
// unset; an empty string selects no fields.
func parseFields(s string) (types.Selection, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return types.AllFields(), nil
	}
	if s == "" {
		return types.Fields(), nil
	}
	parts := strings.Split(s, ",")
	idx := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return types.Selection{}, fmt.Errorf("invalid --fields entry %q: %w", p, err)
		}
		idx[i] = n
	}
	return types.Fields(idx...), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
