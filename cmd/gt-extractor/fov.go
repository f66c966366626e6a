// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gt-extractor/internal/calib"
)

var fovCmd = &cobra.Command{
	Use:   "fov <calibration.yaml>",
	Short: "Print each camera's field of view from a stereo calibration file",
	Long: `Fov reads an OpenCV stereo calibration file (image_width, image_height,
camera_matrix_1, camera_matrix_2) and prints the horizontal and vertical field
of view of the left and right cameras in degrees.`,
	Args: cobra.ExactArgs(1),
	RunE: runFov,
}

func init() {
	fovCmd.Flags().Bool("yaml", false, "print the result as YAML")

	rootCmd.AddCommand(fovCmd)
}

func runFov(cmd *cobra.Command, args []string) error {
	cal, err := calib.Load(args[0])
	if err != nil {
		return err
	}
	optics := calib.Stereo(cal)

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		return enc.Encode(optics)
	}
	calib.Print(cmd.OutOrStdout(), optics)
	return nil
}
