// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package calib reads stereo camera calibration files written by OpenCV's
// FileStorage and derives each camera's field of view from its intrinsic
// matrix.
package calib

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gt-extractor/pkg/types"
)

// Load reads and validates the calibration file at path.
func Load(path string) (types.Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Calibration{}, fmt.Errorf("reading calibration file: %w", err)
	}
	cal, err := Parse(data)
	if err != nil {
		return types.Calibration{}, fmt.Errorf("%s: %w", path, err)
	}
	return cal, nil
}

// Parse decodes an OpenCV calibration document. The "%YAML:1.0" directive
// and "!!opencv-matrix" tags that FileStorage emits are accepted.
func Parse(data []byte) (types.Calibration, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(stripDirective(data), &root); err != nil {
		return types.Calibration{}, fmt.Errorf("parsing calibration YAML: %w", err)
	}
	clearCustomTags(&root)

	var cal types.Calibration
	if err := root.Decode(&cal); err != nil {
		return types.Calibration{}, fmt.Errorf("decoding calibration: %w", err)
	}
	if err := validate(cal); err != nil {
		return types.Calibration{}, err
	}
	return cal, nil
}

// stripDirective drops OpenCV's "%YAML:1.0" line, which is not a valid YAML
// directive.
func stripDirective(data []byte) []byte {
	if !bytes.HasPrefix(data, []byte("%YAML")) {
		return data
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return data[i+1:]
	}
	return nil
}

func clearCustomTags(n *yaml.Node) {
	if strings.HasPrefix(n.Tag, "!!opencv-") {
		n.Tag = ""
	}
	for _, c := range n.Content {
		clearCustomTags(c)
	}
}

func validate(cal types.Calibration) error {
	if cal.ImageWidth <= 0 || cal.ImageHeight <= 0 {
		return fmt.Errorf("image size %dx%d: image_width and image_height must be positive",
			cal.ImageWidth, cal.ImageHeight)
	}
	for name, m := range map[string]types.Matrix{
		"camera_matrix_1": cal.CameraLeft,
		"camera_matrix_2": cal.CameraRight,
	} {
		if m.Rows != 3 || m.Cols != 3 || len(m.Data) != 9 {
			return fmt.Errorf("%s: want 3x3 matrix with 9 values, got %dx%d with %d",
				name, m.Rows, m.Cols, len(m.Data))
		}
		if m.At(0, 0) <= 0 || m.At(1, 1) <= 0 {
			return fmt.Errorf("%s: focal lengths must be positive", name)
		}
	}
	return nil
}

// CameraOptics computes the field of view of a camera with intrinsic matrix
// k over an image of width w and height h. The principal point need not be
// centred: each side of it contributes its own angle.
func CameraOptics(k types.Matrix, w, h int) types.Optics {
	fx, fy := k.At(0, 0), k.At(1, 1)
	cx, cy := k.At(0, 2), k.At(1, 2)

	fovx := math.Atan2(cx, fx) + math.Atan2(float64(w)-cx, fx)
	fovy := math.Atan2(cy, fy) + math.Atan2(float64(h)-cy, fy)

	return types.Optics{
		FovX:        fovx * 180 / math.Pi,
		FovY:        fovy * 180 / math.Pi,
		AspectRatio: fy / fx,
	}
}

// Stereo computes the optics of both cameras in cal.
func Stereo(cal types.Calibration) types.StereoOptics {
	return types.StereoOptics{
		Left:  CameraOptics(cal.CameraLeft, cal.ImageWidth, cal.ImageHeight),
		Right: CameraOptics(cal.CameraRight, cal.ImageWidth, cal.ImageHeight),
	}
}

// Print writes the optics of both cameras in a short human-readable form.
func Print(w io.Writer, so types.StereoOptics) {
	fmt.Fprintln(w, "LEFT CAMERA:")
	printOptics(w, so.Left)
	fmt.Fprintln(w, "RIGHT CAMERA:")
	printOptics(w, so.Right)
}

func printOptics(w io.Writer, o types.Optics) {
	fmt.Fprintf(w, "FoV - Horizontal: %s\n", strconv.FormatFloat(o.FovX, 'g', 6, 64))
	fmt.Fprintf(w, "FoV - Vertical: %s\n", strconv.FormatFloat(o.FovY, 'g', 6, 64))
}
