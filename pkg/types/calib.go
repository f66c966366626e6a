// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Matrix is a dense row-major matrix as stored in OpenCV calibration files.
type Matrix struct {
	Rows int       `json:"rows" yaml:"rows"`
	Cols int       `json:"cols" yaml:"cols"`
	DT   string    `json:"dt" yaml:"dt"`
	Data []float64 `json:"data" yaml:"data"`
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Calibration holds the parts of a stereo calibration file needed to derive
// each camera's field of view.
type Calibration struct {
	ImageWidth  int    `json:"image_width" yaml:"image_width"`
	ImageHeight int    `json:"image_height" yaml:"image_height"`
	CameraLeft  Matrix `json:"camera_matrix_1" yaml:"camera_matrix_1"`
	CameraRight Matrix `json:"camera_matrix_2" yaml:"camera_matrix_2"`
}

// Optics is the field of view of one camera, in degrees.
type Optics struct {
	FovX        float64 `json:"fov_horizontal" yaml:"fov_horizontal"`
	FovY        float64 `json:"fov_vertical" yaml:"fov_vertical"`
	AspectRatio float64 `json:"aspect_ratio" yaml:"aspect_ratio"`
}

// StereoOptics pairs the optics of the left and right cameras.
type StereoOptics struct {
	Left  Optics `json:"left" yaml:"left"`
	Right Optics `json:"right" yaml:"right"`
}
