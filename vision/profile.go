package vision

import (
	"fmt"

	"github.com/icco/camfour"
	"github.com/icco/gutil/logging"
)

var log = logging.Must(logging.NewLogger(camfour.Service))

// Limits of OpenCV style HSV channels.
const (
	MaxHue        = 179
	MaxSaturation = 255
	MaxValue      = 255
)

// HSVBounds are the thresholds that pick the player's marker color out of a
// frame.
type HSVBounds struct {
	LowH  int `json:"low_h"`
	HighH int `json:"high_h"`
	LowS  int `json:"low_s"`
	HighS int `json:"high_s"`
	LowV  int `json:"low_v"`
	HighV int `json:"high_v"`
}

// FullRange accepts every color.
var FullRange = HSVBounds{HighH: MaxHue, HighS: MaxSaturation, HighV: MaxValue}

// Validate checks each channel is in range and low <= high.
func (b HSVBounds) Validate() error {
	checks := []struct {
		name      string
		low, high int
		max       int
	}{
		{"hue", b.LowH, b.HighH, MaxHue},
		{"saturation", b.LowS, b.HighS, MaxSaturation},
		{"value", b.LowV, b.HighV, MaxValue},
	}

	for _, c := range checks {
		if c.low < 0 || c.high > c.max {
			return fmt.Errorf("%s bounds %d-%d outside 0-%d", c.name, c.low, c.high, c.max)
		}
		if c.low > c.high {
			return fmt.Errorf("%s low %d is above high %d", c.name, c.low, c.high)
		}
	}

	return nil
}

// Profile is a successful calibration: the color bounds and the size of the
// frames they were taken from.
type Profile struct {
	Name   string    `json:"name"`
	Bounds HSVBounds `json:"bounds"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
}

// Validate checks the bounds and frame size.
func (p Profile) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("frame size %dx%d must be positive", p.Width, p.Height)
	}

	return p.Bounds.Validate()
}

// CalibrationError is the failed side of a calibration.
type CalibrationError struct {
	Reason string
	Err    error
}

func (e *CalibrationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("calibration failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("calibration failed: %s", e.Reason)
}

func (e *CalibrationError) Unwrap() error {
	return e.Err
}
