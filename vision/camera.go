package vision

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"
)

// Camera is the capture side of the vision collaborator. Frames returned by
// Capture are already thresholded: marker pixels are bright, the rest black.
type Camera interface {
	Calibrate(ctx context.Context) (Profile, error)
	Capture(ctx context.Context, p Profile) (*image.Gray, error)
}

// DirCamera replays thresholded PNG masks from a directory in name order.
// The first frame should show the empty board.
type DirCamera struct {
	Dir    string
	Bounds HSVBounds

	files []string
	next  int
}

// NewDirCamera lists the PNG frames in dir.
func NewDirCamera(dir string, bounds HSVBounds) (*DirCamera, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	return &DirCamera{Dir: dir, Bounds: bounds, files: files}, nil
}

// Calibrate reads the frame size off the first frame.
func (c *DirCamera) Calibrate(ctx context.Context) (Profile, error) {
	if err := c.Bounds.Validate(); err != nil {
		return Profile{}, &CalibrationError{Reason: "bad color bounds", Err: err}
	}

	if len(c.files) == 0 {
		return Profile{}, &CalibrationError{Reason: fmt.Sprintf("no frames in %s", c.Dir)}
	}

	img, err := readGray(c.files[0])
	if err != nil {
		return Profile{}, &CalibrationError{Reason: "cannot read a frame", Err: err}
	}

	size := img.Rect.Size()
	return Profile{
		Name:   filepath.Base(c.Dir),
		Bounds: c.Bounds,
		Width:  size.X,
		Height: size.Y,
	}, nil
}

// Capture returns the next frame.
func (c *DirCamera) Capture(ctx context.Context, p Profile) (*image.Gray, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if c.next >= len(c.files) {
		return nil, fmt.Errorf("out of frames after %d captures", c.next)
	}

	img, err := readGray(c.files[c.next])
	if err != nil {
		return nil, err
	}
	c.next++

	if size := img.Rect.Size(); size.X != p.Width || size.Y != p.Height {
		return nil, fmt.Errorf("frame %s is %dx%d, calibrated for %dx%d", c.files[c.next-1], size.X, size.Y, p.Width, p.Height)
	}

	return img, nil
}

func readGray(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if g, ok := img.(*image.Gray); ok {
		return g, nil
	}

	g := image.NewGray(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(g, g.Bounds(), img, img.Bounds().Min, draw.Src)
	return g, nil
}
