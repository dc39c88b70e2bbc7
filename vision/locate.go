package vision

import (
	"errors"
	"fmt"
	"image"

	"github.com/icco/camfour"
)

// ErrNoMove is returned when two captures show no new marker.
var ErrNoMove = errors.New("no new marker between captures")

// Difference returns next minus prev per pixel, clamped at zero, so only
// pixels that lit up since prev remain.
func Difference(prev, next *image.Gray) (*image.Gray, error) {
	if !prev.Rect.Size().Eq(next.Rect.Size()) {
		return nil, fmt.Errorf("frame sizes differ: %v and %v", prev.Rect.Size(), next.Rect.Size())
	}

	size := next.Rect.Size()
	out := image.NewGray(image.Rect(0, 0, size.X, size.Y))
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := prev.GrayAt(prev.Rect.Min.X+x, prev.Rect.Min.Y+y).Y
			n := next.GrayAt(next.Rect.Min.X+x, next.Rect.Min.Y+y).Y
			if n > p {
				out.Pix[y*out.Stride+x] = n - p
			}
		}
	}

	return out, nil
}

// Centroid returns the intensity weighted center of img. ok is false when
// img is entirely black.
func Centroid(img *image.Gray) (cx, cy float64, ok bool) {
	var m00, m10, m01 float64
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := float64(img.GrayAt(x, y).Y)
			if v == 0 {
				continue
			}
			m00 += v
			m10 += float64(x-b.Min.X) * v
			m01 += float64(y-b.Min.Y) * v
		}
	}

	if m00 == 0 {
		return 0, 0, false
	}

	return m10 / m00, m01 / m00, true
}

// CellFromCentroid maps a pixel position to a board cell. Image rows grow
// downward, board rows grow upward. A centroid on the very top edge maps to
// row Rows, which the board rejects.
func CellFromCentroid(cx, cy float64, width, height int) (row, col int) {
	x := int(cx)
	y := int(cy)
	col = int(float64(x) / float64(width) * camfour.Cols)
	row = int(float64(height-y) / float64(height) * camfour.Rows)
	return row, col
}

// Locate finds the cell of the marker that appeared between prev and next.
func Locate(prev, next *image.Gray, p Profile) (row, col int, err error) {
	diff, err := Difference(prev, next)
	if err != nil {
		return 0, 0, err
	}

	cx, cy, ok := Centroid(diff)
	if !ok {
		return 0, 0, ErrNoMove
	}

	row, col = CellFromCentroid(cx, cy, p.Width, p.Height)
	log.Debugw("located move", "cx", cx, "cy", cy, "row", row, "col", col)
	return row, col, nil
}
