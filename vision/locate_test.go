package vision

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/icco/camfour"
)

const (
	frameWidth  = 70
	frameHeight = 60
)

var testProfile = Profile{Name: "test", Bounds: FullRange, Width: frameWidth, Height: frameHeight}

func blankFrame() *image.Gray {
	return image.NewGray(image.Rect(0, 0, frameWidth, frameHeight))
}

// markCell lights a small square in the middle of board cell (row, col).
// Board row 0 is at the bottom of the image.
func markCell(img *image.Gray, row, col int) {
	cw := frameWidth / camfour.Cols
	ch := frameHeight / camfour.Rows
	top := (camfour.Rows - 1 - row) * ch
	left := col * cw
	for y := top + 3; y < top+ch-3; y++ {
		for x := left + 3; x < left+cw-3; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
}

func frameWith(cells ...[2]int) *image.Gray {
	img := blankFrame()
	for _, c := range cells {
		markCell(img, c[0], c[1])
	}
	return img
}

func TestDifference(t *testing.T) {
	prev := blankFrame()
	next := blankFrame()
	prev.SetGray(1, 1, color.Gray{Y: 200})
	next.SetGray(1, 1, color.Gray{Y: 100})
	next.SetGray(2, 2, color.Gray{Y: 50})
	next.SetGray(3, 3, color.Gray{Y: 250})
	prev.SetGray(3, 3, color.Gray{Y: 50})

	diff, err := Difference(prev, next)
	if err != nil {
		t.Fatalf("Difference() error = %v", err)
	}

	tests := []struct {
		x, y int
		want uint8
	}{
		{1, 1, 0},
		{2, 2, 50},
		{3, 3, 200},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := diff.GrayAt(tt.x, tt.y).Y; got != tt.want {
			t.Errorf("pixel %d,%d = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	if _, err := Difference(prev, image.NewGray(image.Rect(0, 0, 10, 10))); err == nil {
		t.Error("Difference() accepted frames of different sizes")
	}
}

func TestCentroid(t *testing.T) {
	img := blankFrame()
	if _, _, ok := Centroid(img); ok {
		t.Error("Centroid() found something in a black frame")
	}

	img.SetGray(10, 20, color.Gray{Y: 255})
	img.SetGray(20, 20, color.Gray{Y: 255})
	cx, cy, ok := Centroid(img)
	if !ok {
		t.Fatal("Centroid() found nothing")
	}
	if cx != 15 || cy != 20 {
		t.Errorf("Centroid() = %v,%v, want 15,20", cx, cy)
	}
}

func TestCellFromCentroid(t *testing.T) {
	tests := []struct {
		name     string
		cx, cy   float64
		row, col int
	}{
		{"bottom left", 1, 59, 0, 0},
		{"top right", 69, 1, 5, 6},
		{"middle", 35, 30, 3, 3},
		{"fraction truncated", 9.9, 52.9, 0, 0},
		{"top edge", 0, 0, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col := CellFromCentroid(tt.cx, tt.cy, frameWidth, frameHeight)
			if row != tt.row || col != tt.col {
				t.Errorf("CellFromCentroid(%v, %v) = %d,%d, want %d,%d", tt.cx, tt.cy, row, col, tt.row, tt.col)
			}
		})
	}
}

func TestLocateEveryCell(t *testing.T) {
	for r := 0; r < camfour.Rows; r++ {
		for c := 0; c < camfour.Cols; c++ {
			prev := frameWith([2]int{0, (c + 3) % camfour.Cols})
			next := frameWith([2]int{0, (c + 3) % camfour.Cols}, [2]int{r, c})
			row, col, err := Locate(prev, next, testProfile)
			if err != nil {
				t.Fatalf("Locate(%d, %d) error = %v", r, c, err)
			}
			if row != r || col != c {
				t.Errorf("Locate() = %d,%d, want %d,%d", row, col, r, c)
			}
		}
	}
}

func TestLocateNoMove(t *testing.T) {
	prev := frameWith([2]int{0, 0})
	_, _, err := Locate(prev, frameWith([2]int{0, 0}), testProfile)
	if !errors.Is(err, ErrNoMove) {
		t.Errorf("Locate() error = %v, want ErrNoMove", err)
	}

	// A marker that vanished is not a move either.
	_, _, err = Locate(prev, blankFrame(), testProfile)
	if !errors.Is(err, ErrNoMove) {
		t.Errorf("Locate() error = %v, want ErrNoMove", err)
	}
}
