// Package capture reads the desktop into CPU memory.
package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

var (
	ErrNoDisplay    = errors.New("no active display")
	ErrSizeMismatch = errors.New("captured frame size does not match display")
)

type grabFunc func(image.Rectangle) (*image.RGBA, error)

// Display captures one physical display. The returned pixel buffers are
// tightly packed RGBA, 8 bits per channel, top row first.
type Display struct {
	index  int
	bounds image.Rectangle
	grab   grabFunc
	buf    []byte
}

// Open prepares a capturer for the display at index.
func Open(index int) (*Display, error) {
	n := screenshot.NumActiveDisplays()
	if index < 0 || index >= n {
		return nil, fmt.Errorf("display %d (active: %d): %w", index, n, ErrNoDisplay)
	}
	return newDisplay(index, screenshot.GetDisplayBounds(index), screenshot.CaptureRect)
}

func newDisplay(index int, bounds image.Rectangle, grab grabFunc) (*Display, error) {
	if bounds.Empty() {
		return nil, fmt.Errorf("display %d has empty bounds %v: %w", index, bounds, ErrNoDisplay)
	}
	return &Display{
		index:  index,
		bounds: bounds,
		grab:   grab,
		buf:    make([]byte, 4*bounds.Dx()*bounds.Dy()),
	}, nil
}

func (d *Display) Index() int {
	return d.index
}

func (d *Display) Bounds() image.Rectangle {
	return d.bounds
}

func (d *Display) Size() (int, int) {
	return d.bounds.Dx(), d.bounds.Dy()
}

// Capture grabs the display. The slice is owned by the Display and is
// overwritten by the next call.
func (d *Display) Capture() ([]byte, error) {
	img, err := d.grab(d.bounds)
	if err != nil {
		return nil, fmt.Errorf("capture display %d: %w", d.index, err)
	}

	w, h := d.Size()
	if img.Rect.Dx() != w || img.Rect.Dy() != h {
		return nil, fmt.Errorf("display %d: got %dx%d, want %dx%d: %w",
			d.index, img.Rect.Dx(), img.Rect.Dy(), w, h, ErrSizeMismatch)
	}

	rowLen := 4 * w
	if img.Stride == rowLen && img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y) == 0 {
		return img.Pix[:rowLen*h], nil
	}

	// sub-images carry a wider stride; pack the rows
	for y := 0; y < h; y++ {
		off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(d.buf[y*rowLen:(y+1)*rowLen], img.Pix[off:off+rowLen])
	}
	return d.buf, nil
}
