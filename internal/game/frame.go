package game

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"
)

// capturer reads the desktop as tightly packed RGBA.
type capturer interface {
	Capture() ([]byte, error)
}

// surface is the texture the captured pixels are written into.
type surface interface {
	Bounds() image.Rectangle
	WritePixels(pix []byte)
}

// frame is the CPU half of a tick: capture the screen, then upload it into
// the texture in place.
type frame struct {
	src capturer
	dst surface

	captures uint64
	failures uint64
	failing  bool
}

func newFrame(src capturer, dst surface, width, height int) (*frame, error) {
	b := dst.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return nil, fmt.Errorf("texture is %dx%d, screen is %dx%d", b.Dx(), b.Dy(), width, height)
	}
	return &frame{src: src, dst: dst}, nil
}

// step captures and uploads one frame. A failed capture keeps the previous
// texture contents.
func (f *frame) step() {
	pix, err := f.src.Capture()
	if err != nil {
		f.failures++
		if !f.failing {
			log.Warn("screen capture failed, keeping last frame", "err", err)
			f.failing = true
		}
		return
	}
	if f.failing {
		log.Info("screen capture recovered", "failures", f.failures)
		f.failing = false
	}

	f.dst.WritePixels(pix)
	f.captures++
}
