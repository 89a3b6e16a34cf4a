package renderer

import (
	"log"

	"github.com/richinsley/shaderplane/encoder"
	"github.com/richinsley/shaderplane/sketch"
)

// FrameWriter consumes recorded frames.
type FrameWriter interface {
	Write(f *encoder.Frame) error
}

// RecordHost drives a sketch.Loop for a fixed number of frames, reading
// each one back from an offscreen target. It never delivers input beyond
// the initial size.
type RecordHost struct {
	events chan sketch.Event
	target *OffscreenTarget
	out    FrameWriter
	total  int
	fps    int
	n      int
	err    error
}

// NewRecordHost records total frames of width x height logical pixels at
// pixelRatio from target into out.
func NewRecordHost(target *OffscreenTarget, out FrameWriter, width, height int, pixelRatio float64, total, fps int) *RecordHost {
	h := &RecordHost{
		events: make(chan sketch.Event, 1),
		target: target,
		out:    out,
		total:  total,
		fps:    fps,
	}
	h.events <- sketch.ResizeEvent{Width: float64(width), Height: float64(height), PixelRatio: pixelRatio}
	close(h.events)
	return h
}

func (h *RecordHost) Events() <-chan sketch.Event {
	return h.events
}

// NextFrame hands the frame just drawn to the writer. It returns false
// after the last frame or on a write error.
func (h *RecordHost) NextFrame() bool {
	pixels := h.target.ReadPixels(nil)
	if err := h.out.Write(&encoder.Frame{Pixels: pixels, PTS: int64(h.n)}); err != nil {
		h.err = err
		return false
	}
	h.n++
	if h.fps > 0 && h.n%h.fps == 0 {
		log.Printf("Recorded %d/%d frames", h.n, h.total)
	}
	return h.n < h.total
}

// Wait ends the recording; a stopped loop would never produce the
// remaining frames.
func (h *RecordHost) Wait() bool {
	log.Printf("Recording stopped after %d/%d frames", h.n, h.total)
	return false
}

// Frames is the number of frames written so far.
func (h *RecordHost) Frames() int {
	return h.n
}

// Err returns the write error that ended the recording, if any.
func (h *RecordHost) Err() error {
	return h.err
}
