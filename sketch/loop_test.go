package sketch

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type recordingDrawer struct {
	frames []Frame
}

func (d *recordingDrawer) Draw(f Frame) {
	d.frames = append(d.frames, f)
}

// scriptHost closes after maxFrames presented frames. before is called with
// the index of the frame about to be presented and may queue events.
type scriptHost struct {
	events    chan Event
	presented int
	maxFrames int
	waits     int
	maxWaits  int
	before    func(h *scriptHost, frame int)
}

func newScriptHost(maxFrames int) *scriptHost {
	return &scriptHost{events: make(chan Event, 64), maxFrames: maxFrames, maxWaits: 1}
}

func (h *scriptHost) Events() <-chan Event { return h.events }

func (h *scriptHost) NextFrame() bool {
	h.presented++
	if h.before != nil {
		h.before(h, h.presented)
	}
	return h.presented < h.maxFrames
}

func (h *scriptHost) Wait() bool {
	h.waits++
	if h.before != nil {
		h.before(h, -h.waits)
	}
	return h.waits < h.maxWaits
}

func TestTickAdvancesFixedStep(t *testing.T) {
	d := &recordingDrawer{}
	l := NewLoop(New(nil), d, 0)
	l.Start()
	const n = 1000
	for i := 0; i < n; i++ {
		if !l.Tick() {
			t.Fatalf("tick %d refused while running", i)
		}
	}
	st := l.State()
	if math.Abs(st.ElapsedTime-n*DefaultStep) > 1e-9 {
		t.Fatalf("elapsed mismatch: got %v want %v", st.ElapsedTime, n*DefaultStep)
	}
	if st.Frames != n || len(d.frames) != n {
		t.Fatalf("frame count mismatch: state=%d drawn=%d", st.Frames, len(d.frames))
	}
	last := d.frames[n-1].Uniforms.Time
	if math.Abs(float64(last)-n*DefaultStep) > 1e-3 {
		t.Fatalf("time uniform mismatch: %v", last)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	d := &recordingDrawer{}
	l := NewLoop(New(nil), d, 0)
	l.Start()
	l.Tick()
	l.Stop()
	l.Stop()
	if l.Running() {
		t.Fatalf("loop running after Stop")
	}
	if l.Tick() {
		t.Fatalf("tick produced a frame while stopped")
	}
	if len(d.frames) != 1 {
		t.Fatalf("extra frames drawn after stop: %d", len(d.frames))
	}
	if l.State().ElapsedTime != DefaultStep {
		t.Fatalf("time advanced while stopped: %v", l.State().ElapsedTime)
	}
}

func TestResumeDoesNotDoubleSchedule(t *testing.T) {
	l := NewLoop(New(nil), nil, 0)
	l.Start()
	if l.Resume() {
		t.Fatalf("Resume on a running loop reported a restart")
	}
	l.Stop()
	if !l.Resume() {
		t.Fatalf("Resume on a stopped loop did not restart")
	}
	l.Tick()
	if l.State().Frames != 1 {
		t.Fatalf("frames after resume mismatch: %d", l.State().Frames)
	}
}

func TestResumeContinuesFromElapsedTime(t *testing.T) {
	l := NewLoop(New(nil), nil, 0.5)
	l.Start()
	l.Tick()
	l.Tick()
	l.Stop()
	l.Resume()
	l.Tick()
	if l.State().ElapsedTime != 1.5 {
		t.Fatalf("elapsed after resume mismatch: %v", l.State().ElapsedTime)
	}
}

func TestProgressReachesNextFrame(t *testing.T) {
	d := &recordingDrawer{}
	s := New(nil)
	l := NewLoop(s, d, 0)
	l.Start()
	l.Tick()
	s.SetProgress(0.42)
	l.Tick()
	got := d.frames[1].Uniforms.Progress
	if got != float32(0.42) {
		t.Fatalf("progress uniform mismatch: %v", got)
	}
	if v, _ := s.Uniforms.Value(UniformProgress); v.(float32) != float32(0.42) {
		t.Fatalf("store progress mismatch: %v", v)
	}
}

func TestPointerDefaultsUntilFirstMove(t *testing.T) {
	d := &recordingDrawer{}
	s := New(nil)
	s.Resize(ResizeEvent{Width: 800, Height: 600})
	l := NewLoop(s, d, 0)
	l.Start()
	l.Tick()
	if d.frames[0].Uniforms.Mouse != (mgl32.Vec2{}) {
		t.Fatalf("default mouse mismatch: %v", d.frames[0].Uniforms.Mouse)
	}
	l.Handle(PointerMoveEvent{X: 0, Y: 0})
	l.Tick()
	if !d.frames[1].Uniforms.Mouse.ApproxEqual(mgl32.Vec2{-1, 1}) {
		t.Fatalf("mouse after move mismatch: %v", d.frames[1].Uniforms.Mouse)
	}
	l.Tick()
	if !d.frames[2].Uniforms.Mouse.ApproxEqual(mgl32.Vec2{-1, 1}) {
		t.Fatalf("mouse not kept between moves: %v", d.frames[2].Uniforms.Mouse)
	}
}

func TestRunProducesFramesUntilHostCloses(t *testing.T) {
	d := &recordingDrawer{}
	s := New(nil)
	h := newScriptHost(20)
	h.events <- ResizeEvent{Width: 800, Height: 600}
	h.events <- PointerMoveEvent{X: 400, Y: 300}

	l := NewLoop(s, d, 0)
	l.Start()
	if err := l.Run(context.Background(), h); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.frames) != 20 {
		t.Fatalf("drawn frames mismatch: %d", len(d.frames))
	}
	if math.Abs(l.State().ElapsedTime-20*DefaultStep) > 1e-9 {
		t.Fatalf("elapsed mismatch: %v", l.State().ElapsedTime)
	}
	first := d.frames[0]
	if !first.Uniforms.Resolution.ApproxEqual(mgl32.Vec2{1, 0.75}) {
		t.Fatalf("resolution not applied before first frame: %v", first.Uniforms.Resolution)
	}
	if !first.Uniforms.Mouse.ApproxEqual(mgl32.Vec2{0, 0}) {
		t.Fatalf("mouse not applied before first frame: %v", first.Uniforms.Mouse)
	}
}

func TestRunStopWaitsForInput(t *testing.T) {
	d := &recordingDrawer{}
	h := newScriptHost(100)
	h.maxWaits = 3
	h.before = func(h *scriptHost, frame int) {
		if frame == 5 {
			h.events <- ActionEvent{Action: ActionTogglePlay}
			h.events <- ActionEvent{Action: ActionTogglePlay}
			h.events <- ActionEvent{Action: ActionTogglePlay}
		}
	}
	l := NewLoop(New(nil), d, 0)
	l.Start()
	if err := l.Run(context.Background(), h); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.frames) != 5 {
		t.Fatalf("frames drawn while stopped: %d", len(d.frames))
	}
	if h.waits != 3 {
		t.Fatalf("wait count mismatch: %d", h.waits)
	}
	if l.Running() {
		t.Fatalf("loop should have ended stopped")
	}
}

func TestRunResumeFromWait(t *testing.T) {
	d := &recordingDrawer{}
	h := newScriptHost(8)
	h.maxWaits = 10
	h.before = func(h *scriptHost, frame int) {
		if frame == -1 {
			h.events <- ActionEvent{Action: ActionTogglePlay}
		}
	}
	l := NewLoop(New(nil), d, 0)
	if err := l.Run(context.Background(), h); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if h.waits != 1 {
		t.Fatalf("wait count mismatch: %d", h.waits)
	}
	if len(d.frames) != 8 {
		t.Fatalf("frames after resume mismatch: %d", len(d.frames))
	}
}

func TestRunHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := newScriptHost(1000)
	h.before = func(h *scriptHost, frame int) {
		if frame == 3 {
			cancel()
		}
	}
	l := NewLoop(New(nil), nil, 0)
	l.Start()
	err := l.Run(ctx, h)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if l.State().Frames != 3 {
		t.Fatalf("frames after cancel mismatch: %d", l.State().Frames)
	}
}

func TestRunSurvivesClosedEventChannel(t *testing.T) {
	h := newScriptHost(4)
	close(h.events)
	l := NewLoop(New(nil), nil, 0)
	l.Start()
	if err := l.Run(context.Background(), h); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.State().Frames != 4 {
		t.Fatalf("frames mismatch: %d", l.State().Frames)
	}
}
