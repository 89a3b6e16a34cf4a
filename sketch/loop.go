package sketch

import (
	"context"
	"log"
)

// DefaultStep is the time added per frame. Playback speed follows the
// achieved frame rate, not the wall clock.
const DefaultStep = 0.05

// State is the loop's run state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// FrameState is owned by the loop and only mutated by it.
type FrameState struct {
	ElapsedTime float64
	Frames      int64
	State       State
}

// Drawer draws one frame.
type Drawer interface {
	Draw(f Frame)
}

// Host publishes input events and paces frames to the display.
type Host interface {
	// Events delivers input in arrival order. It is drained before every
	// frame on the loop's goroutine.
	Events() <-chan Event
	// NextFrame presents the frame just drawn and returns once the host is
	// ready for the next one. False means the host is closing.
	NextFrame() bool
	// Wait blocks until new input may be available while the loop is
	// stopped. False means the host is closing.
	Wait() bool
}

// Loop advances time, refreshes the uniform store and draws, once per
// frame, while running.
type Loop struct {
	sketch *Sketch
	drawer Drawer
	step   float64
	frame  FrameState
}

// NewLoop creates a stopped loop. A non-positive step selects DefaultStep.
func NewLoop(s *Sketch, d Drawer, step float64) *Loop {
	if step <= 0 {
		step = DefaultStep
	}
	return &Loop{sketch: s, drawer: d, step: step}
}

// Start begins frame production.
func (l *Loop) Start() {
	l.frame.State = Running
}

// Stop halts frame production. A frame already in progress completes.
func (l *Loop) Stop() {
	if l.frame.State == Stopped {
		return
	}
	l.frame.State = Stopped
	log.Printf("Animation stopped at t=%.2f", l.frame.ElapsedTime)
}

// Resume restarts production from the current elapsed time. It reports
// false when the loop was already running.
func (l *Loop) Resume() bool {
	if l.frame.State == Running {
		return false
	}
	l.frame.State = Running
	log.Printf("Animation resumed at t=%.2f", l.frame.ElapsedTime)
	return true
}

// Running reports whether frames are being produced.
func (l *Loop) Running() bool {
	return l.frame.State == Running
}

// State returns a copy of the frame state.
func (l *Loop) State() FrameState {
	return l.frame
}

// Tick runs one iteration: advance time, write the uniforms, draw. It does
// nothing and returns false while stopped.
func (l *Loop) Tick() bool {
	if l.frame.State != Running {
		return false
	}
	l.frame.ElapsedTime += l.step
	l.frame.Frames++
	l.sketch.Sync(l.frame.ElapsedTime)
	if l.drawer != nil {
		l.drawer.Draw(l.sketch.Frame())
	}
	return true
}

// Handle applies one event: play/stop actions drive the loop, everything
// else goes to the sketch.
func (l *Loop) Handle(ev Event) {
	if a, ok := ev.(ActionEvent); ok && a.Action == ActionTogglePlay {
		if l.Running() {
			l.Stop()
		} else {
			l.Resume()
		}
		return
	}
	l.sketch.Handle(ev)
}

// Run drives the loop from host until the host closes or ctx is done.
func (l *Loop) Run(ctx context.Context, host Host) error {
	events := host.Events()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		events = l.drain(events)

		if l.Tick() {
			if !host.NextFrame() {
				return nil
			}
			continue
		}
		if !host.Wait() {
			return nil
		}
	}
}

// drain handles every queued event without blocking. A closed channel is
// returned as nil so later drains skip it.
func (l *Loop) drain(events <-chan Event) <-chan Event {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			l.Handle(ev)
		default:
			return events
		}
	}
}
