package options

import (
	"fmt"
	"math"
)

const (
	ModeInteractive = "interactive"
	ModeRecord      = "record"
)

// ShaderOptions holds the command line settings. Fields are pointers so
// they can be bound directly to flag definitions.
type ShaderOptions struct {
	Help       *bool
	Mode       *string
	Width      *int
	Height     *int
	FPS        *int
	Duration   *float64
	OutputFile *string
	FFMPEGPath *string
	Codec      *string
	Matcap     *string  // optional matcap image; a neutral gray is used without one
	ClearColor *string  // background as #rrggbb
	Linear     *bool    // write shader output as-is instead of sRGB-encoding it
	Progress   *float64 // initial value of the progress slider
	Step       *float64 // time advanced per frame
	PixelRatio *float64 // record mode only; the window reports its own ratio
	Paused     *bool
}

// Default returns options populated with the default values, for callers
// that do not go through flag parsing.
func Default() *ShaderOptions {
	help := false
	mode := ModeInteractive
	width, height, fps := 1280, 720, 60
	duration := 10.0
	output := "output.mp4"
	ffmpegPath := ""
	codec := "h264"
	matcap := ""
	clearColor := "#eeeeee"
	linear := false
	progress := 0.0
	step := 0.05
	pixelRatio := 1.0
	paused := false
	return &ShaderOptions{
		Help:       &help,
		Mode:       &mode,
		Width:      &width,
		Height:     &height,
		FPS:        &fps,
		Duration:   &duration,
		OutputFile: &output,
		FFMPEGPath: &ffmpegPath,
		Codec:      &codec,
		Matcap:     &matcap,
		ClearColor: &clearColor,
		Linear:     &linear,
		Progress:   &progress,
		Step:       &step,
		PixelRatio: &pixelRatio,
		Paused:     &paused,
	}
}

// Validate checks the options for values the renderer cannot use.
func (o *ShaderOptions) Validate() error {
	switch *o.Mode {
	case ModeInteractive, ModeRecord:
	default:
		return fmt.Errorf("invalid mode %q, expected %q or %q", *o.Mode, ModeInteractive, ModeRecord)
	}
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *o.Width, *o.Height)
	}
	if *o.Progress < 0 || *o.Progress > 1 {
		return fmt.Errorf("progress must be within [0, 1], got %g", *o.Progress)
	}
	if *o.Step < 0 {
		return fmt.Errorf("step must not be negative, got %g", *o.Step)
	}
	if *o.Mode != ModeRecord {
		return nil
	}
	if *o.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *o.FPS)
	}
	if *o.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", *o.Duration)
	}
	if *o.PixelRatio <= 0 {
		return fmt.Errorf("pixel ratio must be positive, got %g", *o.PixelRatio)
	}
	if *o.OutputFile == "" {
		return fmt.Errorf("record mode requires an output file")
	}
	switch *o.Codec {
	case "h264", "hevc":
	default:
		return fmt.Errorf("unsupported codec %q", *o.Codec)
	}
	return nil
}

// TotalFrames is the number of frames a recording of Duration at FPS
// contains.
func (o *ShaderOptions) TotalFrames() int {
	return int(math.Ceil(*o.Duration * float64(*o.FPS)))
}

// FramebufferSize is the recording size in pixels.
func (o *ShaderOptions) FramebufferSize() (int, int) {
	return int(math.Round(float64(*o.Width) * *o.PixelRatio)), int(math.Round(float64(*o.Height) * *o.PixelRatio))
}
