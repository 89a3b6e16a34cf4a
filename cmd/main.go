package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/richinsley/shaderplane/encoder"
	"github.com/richinsley/shaderplane/glfwcontext"
	"github.com/richinsley/shaderplane/options"
	"github.com/richinsley/shaderplane/renderer"
	"github.com/richinsley/shaderplane/sketch"
)

func runInteractive(ctx context.Context, opts *options.ShaderOptions) error {
	window, err := glfwcontext.New(*opts.Width, *opts.Height, "shaderplane", true)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Shutdown()

	r, err := renderer.NewRenderer(window)
	if err != nil {
		return err
	}
	defer r.Shutdown()
	r.SetOutputSRGB(!*opts.Linear)
	if err := r.SetClearColor(*opts.ClearColor, 1); err != nil {
		return err
	}
	if _, err := r.LoadScene(opts); err != nil {
		return err
	}

	s := sketch.New(r)
	s.SetProgress(*opts.Progress)
	loop := sketch.NewLoop(s, r, *opts.Step)
	if !*opts.Paused {
		loop.Start()
	}

	// wake a stopped loop so it sees the cancellation
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			glfwcontext.Wake()
		case <-done:
		}
	}()

	log.Println("Starting interactive render loop...")
	return loop.Run(ctx, window)
}

func runRecord(ctx context.Context, opts *options.ShaderOptions) error {
	window, err := glfwcontext.New(*opts.Width, *opts.Height, "shaderplane", false)
	if err != nil {
		return fmt.Errorf("failed to create context: %w", err)
	}
	defer window.Shutdown()

	r, err := renderer.NewRenderer(window)
	if err != nil {
		return err
	}
	defer r.Shutdown()
	r.SetOutputSRGB(!*opts.Linear)
	if err := r.SetClearColor(*opts.ClearColor, 1); err != nil {
		return err
	}
	if _, err := r.LoadScene(opts); err != nil {
		return err
	}

	fbWidth, fbHeight := opts.FramebufferSize()
	target, err := renderer.NewOffscreenTarget(fbWidth, fbHeight)
	if err != nil {
		return err
	}
	defer target.Destroy()
	r.SetRenderTarget(target)

	enc, err := encoder.New(opts)
	if err != nil {
		return err
	}
	if err := enc.Start(); err != nil {
		return err
	}

	s := sketch.New(r)
	s.SetProgress(*opts.Progress)
	s.Panel.Hidden = true
	loop := sketch.NewLoop(s, r, *opts.Step)
	loop.Start()

	total := opts.TotalFrames()
	host := renderer.NewRecordHost(target, enc, *opts.Width, *opts.Height, *opts.PixelRatio, total, *opts.FPS)
	log.Printf("Recording %d frames to %s...", total, *opts.OutputFile)

	runErr := loop.Run(ctx, host)
	closeErr := enc.Close()
	if runErr != nil {
		return runErr
	}
	if err := host.Err(); err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}
	log.Printf("Successfully rendered %d frames to %s", host.Frames(), *opts.OutputFile)
	return nil
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.ShaderOptions{
		Help:       flag.Bool("help", false, "Show help message"),
		Mode:       flag.String("mode", options.ModeInteractive, "Run mode: 'interactive' or 'record'"),
		Width:      flag.Int("width", 1280, "Width of the window or output"),
		Height:     flag.Int("height", 720, "Height of the window or output"),
		FPS:        flag.Int("fps", 60, "Frames per second for recording"),
		Duration:   flag.Float64("duration", 10.0, "Duration to record in seconds"),
		OutputFile: flag.String("output", "output.mp4", "Output file name for recording"),
		FFMPEGPath: flag.String("ffmpeg", "", "Path to ffmpeg executable"),
		Codec:      flag.String("codec", "h264", "Video codec for recording: 'h264' or 'hevc'"),
		Matcap:     flag.String("matcap", "", "Matcap image (PNG or JPEG)"),
		ClearColor: flag.String("clear", renderer.DefaultClearColor, "Background color"),
		Linear:     flag.Bool("linear", false, "Disable sRGB encoding of the output"),
		Progress:   flag.Float64("progress", 0, "Initial progress value in [0, 1]"),
		Step:       flag.Float64("step", sketch.DefaultStep, "Time advanced per frame"),
		PixelRatio: flag.Float64("pixelratio", 1, "Pixel ratio of the recording"),
		Paused:     flag.Bool("paused", false, "Start with the animation stopped"),
	}
	flag.Parse()

	if *opts.Help {
		fmt.Println("Shader plane viewer/recorder")
		flag.PrintDefaults()
		return
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize graphics: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	if *opts.Mode == options.ModeRecord {
		err = runRecord(ctx, opts)
	} else {
		err = runInteractive(ctx, opts)
	}
	if err != nil && ctx.Err() == nil {
		// log.Fatalf would skip the deferred terminate
		glfwcontext.TerminateGraphics()
		log.Fatalf("Error: %v", err)
	}
}
