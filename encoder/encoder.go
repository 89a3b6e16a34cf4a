package encoder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"
	"sync"

	"github.com/richinsley/shaderplane/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame is one rendered RGBA frame, bottom row first as glReadPixels
// returns it.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// ErrClosed is returned by Write after Close.
var ErrClosed = errors.New("encoder is closed")

// FFmpegEncoder pipes raw frames into an ffmpeg process.
type FFmpegEncoder struct {
	opts      *options.ShaderOptions
	width     int
	height    int
	frameSize int

	frames chan *Frame
	failed chan struct{}
	done   chan error

	mu      sync.Mutex
	err     error
	started bool
	closed  bool
}

// New prepares an encoder for frames of the recording size in opts.
func New(opts *options.ShaderOptions) (*FFmpegEncoder, error) {
	if *opts.OutputFile == "" {
		return nil, fmt.Errorf("no output file")
	}
	w, h := opts.FramebufferSize()
	return &FFmpegEncoder{
		opts:      opts,
		width:     w,
		height:    h,
		frameSize: w * h * 4,
		frames:    make(chan *Frame, 3),
		failed:    make(chan struct{}),
		done:      make(chan error, 1),
	}, nil
}

// buildArgs returns the ffmpeg input and output arguments for a raw RGBA
// stream of width x height frames.
func buildArgs(opts *options.ShaderOptions, width, height int, goos string) (inputArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", width, height),
		"r":       *opts.FPS,
	}

	// frames arrive bottom row first
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}

	hevc := *opts.Codec == "hevc"
	switch goos {
	case "darwin":
		if hevc {
			outputArgs["c:v"] = "hevc_videotoolbox"
		} else {
			outputArgs["c:v"] = "h264_videotoolbox"
		}
		outputArgs["b:v"] = "25M"
	default:
		if hevc {
			outputArgs["c:v"] = "libx265"
			outputArgs["crf"] = 23
		} else {
			outputArgs["c:v"] = "libx264"
			outputArgs["crf"] = 18
		}
		outputArgs["preset"] = "medium"
	}

	if hevc && strings.HasSuffix(strings.ToLower(*opts.OutputFile), ".mp4") {
		outputArgs["tag:v"] = "hvc1"
	}
	return inputArgs, outputArgs
}

// Start launches ffmpeg and the goroutine feeding it.
func (e *FFmpegEncoder) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return fmt.Errorf("encoder already started")
	}
	e.started = true

	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := buildArgs(e.opts, e.width, e.height, runtime.GOOS)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*e.opts.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if *e.opts.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*e.opts.FFMPEGPath)
	}
	log.Printf("Encoding %dx%d@%d to %s (%s)", e.width, e.height, *e.opts.FPS, *e.opts.OutputFile, outputArgs["c:v"])

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// unblock the writer if ffmpeg exits before reading everything
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	go func() {
		for frame := range e.frames {
			if e.failure() != nil {
				continue
			}
			if _, err := pipeWriter.Write(frame.Pixels); err != nil {
				e.fail(fmt.Errorf("failed to write frame %d to ffmpeg: %w", frame.PTS, err))
			}
		}
		pipeWriter.Close()
		runErr := <-errc
		if err := e.failure(); err != nil && runErr == nil {
			runErr = err
		}
		if runErr != nil {
			runErr = fmt.Errorf("ffmpeg failed: %w", runErr)
		}
		e.done <- runErr
	}()
	return nil
}

func (e *FFmpegEncoder) fail(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err == nil {
		e.err = err
		close(e.failed)
	}
}

func (e *FFmpegEncoder) failure() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Write queues f for encoding. It blocks while the queue is full and
// fails once ffmpeg has stopped accepting input.
func (e *FFmpegEncoder) Write(f *Frame) error {
	if len(f.Pixels) != e.frameSize {
		return fmt.Errorf("frame %d has %d bytes, expected %d", f.PTS, len(f.Pixels), e.frameSize)
	}
	e.mu.Lock()
	if e.closed || !e.started {
		e.mu.Unlock()
		return ErrClosed
	}
	e.mu.Unlock()

	select {
	case e.frames <- f:
		return nil
	case <-e.failed:
		return e.failure()
	}
}

// Close flushes the queued frames and waits for ffmpeg to exit.
func (e *FFmpegEncoder) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	started := e.started
	e.mu.Unlock()

	if !started {
		return nil
	}
	close(e.frames)
	err := <-e.done
	if err == nil {
		log.Printf("Finished writing %s", *e.opts.OutputFile)
	}
	return err
}
