package encoder

import (
	"errors"
	"testing"

	"github.com/richinsley/shaderplane/options"
)

func recordOptions(codec, output string) *options.ShaderOptions {
	o := options.Default()
	*o.Mode = options.ModeRecord
	*o.Width, *o.Height, *o.FPS = 320, 240, 30
	*o.Codec = codec
	*o.OutputFile = output
	return o
}

func TestBuildArgsInput(t *testing.T) {
	in, out := buildArgs(recordOptions("h264", "out.mp4"), 640, 480, "linux")
	if in["f"] != "rawvideo" || in["pix_fmt"] != "rgba" || in["s"] != "640x480" || in["r"] != 30 {
		t.Fatalf("input args mismatch: %v", in)
	}
	if out["vf"] != "vflip" || out["pix_fmt"] != "yuv420p" {
		t.Fatalf("output args mismatch: %v", out)
	}
	if out["c:v"] != "libx264" {
		t.Fatalf("codec mismatch: %v", out["c:v"])
	}
	if _, ok := out["tag:v"]; ok {
		t.Fatalf("h264 must not be tagged: %v", out)
	}
}

func TestBuildArgsHEVC(t *testing.T) {
	_, out := buildArgs(recordOptions("hevc", "clip.MP4"), 64, 64, "linux")
	if out["c:v"] != "libx265" || out["tag:v"] != "hvc1" {
		t.Fatalf("hevc mp4 args mismatch: %v", out)
	}
	_, out = buildArgs(recordOptions("hevc", "clip.mkv"), 64, 64, "linux")
	if _, ok := out["tag:v"]; ok {
		t.Fatalf("only mp4 output is tagged: %v", out)
	}
}

func TestBuildArgsDarwin(t *testing.T) {
	_, out := buildArgs(recordOptions("h264", "out.mp4"), 64, 64, "darwin")
	if out["c:v"] != "h264_videotoolbox" {
		t.Fatalf("darwin codec mismatch: %v", out["c:v"])
	}
	if _, ok := out["crf"]; ok {
		t.Fatalf("videotoolbox does not take crf: %v", out)
	}
}

func TestWriteValidatesFrameSize(t *testing.T) {
	o := recordOptions("h264", "out.mp4")
	*o.PixelRatio = 2
	enc, err := New(o)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if enc.width != 640 || enc.height != 480 {
		t.Fatalf("encoder size must include the pixel ratio: %dx%d", enc.width, enc.height)
	}
	if err := enc.Write(&Frame{Pixels: make([]byte, 10)}); err == nil {
		t.Fatalf("expected size error")
	}
	if err := enc.Write(&Frame{Pixels: make([]byte, 640*480*4)}); !errors.Is(err, ErrClosed) {
		t.Fatalf("write before start should fail with ErrClosed, got %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing an unstarted encoder should succeed: %v", err)
	}
}

func TestNewRequiresOutput(t *testing.T) {
	if _, err := New(recordOptions("h264", "")); err == nil {
		t.Fatalf("expected error without output file")
	}
}
