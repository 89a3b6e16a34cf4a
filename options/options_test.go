package options

import "testing"

func TestDefaultsValidate(t *testing.T) {
	o := Default()
	if err := o.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if *o.Linear {
		t.Fatalf("sRGB output should be the default")
	}
	*o.Mode = ModeRecord
	if err := o.Validate(); err != nil {
		t.Fatalf("record defaults should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(o *ShaderOptions){
		"mode":     func(o *ShaderOptions) { *o.Mode = "stream" },
		"width":    func(o *ShaderOptions) { *o.Width = 0 },
		"progress": func(o *ShaderOptions) { *o.Progress = 1.5 },
		"step":     func(o *ShaderOptions) { *o.Step = -1 },
		"fps":      func(o *ShaderOptions) { *o.Mode = ModeRecord; *o.FPS = 0 },
		"duration": func(o *ShaderOptions) { *o.Mode = ModeRecord; *o.Duration = 0 },
		"ratio":    func(o *ShaderOptions) { *o.Mode = ModeRecord; *o.PixelRatio = 0 },
		"output":   func(o *ShaderOptions) { *o.Mode = ModeRecord; *o.OutputFile = "" },
		"codec":    func(o *ShaderOptions) { *o.Mode = ModeRecord; *o.Codec = "vp9" },
	}
	for name, mutate := range cases {
		o := Default()
		mutate(o)
		if err := o.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestInteractiveIgnoresRecordSettings(t *testing.T) {
	o := Default()
	*o.FPS = 0
	*o.OutputFile = ""
	if err := o.Validate(); err != nil {
		t.Fatalf("interactive mode should not check record settings: %v", err)
	}
}

func TestTotalFrames(t *testing.T) {
	o := Default()
	*o.Duration, *o.FPS = 2.5, 30
	if n := o.TotalFrames(); n != 75 {
		t.Fatalf("total frames mismatch: got %d, want 75", n)
	}
	*o.Duration = 0.01
	if n := o.TotalFrames(); n != 1 {
		t.Fatalf("partial frame should round up: got %d", n)
	}
}

func TestFramebufferSize(t *testing.T) {
	o := Default()
	*o.Width, *o.Height, *o.PixelRatio = 640, 360, 2
	w, h := o.FramebufferSize()
	if w != 1280 || h != 720 {
		t.Fatalf("framebuffer size mismatch: got %dx%d", w, h)
	}
}
