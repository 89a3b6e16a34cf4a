package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	initOnce   sync.Once
)

// GetTranslator returns the process-wide shader translator, creating it on
// first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	initOnce.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, initErr
}

// Fragment is a translated fragment shader and the mapped names of its
// variables.
type Fragment struct {
	Code      string
	Variables map[string]gst.ShaderVariable
}

// MappedName returns the translated name of a variable, or the original
// name when the translator did not report it.
func (f *Fragment) MappedName(name string) string {
	if v, ok := f.Variables[name]; ok && v.MappedName != "" {
		return v.MappedName
	}
	return name
}

// TranslateFragment converts a WebGL2 fragment shader to desktop GLSL 4.10.
func TranslateFragment(source string) (*Fragment, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader translator: %w", err)
	}
	out, err := t.TranslateShader(source, "fragment", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("fragment shader translation failed: %w", err)
	}
	return &Fragment{Code: out.Code, Variables: out.Variables}, nil
}
