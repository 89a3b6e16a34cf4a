package renderer

import (
	"image"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/shaderplane/inputs"
)

// Texture is a 2D texture uploaded from an RGBA image.
type Texture struct {
	id     uint32
	width  int32
	height int32
}

// NewTexture uploads img. With srgb set the texels are stored as
// SRGB8_ALPHA8 so sampling yields linear values.
func NewTexture(img *image.RGBA, srgb bool, wrap, filter string) *Texture {
	t := &Texture{
		width:  int32(img.Rect.Dx()),
		height: int32(img.Rect.Dy()),
	}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	var internalFormat int32 = gl.RGBA8
	if srgb {
		internalFormat = gl.SRGB8_ALPHA8
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, getWrapMode(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, getWrapMode(wrap))
	minFilter, magFilter := getFilterMode(filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, t.width, t.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if filter == "mipmap" {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// LoadMatcap uploads the matcap at path. An empty path or an unreadable
// file yields the neutral gray texture.
func LoadMatcap(path string) *Texture {
	img := inputs.NeutralImage()
	if path != "" {
		src, err := inputs.LoadImage(path)
		if err != nil {
			log.Printf("Warning: %v, using neutral matcap", err)
		} else {
			img = inputs.PrepareImage(src, inputs.MaxTextureSize)
		}
	}
	return NewTexture(img, true, "clamp", "mipmap")
}

// Bind binds the texture to the active unit.
func (t *Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Size returns the texture size in texels.
func (t *Texture) Size() (int, int) {
	return int(t.width), int(t.height)
}

func (t *Texture) Destroy() {
	gl.DeleteTextures(1, &t.id)
}

// getWrapMode maps a wrap name to its GL constant.
func getWrapMode(wrap string) int32 {
	switch wrap {
	case "repeat":
		return gl.REPEAT
	case "clamp":
		return gl.CLAMP_TO_EDGE
	default:
		return gl.REPEAT
	}
}

// getFilterMode maps a filter name to GL min and mag filters.
func getFilterMode(filter string) (minFilter, magFilter int32) {
	switch filter {
	case "mipmap":
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	case "linear":
		return gl.LINEAR, gl.LINEAR
	case "nearest":
		return gl.NEAREST, gl.NEAREST
	default:
		return gl.LINEAR, gl.LINEAR
	}
}
