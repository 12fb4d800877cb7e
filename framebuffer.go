package mandel

import (
	"image"
	"image/color"
)

// Framebuffer is a row-major RGB pixel buffer, 3 bytes per pixel.
// It implements image.Image so it can be handed to image encoders directly.
type Framebuffer struct {
	Width, Height int
	Pix           []byte
}

// NewFramebuffer allocates a black framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// Resize reallocates the buffer if the dimensions changed.
func (f *Framebuffer) Resize(width, height int) {
	if f.Width == width && f.Height == height {
		return
	}
	f.Width, f.Height = width, height
	if n := width * height * 3; cap(f.Pix) >= n {
		f.Pix = f.Pix[:n]
	} else {
		f.Pix = make([]byte, n)
	}
}

// Set writes c at (x, y). The caller guarantees (x, y) is in bounds.
func (f *Framebuffer) Set(x, y int, c RGB) {
	i := (y*f.Width + x) * 3
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
}

// RGBAt returns the color at (x, y).
func (f *Framebuffer) RGBAt(x, y int) RGB {
	i := (y*f.Width + x) * 3
	return RGB{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
}

func (f *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

func (f *Framebuffer) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

func (f *Framebuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return color.RGBA{}
	}
	return f.RGBAt(x, y)
}

// AppendRGBA appends the pixels as opaque RGBA to dst, the layout expected by
// image.RGBA.Pix and GPU texture uploads.
func (f *Framebuffer) AppendRGBA(dst []byte) []byte {
	for i := 0; i+2 < len(f.Pix); i += 3 {
		dst = append(dst, f.Pix[i], f.Pix[i+1], f.Pix[i+2], 0xff)
	}
	return dst
}

// RGBA copies the framebuffer into a new *image.RGBA.
func (f *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	img.Pix = f.AppendRGBA(img.Pix[:0])
	return img
}
