package mandel

import "math"

const (
	// MinZoom is the smallest zoom a Viewport can hold.
	MinZoom = 16

	// MaxZoom is the largest zoom a Viewport can hold. Above it float64 no
	// longer resolves one grid unit around the set.
	MaxZoom = 1 << 52

	// ZoomStep is the zoom factor of one wheel notch.
	ZoomStep = 1.33

	// MinMaxIter is the smallest escape bound a Viewport can hold.
	MinMaxIter = 1

	// MaxMaxIter is the largest escape bound a Viewport can hold.
	MaxMaxIter = 1 << 20
)

// Viewport is the visible window onto the plane.
//
// CenterX and CenterY are integer coordinates in zoom units: the plane value
// of a coordinate c is c / Zoom. One pixel is exactly one unit, so panning is
// lossless integer addition.
type Viewport struct {
	Width, Height    int
	CenterX, CenterY int64
	Zoom             uint64
	MaxIter          uint32
}

// NewViewport returns a viewport with zoom and maxIter clamped to their bounds.
func NewViewport(width, height int, centerX, centerY int64, zoom uint64, maxIter uint32) Viewport {
	return Viewport{
		Width:   width,
		Height:  height,
		CenterX: centerX,
		CenterY: centerY,
		Zoom:    min(max(zoom, MinZoom), MaxZoom),
		MaxIter: min(max(maxIter, MinMaxIter), MaxMaxIter),
	}
}

// TopLeft returns the grid coordinate of pixel (0, 0).
func (v Viewport) TopLeft() (x, y int64) {
	return v.CenterX - int64(v.Width/2), v.CenterY - int64(v.Height/2)
}

// GridToPlane converts an absolute grid coordinate to a plane point.
// The imaginary axis is inverted because screen Y grows downward.
func GridToPlane(x, y int64, zoom uint64) Point {
	z := float64(zoom)
	return Point{Real: float64(x) / z, Imag: -float64(y) / z}
}

// PixelToPlane converts a pixel position to a plane point.
func (v Viewport) PixelToPlane(px, py int) Point {
	x, y := v.TopLeft()
	return GridToPlane(x+int64(px), y+int64(py), v.Zoom)
}

// PlaneToPixel is the inverse of PixelToPlane, rounded to the nearest pixel.
func (v Viewport) PlaneToPixel(p Point) (px, py int) {
	z := float64(v.Zoom)
	px = int(math.Round(p.Real*z)) - int(v.CenterX) + v.Width/2
	py = int(math.Round(-p.Imag*z)) - int(v.CenterY) + v.Height/2
	return px, py
}

// Pan moves the center by a pixel offset.
func (v *Viewport) Pan(dx, dy int64) {
	v.CenterX += dx
	v.CenterY += dy
}

// ZoomAt rescales by ZoomStep^wheelDelta keeping the plane point under the
// cursor fixed. Zoom stays within [MinZoom, MaxZoom]; a zoom below MinZoom,
// as left by a zero Viewport, is read as MinZoom.
func (v *Viewport) ZoomAt(wheelDelta int, cursorX, cursorY int) {
	old := float64(min(max(v.Zoom, MinZoom), MaxZoom))
	next := math.Round(old * math.Pow(ZoomStep, float64(wheelDelta)))
	next = min(max(next, MinZoom), MaxZoom)
	if next == old {
		v.Zoom = uint64(old)
		return
	}

	// offsets in float: (cursor - center) * (next - old) overflows int64 near MaxZoom
	ratio := next / old
	offX := float64(cursorX-v.Width/2) * (ratio - 1)
	offY := float64(cursorY-v.Height/2) * (ratio - 1)
	v.CenterX = int64(math.Round(float64(v.CenterX)*ratio + offX))
	v.CenterY = int64(math.Round(float64(v.CenterY)*ratio + offY))
	v.Zoom = uint64(next)
}

// Resize replaces the pixel dimensions. Center and zoom are kept.
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}

// AdjustMaxIter adds delta to the escape bound, keeping it within
// [MinMaxIter, MaxMaxIter].
func (v *Viewport) AdjustMaxIter(delta int) {
	next := int64(v.MaxIter) + int64(delta)
	v.MaxIter = uint32(min(max(next, MinMaxIter), MaxMaxIter))
}

// Scaled returns a viewport of the given pixel size centered on the same
// plane point. Zoom is rescaled by the smaller of the width and height ratios,
// so the whole region shown by v fits inside the result; when the aspect
// ratios differ the result shows extra margin along one axis. Zoom is still
// clamped to [MinZoom, MaxZoom], so scaling a view near MinZoom down to a much
// smaller frame shows less than v does.
func (v Viewport) Scaled(width, height int) Viewport {
	if v.Width <= 0 || v.Height <= 0 {
		return NewViewport(width, height, v.CenterX, v.CenterY, v.Zoom, v.MaxIter)
	}
	ratio := min(float64(width)/float64(v.Width), float64(height)/float64(v.Height))
	zoom := uint64(math.Round(float64(v.Zoom) * ratio))
	return NewViewport(
		width, height,
		int64(math.Round(float64(v.CenterX)*ratio)),
		int64(math.Round(float64(v.CenterY)*ratio)),
		zoom, v.MaxIter,
	)
}
