package mandel

import (
	"context"
	"errors"
	"fmt"
)

//go:generate irpc

// Command ops understood by a render session.
const (
	OpRender = "render"
	OpPan    = "pan"
	OpZoom   = "zoom"
	OpResize = "resize"
	OpIter   = "iter"
	OpRegion = "region"
)

var (
	ErrUnknownOp       = errors.New("unknown op")
	ErrInvalidArgument = errors.New("invalid argument")
)

const (
	// MaxFrameSide bounds the width and height a session may request.
	MaxFrameSide = 4096

	// MaxZoomDelta bounds the wheel notches of one zoom command. It is enough
	// to cross the whole range from MinZoom to MaxZoom.
	MaxZoomDelta = 128
)

// Session is a remote render session. Each Do applies cmd to the session's
// viewport and answers with the resulting frame as PNG. A rejected command is
// reported in FrameInfo.Error with the unchanged view; the error return is
// reserved for transport and encoding failures.
type Session interface {
	Do(ctx context.Context, cmd Command) (FrameInfo, []byte, error)
}

// Command is a viewport mutation sent by a client. Every command is answered
// with a FrameInfo followed by one binary PNG message.
type Command struct {
	Op string `json:"op"`

	// pan
	DX int64 `json:"dx,omitempty"`
	DY int64 `json:"dy,omitempty"`

	// zoom (Delta in wheel notches, X/Y cursor pixel) and iter (Delta)
	Delta int `json:"delta,omitempty"`
	X     int `json:"x,omitempty"`
	Y     int `json:"y,omitempty"`

	// resize
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// region
	Region string `json:"region,omitempty"`
}

// Apply mutates v according to the command.
func (c Command) Apply(v *Viewport) error {
	switch c.Op {
	case OpRender:
	case OpPan:
		v.Pan(c.DX, c.DY)
	case OpZoom:
		if c.Delta < -MaxZoomDelta || c.Delta > MaxZoomDelta {
			return fmt.Errorf("zoom by %d: %w", c.Delta, ErrInvalidArgument)
		}
		v.ZoomAt(c.Delta, c.X, c.Y)
	case OpIter:
		if c.Delta < -MaxMaxIter || c.Delta > MaxMaxIter {
			return fmt.Errorf("iter by %d: %w", c.Delta, ErrInvalidArgument)
		}
		v.AdjustMaxIter(c.Delta)
	case OpResize:
		if c.Width <= 0 || c.Height <= 0 || c.Width > MaxFrameSide || c.Height > MaxFrameSide {
			return fmt.Errorf("resize %dx%d: %w", c.Width, c.Height, ErrInvalidArgument)
		}
		v.Resize(c.Width, c.Height)
	case OpRegion:
		r, ok := RegionByName(c.Region)
		if !ok {
			return fmt.Errorf("region %q: %w", c.Region, ErrInvalidArgument)
		}
		*v = r.Viewport(v.Width, v.Height, v.MaxIter)
	default:
		return fmt.Errorf("%q: %w", c.Op, ErrUnknownOp)
	}
	return nil
}

// FrameInfo describes the frame that follows it on the wire.
type FrameInfo struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	CenterX int64  `json:"centerX"`
	CenterY int64  `json:"centerY"`
	Zoom    uint64 `json:"zoom"`
	MaxIter uint32 `json:"maxIter"`

	Tiles       int   `json:"tiles"`
	Hits        int   `json:"hits"`
	Evaluations int   `json:"evaluations"`
	ElapsedMS   int64 `json:"elapsedMs"`

	// Error is set when the command was rejected; the frame is then the
	// unchanged previous view.
	Error string `json:"error,omitempty"`
}

// NewFrameInfo builds the frame description for v rendered with s.
func NewFrameInfo(v Viewport, s Stats) FrameInfo {
	return FrameInfo{
		Width:       v.Width,
		Height:      v.Height,
		CenterX:     v.CenterX,
		CenterY:     v.CenterY,
		Zoom:        v.Zoom,
		MaxIter:     v.MaxIter,
		Tiles:       s.Tiles,
		Hits:        s.Hits,
		Evaluations: s.Evaluations,
		ElapsedMS:   s.Elapsed.Milliseconds(),
	}
}
