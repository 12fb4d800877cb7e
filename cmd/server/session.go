package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"log"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/mandeltiles"
)

// session is one client's view. It owns its viewport and engine, so the
// tile caches of different clients never mix.
type session struct {
	m        sync.Mutex
	viewport mandel.Viewport
	engine   *mandel.Engine
	fb       *mandel.Framebuffer
	enc      png.Encoder
}

var _ mandel.Session = (*session)(nil)

func newSession(v mandel.Viewport, opts ...mandel.Option) *session {
	return &session{
		viewport: v,
		engine:   mandel.NewEngine(opts...),
		fb:       mandel.NewFramebuffer(v.Width, v.Height),
		enc:      png.Encoder{CompressionLevel: png.BestSpeed},
	}
}

// Do applies cmd and renders the resulting frame. A rejected command is
// reported in FrameInfo.Error and the unchanged view is rendered again.
// Calls are serialized; irpc may run several at once for one endpoint.
func (s *session) Do(ctx context.Context, cmd mandel.Command) (mandel.FrameInfo, []byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	if err := ctx.Err(); err != nil {
		return mandel.FrameInfo{}, nil, err
	}

	next := s.viewport
	applyErr := cmd.Apply(&next)
	if applyErr == nil {
		s.viewport = next
	}

	stats := s.engine.RenderInto(s.fb, s.viewport)
	info := mandel.NewFrameInfo(s.viewport, stats)
	if applyErr != nil {
		info.Error = applyErr.Error()
	}

	var buf bytes.Buffer
	if err := s.enc.Encode(&buf, s.fb); err != nil {
		return info, nil, fmt.Errorf("png encode: %w", err)
	}
	return info, buf.Bytes(), nil
}

// serveJSON answers JSON commands on conn until the client closes the
// connection. Every command gets a FrameInfo text message followed by the
// PNG as one binary message. A normal close returns nil.
func serveJSON(ctx context.Context, conn *websocket.Conn, s mandel.Session) error {
	for {
		var cmd mandel.Command
		if err := wsjson.Read(ctx, conn, &cmd); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		info, frame, err := s.Do(ctx, cmd)
		if err != nil {
			return err
		}
		if err := wsjson.Write(ctx, conn, info); err != nil {
			return fmt.Errorf("write frame info: %w", err)
		}
		if err := conn.Write(ctx, websocket.MessageBinary, frame); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
}

// sessionTracker counts the connected clients.
type sessionTracker struct {
	m      sync.Mutex
	active int
}

func (t *sessionTracker) inc(addr string) {
	t.m.Lock()
	t.active++
	n := t.active
	t.m.Unlock()

	log.Printf("session opened: %s (active: %d)", addr, n)
}

func (t *sessionTracker) dec(addr string) {
	t.m.Lock()
	t.active--
	n := t.active
	t.m.Unlock()

	log.Printf("session closed: %s (active: %d)", addr, n)
}

func (t *sessionTracker) count() int {
	t.m.Lock()
	defer t.m.Unlock()
	return t.active
}
