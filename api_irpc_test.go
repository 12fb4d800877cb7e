package mandel

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"

	"github.com/marben/irpc"
)

// frameSession answers with the raw framebuffer of each render.
type frameSession struct {
	v      Viewport
	engine *Engine
	fail   error
}

func (s *frameSession) Do(ctx context.Context, cmd Command) (FrameInfo, []byte, error) {
	if s.fail != nil {
		return FrameInfo{}, nil, s.fail
	}
	if err := ctx.Err(); err != nil {
		return FrameInfo{}, nil, err
	}
	next := s.v
	applyErr := cmd.Apply(&next)
	if applyErr == nil {
		s.v = next
	}
	fb, stats := s.engine.Render(s.v)
	info := NewFrameInfo(s.v, stats)
	if applyErr != nil {
		info.Error = applyErr.Error()
	}
	return info, fb.Pix, nil
}

func sessionClient(t *testing.T, impl Session) *SessionIrpcClient {
	t.Helper()
	serverConn, clientConn := net.Pipe()
	serverEp := irpc.NewEndpoint(serverConn, irpc.WithEndpointServices(NewSessionIrpcService(impl)))
	clientEp := irpc.NewEndpoint(clientConn)
	t.Cleanup(func() {
		clientEp.Close()
		serverEp.Close()
	})

	c, err := NewSessionIrpcClient(clientEp)
	if err != nil {
		t.Fatalf("NewSessionIrpcClient: %v", err)
	}
	return c
}

func TestSessionIrpcRoundTrip(t *testing.T) {
	v := NewViewport(40, 30, -20, 0, 20, 40)
	c := sessionClient(t, &frameSession{v: v, engine: NewEngine(WithTileSize(8))})
	ctx := context.Background()

	info, frame, err := c.Do(ctx, Command{Op: OpRender})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	want, stats := NewEngine(WithTileSize(8)).Render(v)
	if !bytes.Equal(frame, want.Pix) {
		t.Error("frame differs from a local render of the same view")
	}
	if info.Width != 40 || info.Height != 30 || info.CenterX != -20 || info.Zoom != 20 || info.MaxIter != 40 {
		t.Errorf("unexpected frame info %+v", info)
	}
	if info.Tiles != stats.Tiles || info.Evaluations != stats.Evaluations || info.Hits != 0 {
		t.Errorf("expected stats %+v, got %+v", stats, info)
	}

	info, _, err = c.Do(ctx, Command{Op: OpPan, DX: 3, DY: -4})
	if err != nil {
		t.Fatalf("Do pan: %v", err)
	}
	if info.CenterX != -17 || info.CenterY != -4 {
		t.Errorf("expected center (-17, -4), got (%d, %d)", info.CenterX, info.CenterY)
	}

	info, frame, err = c.Do(ctx, Command{Op: OpRegion, Region: "nowhere"})
	if err != nil {
		t.Fatalf("Do region: %v", err)
	}
	if info.Error == "" || len(frame) != 40*30*3 {
		t.Errorf("expected rejected command with a full frame, got %+v (%d bytes)", info, len(frame))
	}
	if info.CenterX != -17 {
		t.Errorf("rejected command moved the view: %+v", info)
	}
}

func TestSessionIrpcError(t *testing.T) {
	c := sessionClient(t, &frameSession{fail: errors.New("png encode: short write")})

	_, frame, err := c.Do(context.Background(), Command{Op: OpRender})
	if err == nil || err.Error() != "png encode: short write" {
		t.Errorf("expected the session error, got %v", err)
	}
	if len(frame) != 0 {
		t.Errorf("expected no frame, got %d bytes", len(frame))
	}
}
