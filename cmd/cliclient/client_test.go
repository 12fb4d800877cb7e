package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/marben/mandeltiles"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want mandel.Command
	}{
		{"render", mandel.Command{Op: mandel.OpRender}},
		{"pan:10:-5", mandel.Command{Op: mandel.OpPan, DX: 10, DY: -5}},
		{"zoom:3:400:300", mandel.Command{Op: mandel.OpZoom, Delta: 3, X: 400, Y: 300}},
		{"iter:-100", mandel.Command{Op: mandel.OpIter, Delta: -100}},
		{"resize:640:480", mandel.Command{Op: mandel.OpResize, Width: 640, Height: 480}},
		{"region:seahorse", mandel.Command{Op: mandel.OpRegion, Region: "seahorse"}},
	}
	for _, tt := range tests {
		got, err := parseCommand(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %+v, got %+v", tt.in, tt.want, got)
		}
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"fly", mandel.ErrUnknownOp},
		{"pan:1", mandel.ErrInvalidArgument},
		{"zoom:a:1:2", mandel.ErrInvalidArgument},
		{"render:1", mandel.ErrInvalidArgument},
	}
	for _, tt := range tests {
		if _, err := parseCommand(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, err)
		}
	}
}

// echoSession answers every command with a FrameInfo carrying the op as
// error text and a fixed payload.
type echoSession struct{}

func (echoSession) Do(_ context.Context, cmd mandel.Command) (mandel.FrameInfo, []byte, error) {
	if cmd.Op == "fail" {
		return mandel.FrameInfo{}, nil, errors.New("render failed")
	}
	return mandel.FrameInfo{Width: 3, Error: cmd.Op}, []byte("frame"), nil
}

func serveEcho(conn net.Conn) {
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(mandel.NewSessionIrpcService(echoSession{})))
	<-ep.Context().Done()
}

func echoWebsocketServer(t *testing.T) string {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		serveEcho(websocket.NetConn(r.Context(), c, websocket.MessageBinary))
	}))
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func echoTCPServer(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			go serveEcho(conn)
		}
	}()
	return "tcp://" + l.Addr().String()
}

func TestClientDo(t *testing.T) {
	for name, addr := range map[string]string{
		"websocket": echoWebsocketServer(t),
		"tcp":       echoTCPServer(t),
	} {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			c, err := dial(ctx, addr)
			if err != nil {
				t.Fatalf("dial: %v", err)
			}
			defer c.close()

			info, frame, err := c.do(ctx, mandel.Command{Op: mandel.OpPan, DX: 1})
			if err != nil {
				t.Fatalf("do: %v", err)
			}
			if info.Width != 3 || info.Error != mandel.OpPan {
				t.Errorf("unexpected frame info %+v", info)
			}
			if string(frame) != "frame" {
				t.Errorf("expected frame payload, got %q", frame)
			}

			if _, _, err := c.do(ctx, mandel.Command{Op: "fail"}); err == nil || !strings.Contains(err.Error(), "render failed") {
				t.Errorf("expected the session error, got %v", err)
			}
		})
	}
}

func TestDialRejectsUnknownScheme(t *testing.T) {
	if _, err := dial(context.Background(), "http://localhost:8080"); !errors.Is(err, mandel.ErrInvalidArgument) {
		t.Errorf("expected %v, got %v", mandel.ErrInvalidArgument, err)
	}
}
