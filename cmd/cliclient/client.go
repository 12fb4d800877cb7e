package main

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/marben/mandeltiles"
)

// client drives one render session on the server over irpc.
type client struct {
	ep      *irpc.Endpoint
	session *mandel.SessionIrpcClient
}

// dial connects to addr, either a websocket URL (ws://, wss://) or a raw tcp
// address written as tcp://host:port. ctx bounds the whole connection.
func dial(ctx context.Context, addr string) (*client, error) {
	conn, err := dialConn(ctx, addr)
	if err != nil {
		return nil, err
	}

	ep := irpc.NewEndpoint(conn)
	session, err := mandel.NewSessionIrpcClient(ep)
	if err != nil {
		ep.Close()
		return nil, fmt.Errorf("NewSessionIrpcClient: %w", err)
	}
	return &client{ep: ep, session: session}, nil
}

func dialConn(ctx context.Context, addr string) (net.Conn, error) {
	switch {
	case strings.HasPrefix(addr, "ws://"), strings.HasPrefix(addr, "wss://"):
		ws, _, err := websocket.Dial(ctx, addr, nil)
		if err != nil {
			return nil, fmt.Errorf("websocket.Dial %s: %w", addr, err)
		}
		return websocket.NetConn(ctx, ws, websocket.MessageBinary), nil
	case strings.HasPrefix(addr, "tcp://"):
		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", strings.TrimPrefix(addr, "tcp://"))
		if err != nil {
			return nil, fmt.Errorf("net.Dial %s: %w", addr, err)
		}
		return conn, nil
	}
	return nil, fmt.Errorf("address %q: want ws://, wss:// or tcp://: %w", addr, mandel.ErrInvalidArgument)
}

// do sends cmd and returns the frame the server answers with.
func (c *client) do(ctx context.Context, cmd mandel.Command) (mandel.FrameInfo, []byte, error) {
	info, frame, err := c.session.Do(ctx, cmd)
	if err != nil {
		return info, nil, fmt.Errorf("%s: %w", cmd.Op, err)
	}
	return info, frame, nil
}

func (c *client) close() error {
	return c.ep.Close()
}

// parseCommand parses the command line form of a session command:
//
//	render
//	pan:DX:DY
//	zoom:DELTA:X:Y
//	iter:DELTA
//	resize:WIDTH:HEIGHT
//	region:NAME
func parseCommand(s string) (mandel.Command, error) {
	parts := strings.Split(s, ":")
	cmd := mandel.Command{Op: parts[0]}
	args := parts[1:]

	want := map[string]int{
		mandel.OpRender: 0,
		mandel.OpPan:    2,
		mandel.OpZoom:   3,
		mandel.OpIter:   1,
		mandel.OpResize: 2,
		mandel.OpRegion: 1,
	}
	n, ok := want[cmd.Op]
	if !ok {
		return cmd, fmt.Errorf("%q: %w", s, mandel.ErrUnknownOp)
	}
	if len(args) != n {
		return cmd, fmt.Errorf("%q: expected %d arguments, got %d: %w", s, n, len(args), mandel.ErrInvalidArgument)
	}
	if cmd.Op == mandel.OpRegion {
		cmd.Region = args[0]
		return cmd, nil
	}

	nums := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return cmd, fmt.Errorf("%q: %w", s, mandel.ErrInvalidArgument)
		}
		nums[i] = v
	}
	switch cmd.Op {
	case mandel.OpPan:
		cmd.DX, cmd.DY = nums[0], nums[1]
	case mandel.OpZoom:
		cmd.Delta, cmd.X, cmd.Y = int(nums[0]), int(nums[1]), int(nums[2])
	case mandel.OpIter:
		cmd.Delta = int(nums[0])
	case mandel.OpResize:
		cmd.Width, cmd.Height = int(nums[0]), int(nums[1])
	}
	return cmd, nil
}
