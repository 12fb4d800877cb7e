package main

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

//go:embed static
var staticFiles embed.FS

// webServer creates the server serving the embedded viewer page, the JSON
// session endpoint /ws and the irpc endpoint /irpc. Connections upgraded on
// /irpc are handed to the returned listener.
func webServer(ctx context.Context, cfg config, sessions *sessionTracker) (*WebsocketListener, *http.Server) {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // embedded at build time
	}

	l := NewWSListener(ctx, cfg.addr+"/irpc")
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", jsonHandler(cfg, sessions))
	mux.HandleFunc("/irpc", irpcHandler(l))
	mux.Handle("/", http.FileServer(http.FS(static)))

	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	log.Printf("listening on http://localhost%s", cfg.addr)
	return l, srv
}

func acceptWebsocket(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: restrict to the served host once the viewer is deployed behind a proxy
	})
}

// jsonHandler upgrades the request and runs one JSON render session on it
// until the client goes away.
func jsonHandler(cfg config, sessions *sessionTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := acceptWebsocket(w, r)
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		v, err := cfg.initialViewport()
		if err != nil {
			c.Close(websocket.StatusInternalError, err.Error())
			return
		}

		sessions.inc(r.RemoteAddr)
		defer sessions.dec(r.RemoteAddr)

		s := newSession(v, cfg.engineOptions()...)
		if err := serveJSON(r.Context(), c, s); err != nil {
			log.Printf("session %s: %v", r.RemoteAddr, err)
			c.Close(websocket.StatusInternalError, "session failed")
			return
		}
		c.Close(websocket.StatusNormalClosure, "")
	}
}

// irpcHandler upgrades the request and passes the connection on to l, where
// it is accepted as an irpc connection.
func irpcHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := acceptWebsocket(w, r)
		if err != nil {
			log.Println(err)
			return
		}

		select {
		case l.ch <- acceptedWS{conn: c, remote: r.RemoteAddr}:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

type acceptedWS struct {
	conn   *websocket.Conn
	remote string
}

// WebsocketListener implements net.Listener over upgraded websocket
// connections. Accepted connections carry binary messages.
type WebsocketListener struct {
	ch     chan acceptedWS
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan acceptedWS),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case a := <-l.ch:
		return wsConn{
			Conn:   websocket.NetConn(l.ctx, a.conn, websocket.MessageBinary),
			remote: wsAddr{addr: a.remote},
		}, nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsConn reports the http client address as its remote address.
type wsConn struct {
	net.Conn
	remote wsAddr
}

func (c wsConn) RemoteAddr() net.Addr { return c.remote }

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
