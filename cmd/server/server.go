package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"

	"github.com/marben/irpc"

	mandel "github.com/marben/mandeltiles"
)

// config is shared by every session started by this server.
type config struct {
	addr     string
	tcpAddr  string
	width    int
	height   int
	maxIter  uint
	region   string
	tileSize int
	workers  int
	verbose  bool
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var cfg config
	flag.StringVar(&cfg.addr, "addr", ":8080", "http listen address")
	flag.StringVar(&cfg.tcpAddr, "tcp", ":8081", "irpc tcp listen address (empty disables)")
	flag.IntVar(&cfg.width, "width", 800, "initial frame width")
	flag.IntVar(&cfg.height, "height", 600, "initial frame height")
	flag.UintVar(&cfg.maxIter, "iter", 500, "initial escape bound")
	flag.StringVar(&cfg.region, "region", mandel.FullSet.Name, "initial region: "+strings.Join(mandel.RegionNames(), ", "))
	flag.IntVar(&cfg.tileSize, "tile", mandel.DefaultTileSize, "tile edge length in pixels")
	flag.IntVar(&cfg.workers, "workers", 0, "tiles resolved in parallel per session (0 = GOMAXPROCS)")
	flag.BoolVar(&cfg.verbose, "v", false, "log per-render statistics")
	flag.Parse()

	if cfg.verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if _, err := cfg.initialViewport(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sessions := &sessionTracker{}
	websocketListener, srv := webServer(ctx, cfg, sessions)
	listeners := []net.Listener{websocketListener}

	if cfg.tcpAddr != "" {
		log.Printf("tcp listening on %s", cfg.tcpAddr)
		tcpListener, err := net.Listen("tcp", cfg.tcpAddr)
		if err != nil {
			return fmt.Errorf("net.Listen: %w", err)
		}
		listeners = append(listeners, tcpListener)
	}

	// every listener feeds the same irpc session loop
	for _, l := range listeners {
		go func() {
			if err := serveIrpc(l, cfg, sessions); err != nil {
				log.Printf("serve irpc %s %s: %v", l.Addr().Network(), l.Addr(), err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		log.Printf("shutting down")
		for _, l := range listeners {
			_ = l.Close()
		}
		_ = srv.Close()
	}()

	log.Printf("mb server waiting for websocket and tcp sessions")
	if err := srv.ListenAndServe(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}

// serveIrpc accepts connections from l and serves a fresh render session on
// each. The session service is attached when the endpoint is created, so it
// is in place before the client's first call arrives. A closed listener
// returns nil.
func serveIrpc(l net.Listener, cfg config, sessions *sessionTracker) error {
	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("listener.Accept(): %w", err)
		}

		v, err := cfg.initialViewport()
		if err != nil {
			conn.Close()
			return err
		}

		service := mandel.NewSessionIrpcService(newSession(v, cfg.engineOptions()...))
		ep := irpc.NewEndpoint(conn,
			irpc.WithEndpointServices(service),
			irpc.WithLocalAddress(conn.LocalAddr()),
			irpc.WithRemoteAddress(conn.RemoteAddr()),
		)

		addr := ep.RemoteAddr().String()
		sessions.inc(addr)
		go func() {
			<-ep.Context().Done()
			sessions.dec(addr)
			if cause := context.Cause(ep.Context()); !errors.Is(cause, irpc.ErrEndpointClosedByCounterpart) {
				log.Printf("session %s: %v", addr, cause)
			}
		}()
	}
}

func (cfg config) initialViewport() (mandel.Viewport, error) {
	r, ok := mandel.RegionByName(cfg.region)
	if !ok {
		return mandel.Viewport{}, fmt.Errorf("region %q: %w", cfg.region, mandel.ErrInvalidArgument)
	}
	if cfg.width <= 0 || cfg.height <= 0 || cfg.width > mandel.MaxFrameSide || cfg.height > mandel.MaxFrameSide {
		return mandel.Viewport{}, fmt.Errorf("size %dx%d: %w", cfg.width, cfg.height, mandel.ErrInvalidArgument)
	}
	if cfg.maxIter > mandel.MaxMaxIter {
		return mandel.Viewport{}, fmt.Errorf("iter %d: %w", cfg.maxIter, mandel.ErrInvalidArgument)
	}
	return r.Viewport(cfg.width, cfg.height, uint32(cfg.maxIter)), nil
}

func (cfg config) engineOptions() []mandel.Option {
	return []mandel.Option{
		mandel.WithTileSize(cfg.tileSize),
		mandel.WithWorkers(cfg.workers),
	}
}
