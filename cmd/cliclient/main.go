// cliclient connects to the Mandelbrot server, replays the commands given on
// the command line and saves the last frame as a PNG file.
//
//	cliclient -out valley.png region:seahorse zoom:2:400:300 iter:500
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	mandel "github.com/marben/mandeltiles"
)

func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/irpc", "server irpc endpoint (ws://host/irpc or tcp://host:port)")
	out := flag.String("out", "mandel.png", "output PNG file")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall time limit")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"render"}
	}
	cmds := make([]mandel.Command, 0, len(args))
	for _, a := range args {
		cmd, err := parseCommand(a)
		if err != nil {
			return err
		}
		cmds = append(cmds, cmd)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	log.Printf("Connecting to Mandelbrot server at %s...", *addr)
	c, err := dial(ctx, *addr)
	if err != nil {
		return err
	}
	defer c.close()

	var frame []byte
	for _, cmd := range cmds {
		info, f, err := c.do(ctx, cmd)
		if err != nil {
			return err
		}
		if info.Error != "" {
			return fmt.Errorf("server rejected %s: %s", cmd.Op, info.Error)
		}
		log.Printf("%s: %dx%d zoom %d iter %d, %d tiles (%d cached), %d evaluations in %dms",
			cmd.Op, info.Width, info.Height, info.Zoom, info.MaxIter,
			info.Tiles, info.Hits, info.Evaluations, info.ElapsedMS)
		frame = f
	}

	log.Printf("Saving rendered image to %q...", *out)
	if err := os.WriteFile(*out, frame, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Printf("Fully rendered image saved to %q", *out)
	return nil
}
