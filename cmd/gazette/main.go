package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/gazette/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override gazette config path (optional)")
	prefsPath := flag.String("prefs", "", "override gazette prefs path (optional)")
	latencyMS := flag.Int("latency", 0, "simulated source latency in milliseconds (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, PrefsPath: *prefsPath}
	if ms := *latencyMS; ms > 0 {
		opts.LatencyMS = ms
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "gazette: %v\n", err)
		return 1
	}
	return 0
}
