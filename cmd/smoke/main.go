package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/laneboard/internal/smoke"
	"github.com/okian/laneboard/pkg/logger"
)

// Default configuration constants.
const (
	defaultMoves      = 200
	defaultTimeout    = 10 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8090", "Base URL of the service")
		moves   = flag.Int("moves", defaultMoves, "Number of move requests to issue")
		seed    = flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose = flag.Bool("verbose", false, "Log every move")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &smoke.Config{
		BaseURL: *baseURL,
		Moves:   *moves,
		Seed:    *seed,
		Timeout: *timeout,
		Verbose: *verbose,
	}

	if err := smoke.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("smoke run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
