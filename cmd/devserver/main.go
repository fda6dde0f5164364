package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"expense-client/internal/config"
	"expense-client/internal/devserver"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.DevServer.Host, "host", cfg.DevServer.Host, "Listen host")
	fs.StringVar(&cfg.DevServer.Port, "port", cfg.DevServer.Port, "Listen port")
	fs.StringVar(&cfg.DevServer.DBPath, "db", cfg.DevServer.DBPath, "SQLite database path (:memory: keeps nothing)")
	seed := fs.Bool("seed", cfg.DevServer.SeedDemoData, "Create the demo account with sample expenses")
	seedValue := fs.Uint64("seed-value", 0, "Random seed for demo data (0 picks one)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := cfg.Logging.NewLogger(stderr)

	srv, err := devserver.New(cfg.DevServer, logger)
	if err != nil {
		return err
	}

	if *seed {
		if err := srv.SeedDemoData(ctx, *seedValue); err != nil {
			_ = srv.Close()
			return err
		}
	}

	return srv.ListenAndServe(ctx)
}
