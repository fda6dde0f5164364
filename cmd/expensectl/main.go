package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"expense-client/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fs := flag.NewFlagSet("expensectl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs) }

	fs.StringVar(&cfg.API.BaseURL, "api", cfg.API.BaseURL, "Backend base URL")
	fs.StringVar(&cfg.Storage.Path, "store", cfg.Storage.Path, "Credential store path")
	fs.StringVar(&cfg.SMS.Platform, "platform", cfg.SMS.Platform, "Platform (android, ios, web)")
	jsonOut := fs.Bool("json", false, "Print JSON instead of tables")
	logLevel := fs.String("log-level", envOr("LOG_LEVEL", "warn"), "Log level")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Logging.Level = *logLevel

	if fs.NArg() == 0 {
		usage(fs)
		return errors.New("missing command")
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		usage(fs)
		return fmt.Errorf("unknown command %q", name)
	}

	a, err := newApp(cfg, stdin, stdout, stderr, *jsonOut)
	if err != nil {
		return err
	}
	defer a.Close()

	return cmd.run(ctx, a, fs.Args()[1:])
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: expensectl [flags] <command> [command flags]")
	fmt.Fprintln(w, "\nCommands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].summary)
	}

	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
