package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"blogpilot/internal/errors"
)

// Supported subcommands:
// - login:    exchange credentials for a stored session
// - logout:   clear the stored session
// - whoami:   print the stored session
// - credits:  print the credit balance
// - history:  print recharge requests
// - generate: run one generation and wait for its images
// - schedule: print or replace the posting schedule
// - estimate: price a generation locally

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}

	if err := cmd.flags.Parse(args); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", name)
	}

	// estimate needs neither the backend nor a session.
	if cmd.local != nil {
		return cmd.local(os.Stdout)
	}

	var d deps
	app := newApp(ctx, &d)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "initialise")
	}
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	restoreSession(ctx, &d)
	if cmd.needsSession && !d.Session.IsAuthenticated() {
		return errors.New("not logged in; run 'blogctl login' first")
	}

	return cmd.run(ctx, &d, os.Stdout)
}

// restoreSession loads the stored session. An unreadable store leaves the CLI
// logged out.
func restoreSession(ctx context.Context, d *deps) {
	if _, err := d.Session.Restore(ctx); err != nil {
		d.Logger.Warn("Stored session could not be read", slog.Any("error", err))
	}
}

func printUsage() {
	fmt.Println("Usage: blogctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  login       Log in and store the session")
	fmt.Println("  logout      Clear the stored session")
	fmt.Println("  whoami      Show the stored session")
	fmt.Println("  credits     Show the credit balance")
	fmt.Println("  history     Show recharge requests")
	fmt.Println("  generate    Generate a post preview and wait for its images")
	fmt.Println("  schedule    Show or replace the posting schedule")
	fmt.Println("  estimate    Estimate the credit cost of a generation")
	fmt.Println("")
	fmt.Println("Use 'blogctl <command> -h' for more information about a command.")
}
