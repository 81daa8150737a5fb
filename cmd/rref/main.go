// Command rref reads a matrix from the terminal (or a file) and prints its
// reduced row echelon form.
//
// Usage:
//
//	rref [-eps 1e-9] [-precision 3] [-file matrix.txt] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/rref/internal/config"
	"github.com/katalvlaran/rref/internal/console"
	"github.com/katalvlaran/rref/matrix"
)

const (
	title         = "Matrix RREF Calculator"
	titleOriginal = "Original Matrix"
	titleReduced  = "Reduced Row Echelon Form (RREF)"
	msgNoMatrix   = "No matrix entered."
	msgCancelled  = "\nCalculation cancelled by user."
	msgUnexpected = "\nAn unexpected error occurred: %v\n"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without process globals. Everything meant for the user,
// diagnostics included, goes to stdout; stderr only carries usage text and
// debug logs.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if cfg.Verbose {
		matrix.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer matrix.SetLogger(nil)
	}

	fmt.Fprintln(stdout, title)
	fmt.Fprintln(stdout, strings.Repeat("=", len(title)))

	err = calculate(ctx, cfg, stdin, stdout)
	switch {
	case err == nil:
		return exitOK
	case isCancelled(err):
		fmt.Fprintln(stdout, msgCancelled)
		return exitOK
	default:
		fmt.Fprintf(stdout, msgUnexpected, err)
		return exitError
	}
}

func calculate(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	rows, err := acquire(ctx, cfg, stdin, stdout)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(stdout, msgNoMatrix)
		return nil
	}

	if err = console.Render(stdout, titleOriginal, rows, cfg.Precision); err != nil {
		return err
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return err
	}
	reduced, err := matrix.RREFContext(ctx, m, cfg.Options()...)
	if err != nil {
		return err
	}

	return console.Render(stdout, titleReduced, reduced.ToRows(), cfg.Precision)
}

type readResult struct {
	rows [][]float64
	err  error
}

// acquire reads the matrix from cfg.File or interactively. The interactive
// read runs in its own goroutine so that an interrupt is honoured while the
// prompter is blocked on stdin.
func acquire(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer) ([][]float64, error) {
	if cfg.File != "" {
		return console.ReadMatrixFile(cfg.File)
	}

	done := make(chan readResult, 1)
	go func() {
		rows, err := console.NewPrompter(stdin, stdout).ReadMatrix(ctx)
		done <- readResult{rows: rows, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", console.ErrCancelled, ctx.Err())
	case res := <-done:
		return res.rows, res.err
	}
}

func isCancelled(err error) bool {
	return errors.Is(err, console.ErrCancelled) ||
		errors.Is(err, context.Canceled)
}
