// Package cli implements the line-oriented conversion session behind the
// rotary CLI commands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/rotary"
	"github.com/aretw0/rotary/internal/presentation/tui"
	"golang.org/x/term"
)

// RunOptions configures a conversion session.
type RunOptions struct {
	// CatalogPath points at a YAML catalog file. Empty selects the
	// standard historical catalog.
	CatalogPath string

	// Textbook switches to the textbook double-stepping rule.
	Textbook bool

	// Debug enables structured logging to stderr.
	Debug bool

	// In and Out default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer
}

// RunSession reads input line by line: settings lines (starting with "*")
// reconfigure the machine, every other line is converted and printed. The
// first line must be a settings line.
func RunSession(opts RunOptions) error {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	engine, err := newEngine(opts)
	if err != nil {
		return err
	}

	// Only decorate genuinely interactive sessions; piped input stays clean.
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		tui.PrintBanner(rotary.Version)
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		converted, emit, err := engine.Process(scanner.Text())
		if err != nil {
			return err
		}
		if emit {
			fmt.Fprintln(out, converted)
		}
	}
	return scanner.Err()
}

func newEngine(opts RunOptions) (*rotary.Engine, error) {
	engineOpts := []rotary.Option{
		rotary.WithLogger(createLogger(opts.Debug)),
	}
	if opts.CatalogPath != "" {
		engineOpts = append(engineOpts, rotary.WithCatalogFile(opts.CatalogPath))
	}
	if opts.Textbook {
		engineOpts = append(engineOpts, rotary.WithTextbookStepping())
	}
	return rotary.New(engineOpts...)
}
