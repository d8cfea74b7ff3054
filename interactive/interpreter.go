// Package interactive drives the command loop: it waits on the stdin
// stream, reads one line at a time, and dispatches to registered command
// handlers. A signal watcher cancels the input wait for clean shutdown.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/midbg/midbg/core"
	"github.com/midbg/midbg/handlers"
	"github.com/midbg/midbg/resources"
	"github.com/midbg/midbg/stdinstream"
)

// Interpreter runs the interactive command loop
type Interpreter struct {
	logger    *core.Logger
	reader    *stdinstream.Reader
	registry  *handlers.Registry
	res       *resources.Store
	out       io.Writer
	prompt    string
	version   string
	sessionID string
	startedAt time.Time
	quitting  bool
}

// NewInterpreter creates an interpreter over the given reader and
// registers the built-in commands
func NewInterpreter(logger *core.Logger, reader *stdinstream.Reader, registry *handlers.Registry, res *resources.Store, version string) *Interpreter {
	i := &Interpreter{
		logger:    logger,
		reader:    reader,
		registry:  registry,
		res:       res,
		out:       os.Stdout,
		prompt:    "(midbg) ",
		version:   version,
		sessionID: uuid.New().String(),
		startedAt: time.Now(),
	}
	i.registerBuiltins()
	return i
}

// SetOutput redirects interpreter output, used by tests
func (i *Interpreter) SetOutput(w io.Writer) {
	i.out = w
}

// SetPrompt updates the prompt
func (i *Interpreter) SetPrompt(prompt string) {
	i.prompt = prompt
}

// Run executes the consume loop until end of input, interruption, or an
// exit command. It owns the reader's consumer role; WatchSignals (or any
// other goroutine) may cancel the wait concurrently.
func (i *Interpreter) Run(ctx context.Context) error {
	fmt.Fprintf(i.out, "midbg %s  session %s\n", i.version, i.sessionID)
	fmt.Fprintln(i.out, "Type 'help' for available commands")

	for {
		fmt.Fprint(i.out, i.prompt)

		available, err := i.reader.WaitForInput()
		if err != nil {
			if errors.Is(err, stdinstream.ErrInterrupted) {
				fmt.Fprintln(i.out)
				i.logger.Info("input wait interrupted, leaving command loop")
				return nil
			}
			return fmt.Errorf("waiting for input: %w", err)
		}
		if !available {
			continue
		}

		line, err := i.reader.ReadLine()
		if err != nil {
			return fmt.Errorf("reading command line: %w", err)
		}
		if line == nil {
			// End of input.
			fmt.Fprintln(i.out)
			return nil
		}

		fields := strings.Fields(string(line))
		if len(fields) == 0 {
			continue
		}

		handler, ok := i.registry.Get(fields[0])
		if !ok {
			fmt.Fprintln(i.out, i.res.Format(resources.MsgCmdUnknown, fields[0]))
			continue
		}
		if err := handler.Execute(ctx, fields[1:]); err != nil {
			fmt.Fprintf(i.out, "[!] Error: %v\n", err)
		}
		if i.quitting {
			return nil
		}
	}
}

// WatchSignals cancels the input wait when SIGINT or SIGTERM arrives.
// The returned stop function releases the signal registration.
func (i *Interpreter) WatchSignals() (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range ch {
			i.logger.Info("received %s, cancelling input wait", sig)
			i.reader.Interrupt()
		}
	}()

	return func() {
		signal.Stop(ch)
		close(ch)
	}
}

func (i *Interpreter) registerBuiltins() {
	i.registry.Register(handlers.HandlerFunc("help", "List available commands",
		func(ctx context.Context, args []string) error {
			i.printHelp()
			return nil
		}))
	i.registry.Register(handlers.HandlerFunc("status", "Show session status",
		func(ctx context.Context, args []string) error {
			i.printStatus()
			return nil
		}))
	i.registry.Register(handlers.HandlerFunc("version", "Show version information",
		func(ctx context.Context, args []string) error {
			fmt.Fprintf(i.out, "midbg %s\n", i.version)
			return nil
		}))
	i.registry.Register(handlers.HandlerFunc("echo", "Print the arguments",
		func(ctx context.Context, args []string) error {
			fmt.Fprintln(i.out, strings.Join(args, " "))
			return nil
		}))
	exit := handlers.HandlerFunc("exit", "Leave the command loop",
		func(ctx context.Context, args []string) error {
			i.quitting = true
			return nil
		})
	i.registry.Register(exit)
	i.registry.Register(handlers.HandlerFunc("quit", "Leave the command loop",
		func(ctx context.Context, args []string) error {
			return exit.Execute(ctx, args)
		}))
}

func (i *Interpreter) printHelp() {
	t := table.NewWriter()
	t.SetOutputMirror(i.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Command", "Description"})

	for _, name := range i.registry.Names() {
		h, _ := i.registry.Get(name)
		t.AppendRow(table.Row{name, h.Synopsis()})
	}
	t.Render()
}

func (i *Interpreter) printStatus() {
	t := table.NewWriter()
	t.SetOutputMirror(i.out)
	t.SetStyle(table.StyleLight)
	t.AppendRow(table.Row{"Session", i.sessionID})
	t.AppendRow(table.Row{"Version", i.version})
	t.AppendRow(table.Row{"Started", i.startedAt.Format("2006-01-02 15:04:05")})
	t.AppendRow(table.Row{"Uptime", time.Since(i.startedAt).Round(time.Second).String()})
	t.Render()
}
