// Package stdinstream implements the front-end's input layer: a
// line-oriented reader over process stdin whose availability wait can be
// cancelled from another goroutine. One goroutine drives WaitForInput and
// ReadLine; a second may call Interrupt at any time. Concurrent calls to
// the stream operations themselves are out of contract.
package stdinstream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/midbg/midbg/core"
	"github.com/midbg/midbg/lifecycle"
	"github.com/midbg/midbg/resources"
)

// ErrorSink receives the reader's last failure description for external
// diagnostics
type ErrorSink interface {
	SetErrorDescription(desc string)
	ClearErrorDescription()
}

// FacilityRegistry brings dependent facilities up and down by kind
type FacilityRegistry interface {
	BringUp(kind lifecycle.Kind) error
	TearDown(kind lifecycle.Kind) error
}

// Reader is the interruptible stdin line reader. It owns a fixed-capacity
// buffer that is reused across ReadLine calls.
type Reader struct {
	bufSize      int
	pollInterval time.Duration
	in           *os.File
	br           *bufio.Reader
	buf          []byte
	initialized  bool
	waitForInput atomic.Bool

	registry FacilityRegistry
	sink     ErrorSink
	res      *resources.Store
	logger   *core.Logger
}

// NewReader creates a reader over process stdin
func NewReader(cfg core.StdinConfig, registry FacilityRegistry, sink ErrorSink, res *resources.Store, logger *core.Logger) *Reader {
	return NewReaderWithInput(os.Stdin, cfg, registry, sink, res, logger)
}

// NewReaderWithInput creates a reader over the given file, which must be
// backed by a pollable descriptor. Used by tests to substitute a pipe
// for stdin.
func NewReaderWithInput(in *os.File, cfg core.StdinConfig, registry FacilityRegistry, sink ErrorSink, res *resources.Store, logger *core.Logger) *Reader {
	r := &Reader{
		bufSize:      cfg.BufferSize,
		pollInterval: cfg.PollInterval,
		in:           in,
		registry:     registry,
		sink:         sink,
		res:          res,
		logger:       logger,
	}
	r.waitForInput.Store(true)
	return r
}

// Initialize brings up the dependent facilities and allocates the line
// buffer. Calling it on an initialized reader is a no-op. Facility order
// matters: logging first, then resources.
func (r *Reader) Initialize() error {
	if r.initialized {
		return nil
	}

	r.sink.ClearErrorDescription()

	var failures []string
	if err := r.registry.BringUp(lifecycle.KindLogging); err != nil {
		failures = append(failures, r.res.Format(resources.MsgLogInitFailed, err))
	}
	if err := r.registry.BringUp(lifecycle.KindResources); err != nil {
		failures = append(failures, r.res.Format(resources.MsgResourcesInitFailed, err))
	}
	if len(failures) > 0 {
		joined := strings.Join(failures, "; ")
		r.sink.SetErrorDescription(r.res.Format(resources.MsgStdinInitFailed, joined))
		return fmt.Errorf("%w: %s", ErrInitialization, joined)
	}

	r.buf = make([]byte, r.bufSize)
	// A fresh bufio.Reader also discards any stale error or buffered
	// state from a previous initialize/shutdown cycle.
	r.br = bufio.NewReaderSize(r.in, r.bufSize)
	r.initialized = true

	r.logger.Debug("stdin handler initialized (buffer %d bytes, poll %s)", r.bufSize, r.pollInterval)
	return nil
}

// Shutdown releases the line buffer and tears down the dependent
// facilities in reverse bring-up order. It never fails: teardown errors
// are recorded in the error sink but the reader is marked uninitialized
// regardless, so Shutdown is safe from cleanup paths and idempotent.
func (r *Reader) Shutdown() error {
	if !r.initialized {
		return nil
	}

	r.initialized = false
	r.sink.ClearErrorDescription()
	r.buf = nil
	r.br = nil

	var failures []string
	if err := r.registry.TearDown(lifecycle.KindResources); err != nil {
		failures = append(failures, err.Error())
	}
	if err := r.registry.TearDown(lifecycle.KindLogging); err != nil {
		failures = append(failures, err.Error())
	}
	if len(failures) > 0 {
		r.sink.SetErrorDescription(r.res.Format(resources.MsgStdinShutdownFailed, strings.Join(failures, "; ")))
	}
	return nil
}

// WaitForInput blocks until input is available on stdin or the wait is
// cancelled. The wait is bounded by the poll interval so a concurrent
// Interrupt is observed within one interval.
func (r *Reader) WaitForInput() (bool, error) {
	if !r.initialized {
		return false, ErrNotInitialized
	}
	if !pollSupported {
		return false, ErrUnsupportedPlatform
	}

	r.sink.ClearErrorDescription()

	// Bytes already pulled into the buffered reader by a previous
	// over-read count as available; the descriptor won't report them.
	if r.br.Buffered() > 0 {
		return true, nil
	}

	for r.waitForInput.Load() {
		ready, err := pollRead(int(r.in.Fd()), r.pollInterval)
		if err != nil {
			r.sink.SetErrorDescription(r.res.Format(resources.MsgStdinPollFailed, err))
			return false, fmt.Errorf("stdin readiness poll: %w", err)
		}
		if ready {
			return true, nil
		}
	}
	return false, ErrInterrupted
}

// ReadLine reads one line into the owned buffer, reading at most
// bufferSize-1 bytes and stopping after a newline. The returned slice is
// a view into the reusable buffer with the first '\n' or '\r' and
// everything after it stripped; it is only valid until the next ReadLine.
// A clean end of input returns (nil, nil).
func (r *Reader) ReadLine() ([]byte, error) {
	if !r.initialized {
		return nil, ErrNotInitialized
	}

	r.sink.ClearErrorDescription()

	n := 0
	limit := r.bufSize - 1
	for n < limit {
		b, err := r.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return nil, nil
				}
				break
			}
			r.sink.SetErrorDescription(r.res.Format(resources.MsgStdinReadFailed, err))
			return nil, fmt.Errorf("stdin read: %w", err)
		}
		r.buf[n] = b
		n++
		if b == '\n' {
			break
		}
	}

	// Strip from the first line terminator; either '\n' or '\r' ends
	// the logical line.
	if i := bytes.IndexAny(r.buf[:n], "\r\n"); i >= 0 {
		n = i
	}
	return r.buf[:n], nil
}

// Interrupt cancels the current and all future WaitForInput calls. Safe
// from any goroutine, idempotent, and monotonic: the reader never
// re-arms the flag itself. A read already past the wait stage is not
// affected.
func (r *Reader) Interrupt() {
	r.waitForInput.Store(false)
}
