package stdinstream

import "errors"

var (
	// ErrInitialization indicates a dependent facility failed to start;
	// the reader remains unusable until Initialize succeeds
	ErrInitialization = errors.New("stdin handler initialization failed")

	// ErrNotInitialized indicates a stream operation was called before
	// Initialize or after Shutdown
	ErrNotInitialized = errors.New("stdin handler is not initialized")

	// ErrInterrupted indicates Interrupt cleared the wait flag while
	// WaitForInput was blocked; no input was consumed
	ErrInterrupted = errors.New("wait for stdin input was interrupted")

	// ErrUnsupportedPlatform indicates descriptor-readiness polling is
	// unavailable, so a cancellable wait cannot be provided
	ErrUnsupportedPlatform = errors.New("stdin readiness polling is not supported on this platform")
)
