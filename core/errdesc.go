package core

import (
	"fmt"
	"sync"
)

// ErrorDescriptor holds the most recent failure description for a
// component, exposed for external diagnostics. Operations clear it on
// entry to their failure-capable paths and set it when they fail.
type ErrorDescriptor struct {
	mu   sync.Mutex
	desc string
}

// NewErrorDescriptor creates an empty error descriptor
func NewErrorDescriptor() *ErrorDescriptor {
	return &ErrorDescriptor{}
}

// SetErrorDescription records a failure description, replacing any
// previous one
func (e *ErrorDescriptor) SetErrorDescription(desc string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.desc = desc
}

// SetErrorDescriptionFormat records a formatted failure description
func (e *ErrorDescriptor) SetErrorDescriptionFormat(format string, v ...interface{}) {
	e.SetErrorDescription(fmt.Sprintf(format, v...))
}

// ClearErrorDescription discards the recorded description
func (e *ErrorDescriptor) ClearErrorDescription() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.desc = ""
}

// ErrorDescription returns the most recent failure description, or the
// empty string when none is recorded
func (e *ErrorDescriptor) ErrorDescription() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.desc
}

// HasError reports whether a failure description is recorded
func (e *ErrorDescriptor) HasError() bool {
	return e.ErrorDescription() != ""
}
