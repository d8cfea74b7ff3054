//go:build !unix

package stdinstream

import "time"

const pollSupported = false

// pollRead is unavailable without descriptor-readiness polling; the
// reader surfaces ErrUnsupportedPlatform before ever calling this.
func pollRead(fd int, timeout time.Duration) (bool, error) {
	return false, ErrUnsupportedPlatform
}
