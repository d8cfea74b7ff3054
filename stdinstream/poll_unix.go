//go:build unix

package stdinstream

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

const pollSupported = true

// pollRead waits up to timeout for fd to become readable. A timeout
// returns (false, nil) so the caller can re-check its cancellation flag.
func pollRead(fd int, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if err != nil {
		// A signal landing mid-poll is not a stream error; treat it
		// as a timeout and let the caller loop.
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	if fds[0].Revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
		return false, errors.New("descriptor reported an error condition")
	}
	// POLLIN or POLLHUP: either way a read will not block.
	return true, nil
}
