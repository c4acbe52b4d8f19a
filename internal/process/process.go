// Package process terminates browser process trees left behind by the
// page renderer.
package process

import "errors"

// ErrInvalidPID is returned for pids that cannot name a process group.
var ErrInvalidPID = errors.New("invalid process id")
