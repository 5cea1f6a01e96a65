package readline

import (
	"syscall"
)

// Error reports a failed library call and the status it returned.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// statusError turns a library status code into an error.
// Readline's history functions return 0 or an errno value.
func statusError(op, path string, status int) error {
	if status == 0 {
		return nil
	}
	if status < 0 {
		// rl_initialize and friends report failure without an errno
		return &Error{Op: op, Path: path, Err: syscall.EINVAL}
	}
	return &Error{Op: op, Path: path, Err: syscall.Errno(status)}
}
