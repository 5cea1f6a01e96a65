package machine

import (
	"os"
	"runtime"
	"strconv"

	"golang.org/x/term"
)

// Context represents the machine's operating context
type Context struct {
	OS           string
	Architecture string
	Shell        string
	Term         string
	Library      string // line editing library the binding is linked against
	Interactive  bool   // stdin is a terminal
}

// NewContext creates a new machine context
func NewContext(library string) *Context {
	ctx := &Context{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		Shell:        os.Getenv("SHELL"),
		Term:         os.Getenv("TERM"),
		Library:      library,
		Interactive:  IsTerminal(os.Stdin),
	}
	return ctx
}

// IsTerminal reports whether f is connected to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// GetSystemInfo returns detailed system information
func (c *Context) GetSystemInfo() map[string]string {
	return map[string]string{
		"os":          c.OS,
		"arch":        c.Architecture,
		"shell":       c.Shell,
		"term":        c.Term,
		"library":     c.Library,
		"interactive": strconv.FormatBool(c.Interactive),
		"num_cpu":     strconv.Itoa(runtime.NumCPU()),
		"go_version":  runtime.Version(),
	}
}
