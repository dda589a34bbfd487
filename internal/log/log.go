// Package log provides the leveled debug logger used by the provider
// clients and the HTTP server. It is intentionally tiny: a process-wide
// level and printf-style helpers writing to stderr.
package log

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Level controls how chatty debug output is.
type Level int32

const (
	Off      Level = iota // no debug output
	Basic                 // request/response summaries
	Detailed              // plus parsed structures
	Trace                 // plus per-block parsing decisions
	Wire                  // plus raw payloads
)

var current atomic.Int32

// LevelFromInt clamps an integer (e.g. a repeated -v flag count) to a Level.
func LevelFromInt(n int) Level {
	if n <= 0 {
		return Off
	}
	if n >= int(Wire) {
		return Wire
	}
	return Level(n)
}

// SetLevel sets the process-wide debug level.
func SetLevel(l Level) { current.Store(int32(l)) }

// Current returns the active debug level.
func Current() Level { return Level(current.Load()) }

// Enabled reports whether messages at level l would be written.
func Enabled(l Level) bool { return l != Off && Current() >= l }

// Debugf writes a formatted message to stderr when the given level is enabled.
func Debugf(l Level, format string, args ...any) {
	if !Enabled(l) {
		return
	}
	fmt.Fprintf(os.Stderr, "[mcqgen] "+format+"\n", args...)
}

func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Basic:
		return "basic"
	case Detailed:
		return "detailed"
	case Trace:
		return "trace"
	case Wire:
		return "wire"
	}
	return fmt.Sprintf("Level(%d)", int32(l))
}
