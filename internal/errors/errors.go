// Package errors provides structured error types for gantt.
// These errors record which operation failed and what kind of failure it was,
// so callers can decide between degrading (load failures) and silently
// filtering (row failures) without string matching.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindParse
	KindConfig
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindParse:
		return "parse error"
	case KindConfig:
		return "configuration error"
	case KindClipboard:
		return "clipboard error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for gantt.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// LoadFailed wraps a file-level failure reading a schedule CSV.
// A missing file is KindNotFound, anything else KindIO.
func LoadFailed(path string, err error) error {
	kind := KindIO
	if errors.Is(err, fs.ErrNotExist) {
		kind = KindNotFound
	}
	return E(Op("schedule.Load"), kind, fmt.Sprintf("failed to read %s", path), err)
}

// MalformedCSV reports a CSV syntax error, such as bad quoting, that makes
// the rest of the schedule file unreadable.
func MalformedCSV(line int, err error) error {
	return E(Op("schedule.Parse"), KindInvalid, fmt.Sprintf("line %d", line), err)
}

// RowParse reports a single row whose date field could not be interpreted.
// These are filtered out by the loader and never surface to the user.
func RowParse(line int, field, value string) error {
	return E(Op("schedule.parseRow"), KindParse, fmt.Sprintf("line %d: unparseable %s %q", line, field, value))
}

// ConfigLoadFailed wraps a failure reading or decoding the config file.
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

// ConfigInvalid reports a config value outside its accepted range.
func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// ClipboardUnavailable wraps a failure initializing the system clipboard.
func ClipboardUnavailable(err error) error {
	return E(Op("clipboard.Init"), KindClipboard, "system clipboard unavailable", err)
}
