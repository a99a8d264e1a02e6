package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindPermission, "permission denied"},
		{KindIO, "I/O error"},
		{KindParse, "parse error"},
		{KindConfig, "configuration error"},
		{KindClipboard, "clipboard error"},
		{Kind(999), "unknown error"}, // Unknown kind
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "schedule.Parse", Context: "line 3", Err: errors.New("bad date")},
			expected: "schedule.Parse: line 3: bad date",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "config.Read", Err: errors.New("permission denied")},
			expected: "config.Read: permission denied",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("no display")},
			expected: "no display",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("unexpected EOF")
	err := &Error{Op: "schedule.Parse", Err: underlying}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", got, underlying)
	}
}

func TestE(t *testing.T) {
	tests := []struct {
		name       string
		args       []interface{}
		wantOp     Op
		wantKind   Kind
		wantHasErr bool
	}{
		{
			name:       "with all args",
			args:       []interface{}{Op("schedule.Load"), KindNotFound, "plan.csv", fs.ErrNotExist},
			wantOp:     "schedule.Load",
			wantKind:   KindNotFound,
			wantHasErr: true,
		},
		{
			name:       "with op and kind",
			args:       []interface{}{Op("config.Validate"), KindInvalid, "row_height must be positive"},
			wantOp:     "config.Validate",
			wantKind:   KindInvalid,
			wantHasErr: true, // Context becomes the error when no error is provided
		},
		{
			name:       "with just error",
			args:       []interface{}{errors.New("no display")},
			wantOp:     "",
			wantKind:   KindUnknown,
			wantHasErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("E() returned %T, want *Error", err)
			}

			if e.Op != tt.wantOp {
				t.Errorf("E().Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("E().Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if (e.Err != nil) != tt.wantHasErr {
				t.Errorf("E().Err nil = %v, want nil = %v", e.Err == nil, !tt.wantHasErr)
			}
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{
			name:     "matching kind",
			err:      E(Op("schedule.Load"), KindNotFound, "plan.csv"),
			kind:     KindNotFound,
			expected: true,
		},
		{
			name:     "non-matching kind",
			err:      E(Op("schedule.Load"), KindNotFound, "plan.csv"),
			kind:     KindInvalid,
			expected: false,
		},
		{
			name:     "non-gantt error",
			err:      errors.New("regular error"),
			kind:     KindNotFound,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			kind:     KindNotFound,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("wrapped: %w", RowParse(2, "end", "31/31/2024")),
			kind:     KindParse,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{
			name:     "gantt error",
			err:      E(Op("schedule.Load"), KindNotFound, "plan.csv"),
			expected: KindNotFound,
		},
		{
			name:     "regular error",
			err:      errors.New("regular error"),
			expected: KindUnknown,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetKind(tt.err); got != tt.expected {
				t.Errorf("GetKind() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLoadFailed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"missing file", fmt.Errorf("open plan.csv: %w", fs.ErrNotExist), KindNotFound},
		{"other failure", errors.New("is a directory"), KindIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoadFailed("plan.csv", tt.err)
			if !Is(err, tt.kind) {
				t.Errorf("LoadFailed kind = %v, want %v", GetKind(err), tt.kind)
			}
			if !errors.Is(err, tt.err) {
				t.Error("LoadFailed should wrap the underlying error")
			}
			if e, ok := err.(*Error); !ok || e.Op != "schedule.Load" {
				t.Errorf("LoadFailed Op = %v, want schedule.Load", err)
			}
		})
	}
}

func TestMalformedCSV(t *testing.T) {
	underlying := errors.New(`extraneous or missing " in quoted-field`)
	err := MalformedCSV(4, underlying)

	if !Is(err, KindInvalid) {
		t.Error("MalformedCSV should return KindInvalid error")
	}
	if !errors.Is(err, underlying) {
		t.Error("MalformedCSV should wrap the reader error")
	}
	if got, want := err.Error(), `schedule.Parse: line 4: extraneous or missing " in quoted-field`; got != want {
		t.Errorf("MalformedCSV() = %q, want %q", got, want)
	}
}

func TestRowParse(t *testing.T) {
	err := RowParse(3, "start", "not-a-date")

	if !Is(err, KindParse) {
		t.Error("RowParse should return KindParse error")
	}
	if !strings.Contains(err.Error(), `"not-a-date"`) {
		t.Errorf("RowParse() = %q, want the offending value quoted", err.Error())
	}
}

func TestConfigLoadFailed(t *testing.T) {
	underlying := errors.New("yaml: line 2: did not find expected key")
	err := ConfigLoadFailed("/path/to/config.yaml", underlying)

	if !Is(err, KindConfig) {
		t.Error("ConfigLoadFailed should return KindConfig error")
	}
	if !errors.Is(err, underlying) {
		t.Error("ConfigLoadFailed should wrap the underlying error")
	}
}

func TestConfigInvalid(t *testing.T) {
	err := ConfigInvalid("row_height must be positive")

	if !Is(err, KindInvalid) {
		t.Error("ConfigInvalid should return KindInvalid error")
	}
}

func TestClipboardUnavailable(t *testing.T) {
	err := ClipboardUnavailable(errors.New("no display"))

	if !Is(err, KindClipboard) {
		t.Error("ClipboardUnavailable should return KindClipboard error")
	}
}

func TestErrorChaining(t *testing.T) {
	innerErr := errors.New("read failed")
	middleErr := E(Op("config.Read"), KindIO, innerErr)
	outerErr := E(Op("config.Load"), KindConfig, middleErr)

	if !errors.Is(outerErr, innerErr) {
		t.Error("the read failure should be reachable through the config error")
	}

	if GetKind(outerErr) != KindConfig {
		t.Errorf("GetKind() = %v, want the outermost kind", GetKind(outerErr))
	}
}
