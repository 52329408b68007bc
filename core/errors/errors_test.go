package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with ID",
			err:      &NotFoundError{Resource: "table", ID: "people"},
			wantMsg:  "table not found: people",
			wantBase: ErrNotFound,
		},
		{
			name:     "without ID",
			err:      &NotFoundError{Resource: "module"},
			wantMsg:  "module not found",
			wantBase: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	// Test with underlying error separately
	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("disk error")
		err := &NotFoundError{Resource: "file", ID: "people.csv", Err: underlyingErr}
		if got := err.Error(); got != "file not found: people.csv" {
			t.Errorf("Error() = %q, want %q", got, "file not found: people.csv")
		}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with field",
			err:      &ValidationError{Field: "args", Message: "expects exactly one argument"},
			wantMsg:  "validation failed for args: expects exactly one argument",
			wantBase: ErrInvalidInput,
		},
		{
			name:     "without field",
			err:      &ValidationError{Message: "invalid format"},
			wantMsg:  "validation failed: invalid format",
			wantBase: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}
}

func TestIOError(t *testing.T) {
	baseErr := fmt.Errorf("permission denied")
	tests := []struct {
		name    string
		err     *IOError
		wantMsg string
	}{
		{
			name:    "with path",
			err:     &IOError{Operation: "read", Path: "/test/file.csv", Err: baseErr},
			wantMsg: "failed to read /test/file.csv: permission denied",
		},
		{
			name:    "without path",
			err:     &IOError{Operation: "open", Err: baseErr},
			wantMsg: "failed to open: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, baseErr) {
				t.Errorf("Unwrap() = %v, want %v", got, baseErr)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with path",
			err:      &ParseError{Format: "CSV", Path: "people.csv", Message: "unexpected EOF"},
			wantMsg:  "failed to parse CSV at people.csv: unexpected EOF",
			wantBase: ErrInvalidInput,
		},
		{
			name:     "without path",
			err:      &ParseError{Format: "xpath", Message: "malformed expression"},
			wantMsg:  "failed to parse xpath: malformed expression",
			wantBase: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}
}

func TestUnsupportedError(t *testing.T) {
	tests := []struct {
		name     string
		err      *UnsupportedError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with reason",
			err:      &UnsupportedError{Feature: "column value type chan int", Reason: "no SQLite representation"},
			wantMsg:  "unsupported column value type chan int: no SQLite representation",
			wantBase: ErrUnsupported,
		},
		{
			name:     "without reason",
			err:      &UnsupportedError{Feature: "writes"},
			wantMsg:  "unsupported writes",
			wantBase: ErrUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFound", func(t *testing.T) {
		err := NewNotFound("table", "people")
		if err.Resource != "table" || err.ID != "people" {
			t.Errorf("NewNotFound() = %+v, want Resource=table, ID=people", err)
		}
	})

	t.Run("NewValidation", func(t *testing.T) {
		err := NewValidation("args", "invalid format")
		if err.Field != "args" || err.Message != "invalid format" {
			t.Errorf("NewValidation() = %+v, want Field=args, Message=invalid format", err)
		}
	})

	t.Run("NewIO", func(t *testing.T) {
		baseErr := fmt.Errorf("disk full")
		err := NewIO("read", "/tmp/test", baseErr)
		if err.Operation != "read" || err.Path != "/tmp/test" || err.Err != baseErr {
			t.Errorf("NewIO() = %+v, unexpected values", err)
		}
	})

	t.Run("NewParse", func(t *testing.T) {
		err := NewParse("XML", "feed.xml", "invalid syntax")
		if err.Format != "XML" || err.Path != "feed.xml" || err.Message != "invalid syntax" {
			t.Errorf("NewParse() = %+v, unexpected values", err)
		}
	})

	t.Run("NewUnsupported", func(t *testing.T) {
		err := NewUnsupported("index selection", "not implemented")
		if err.Feature != "index selection" || err.Reason != "not implemented" {
			t.Errorf("NewUnsupported() = %+v, unexpected values", err)
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("wraps error", func(t *testing.T) {
		baseErr := fmt.Errorf("base error")
		wrapped := Wrap(baseErr, "context message")
		if wrapped == nil {
			t.Fatal("Wrap() returned nil")
		}
		if !errors.Is(wrapped, baseErr) {
			t.Errorf("Wrap() error does not unwrap to base error")
		}
		wantMsg := "context message: base error"
		if wrapped.Error() != wantMsg {
			t.Errorf("Wrap() = %q, want %q", wrapped.Error(), wantMsg)
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil) = %v, want nil", got)
		}
	})
}

func TestWrapf(t *testing.T) {
	t.Run("wraps error with formatting", func(t *testing.T) {
		baseErr := fmt.Errorf("base error")
		wrapped := Wrapf(baseErr, "failed to scan %s", "people.csv")
		if wrapped == nil {
			t.Fatal("Wrapf() returned nil")
		}
		if !errors.Is(wrapped, baseErr) {
			t.Errorf("Wrapf() error does not unwrap to base error")
		}
		wantMsg := "failed to scan people.csv: base error"
		if wrapped.Error() != wantMsg {
			t.Errorf("Wrapf() = %q, want %q", wrapped.Error(), wantMsg)
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		if got := Wrapf(nil, "context %s", "test"); got != nil {
			t.Errorf("Wrapf(nil) = %v, want nil", got)
		}
	})
}

func TestIs(t *testing.T) {
	err := &NotFoundError{Resource: "table"}
	if !Is(err, ErrNotFound) {
		t.Error("Is() failed to match NotFoundError to ErrNotFound")
	}
}

func TestAs(t *testing.T) {
	err := &NotFoundError{Resource: "table", ID: "people"}
	var nfErr *NotFoundError
	if !As(err, &nfErr) {
		t.Error("As() failed to match NotFoundError")
	}
	if nfErr.ID != "people" {
		t.Errorf("As() nfErr.ID = %q, want %q", nfErr.ID, "people")
	}
}
