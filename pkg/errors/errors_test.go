package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "no amounts found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "no amounts found" {
		t.Errorf("expected message 'no amounts found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeMalformedNumber, "bad amount", cause)

	if err.Code != ErrCodeMalformedNumber {
		t.Errorf("expected code %s, got %s", ErrCodeMalformedNumber, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeAmbiguousUnit, "ambiguous oz", map[string]any{"unit": "oz"})
	if err.Context["unit"] != "oz" {
		t.Errorf("expected context unit oz, got %v", err.Context["unit"])
	}

	wrapped := WrapWithContext(ErrCodeInternal, "failed", err, map[string]any{"line": 3})
	if wrapped.Context["line"] != 3 {
		t.Errorf("expected context line 3, got %v", wrapped.Context["line"])
	}
	if !errors.Is(wrapped, err) {
		t.Error("expected wrapped error to match its cause")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestIsMatchesCodeAndMessage(t *testing.T) {
	sentinel := New(ErrCodeNotFound, "no amounts found")
	wrapped := fmt.Errorf("parse: %w", New(ErrCodeNotFound, "no amounts found"))

	if !errors.Is(wrapped, sentinel) {
		t.Error("expected copy with same code and message to match sentinel")
	}
	if errors.Is(New(ErrCodeNotFound, "other"), sentinel) {
		t.Error("different message should not match")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"structured", New(ErrCodeTimeout, "slow"), ErrCodeTimeout},
		{"wrapped by fmt", fmt.Errorf("ctx: %w", New(ErrCodeInvalidRequest, "bad")), ErrCodeInvalidRequest},
		{"plain error", errors.New("plain"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	inner := New(ErrCodeMalformedNumber, "bad fraction")
	outer := Wrap(ErrCodeInvalidRequest, "rescale failed", inner)

	if !HasCode(outer, ErrCodeInvalidRequest) {
		t.Error("expected outer code to be found")
	}
	if !HasCode(outer, ErrCodeMalformedNumber) {
		t.Error("expected inner code to be found")
	}
	if HasCode(outer, ErrCodeTimeout) {
		t.Error("did not expect timeout code")
	}
	if HasCode(nil, ErrCodeInternal) {
		t.Error("nil error has no code")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeAmbiguousUnit,
		ErrCodeIncompatibleUnits,
		ErrCodeMalformedNumber,
		ErrCodeNotFound,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeRateLimitExceeded,
		ErrCodeMethodNotAllowed,
		ErrCodeUnavailable,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
