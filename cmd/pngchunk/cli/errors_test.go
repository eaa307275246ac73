package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestSilentError(t *testing.T) {
	t.Parallel()

	err := NewSilentError(fmt.Errorf("test error"))
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if err.Error() != "test error" {
		t.Errorf("expected 'test error', got %q", err.Error())
	}
	if !IsSilentError(err) {
		t.Error("expected IsSilentError to return true")
	}
}

func TestIsSilentError_RegularError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("regular error")
	if IsSilentError(err) {
		t.Error("expected IsSilentError to return false for regular error")
	}
}

func TestIsSilentError_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", NewSilentError(errors.New("inner")))
	if !IsSilentError(err) {
		t.Error("expected IsSilentError to see through wrapping")
	}
}

func TestFilesFailedError(t *testing.T) {
	t.Parallel()

	err := NewSilentError(&FilesFailedError{Failed: 2, Total: 3})
	if err.Error() != "2 of 3 files failed" {
		t.Errorf("expected '2 of 3 files failed', got %q", err.Error())
	}
	var ffe *FilesFailedError
	if !errors.As(err, &ffe) || ffe.Failed != 2 {
		t.Errorf("expected FilesFailedError in chain, got %v", err)
	}
}
