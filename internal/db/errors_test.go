package db

import (
	"errors"
	"fmt"
	"testing"
)

func TestDataAccessError(t *testing.T) {
	driverErr := errors.New("Error 1045: Access denied")
	err := wrapErr("list published posts", driverErr)

	var dae *DataAccessError
	if !errors.As(err, &dae) {
		t.Fatalf("expected *DataAccessError, got %T", err)
	}
	if dae.Op != "list published posts" {
		t.Errorf("Op = %q, want %q", dae.Op, "list published posts")
	}
	if !errors.Is(err, driverErr) {
		t.Error("wrapped error should unwrap to the driver error")
	}

	wrapped := fmt.Errorf("handler: %w", err)
	if !errors.As(wrapped, &dae) {
		t.Error("DataAccessError should survive further wrapping")
	}
}

func TestWrapErrNil(t *testing.T) {
	if err := wrapErr("anything", nil); err != nil {
		t.Errorf("wrapErr(nil) = %v, want nil", err)
	}
}
