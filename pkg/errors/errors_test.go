package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "hardware-inventory/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	t.Run("Wrapped HTTPError", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "conflict"))
		he, ok := pkgErrors.AsHTTPError(err)
		if !ok {
			t.Fatal("expected HTTPError")
		}
		if he.StatusCode != http.StatusConflict || he.Message != "conflict" {
			t.Errorf("unexpected error: %+v", he)
		}
	})

	t.Run("Plain error", func(t *testing.T) {
		if _, ok := pkgErrors.AsHTTPError(errors.New("boom")); ok {
			t.Error("expected plain error not to convert")
		}
	})
}

func TestNewValidationError(t *testing.T) {
	fields := map[string][]string{"name": {"name is required"}}
	err := pkgErrors.NewValidationError("validation failed", fields, map[string]string{"description": "d"})
	if err.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", err.StatusCode)
	}
	if len(err.Fields["name"]) != 1 {
		t.Errorf("expected field message, got %v", err.Fields)
	}
}

func TestWithDataDoesNotMutate(t *testing.T) {
	base := pkgErrors.NewHTTPError(http.StatusNotFound, "not found")
	withData := base.WithData("x")
	if base.Data != nil {
		t.Error("expected original to stay without data")
	}
	if withData.Data != "x" {
		t.Errorf("expected data x, got %v", withData.Data)
	}
}

func TestWrap(t *testing.T) {
	if pkgErrors.Wrap(nil, "ctx") != nil {
		t.Error("expected nil for nil error")
	}
	inner := errors.New("inner")
	err := pkgErrors.Wrap(inner, "step %d", 2)
	if !errors.Is(err, inner) {
		t.Error("expected wrapped error to unwrap")
	}
	if err.Error() != "step 2: inner" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestIsRequestTooLarge(t *testing.T) {
	wrapped := fmt.Errorf("multipart: NextPart: %w", &http.MaxBytesError{Limit: 64})
	if !pkgErrors.IsRequestTooLarge(wrapped) {
		t.Error("expected wrapped MaxBytesError to match")
	}
	if pkgErrors.IsRequestTooLarge(errors.New("unexpected EOF")) {
		t.Error("expected plain error not to match")
	}
}
