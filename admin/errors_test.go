package admin

import (
	"context"
	"errors"
	"testing"

	errorslib "github.com/goliatone/go-errors"
)

func TestAsGoError_Categories(t *testing.T) {
	cases := []struct {
		kind     ErrorKind
		category errorslib.Category
		code     string
	}{
		{KindValidation, errorslib.CategoryValidation, "validation"},
		{KindNotFound, errorslib.CategoryNotFound, "not_found"},
		{KindTimeout, errorslib.CategoryOperation, "timeout"},
		{KindCanceled, errorslib.CategoryOperation, "canceled"},
		{KindInternal, errorslib.CategoryInternal, "internal"},
	}

	for _, tc := range cases {
		ge := AsGoError(NewError(tc.kind, "boom", nil))
		if ge.Category != tc.category {
			t.Fatalf("kind %s: expected category %v, got %v", tc.kind, tc.category, ge.Category)
		}
		if ge.TextCode != tc.code {
			t.Fatalf("kind %s: expected code %q, got %q", tc.kind, tc.code, ge.TextCode)
		}
	}
}

func TestAsGoError_ContextErrors(t *testing.T) {
	ge := AsGoError(context.DeadlineExceeded)
	if ge.TextCode != "timeout" {
		t.Fatalf("expected timeout, got %q", ge.TextCode)
	}
	ge = AsGoError(context.Canceled)
	if ge.TextCode != "canceled" {
		t.Fatalf("expected canceled, got %q", ge.TextCode)
	}
}

func TestKindFromError(t *testing.T) {
	if kind := KindFromError(NewError(KindNotFound, "missing", nil)); kind != KindNotFound {
		t.Fatalf("expected not found, got %v", kind)
	}
	if kind := KindFromError(errors.New("plain")); kind != KindInternal {
		t.Fatalf("expected internal for plain errors, got %v", kind)
	}
	if kind := KindFromError(nil); kind != "" {
		t.Fatalf("expected empty kind for nil, got %v", kind)
	}
	if kind := KindFromError(context.DeadlineExceeded); kind != KindTimeout {
		t.Fatalf("expected timeout, got %v", kind)
	}
	if kind := KindFromError(context.Canceled); kind != KindCanceled {
		t.Fatalf("expected canceled, got %v", kind)
	}
}

func TestKindFromError_ExplicitKindWins(t *testing.T) {
	err := NewError(KindValidation, "boom", context.Canceled)
	if kind := KindFromError(err); kind != KindValidation {
		t.Fatalf("expected explicit kind to win, got %v", kind)
	}
	ge := AsGoError(err)
	if ge.Category != errorslib.CategoryValidation {
		t.Fatalf("expected validation category, got %v", ge.Category)
	}
}

func TestAdminError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewError(KindInternal, "outer", inner)
	if !errors.Is(err, inner) {
		t.Fatalf("expected unwrap to reach inner error")
	}
	if err.Error() != "outer: inner" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
