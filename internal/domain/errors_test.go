package domain

import (
	"errors"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "photometry.measure",
		Kind: KindInsufficientPixels,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInsufficientPixels {
		t.Fatalf("expected kind %s, got %s", KindInsufficientPixels, got.Kind)
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "map.load", Kind: KindMapUninitialized}

	if !IsKind(err, KindMapUninitialized) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindInvalidDirection) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindExecution) {
		t.Fatalf("expected IsKind to reject non-OpError")
	}
}
