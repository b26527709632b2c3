package knight

import (
	"errors"
	"testing"
)

func TestPathValidate(t *testing.T) {
	if err := (Path{{0, 0}, {2, 1}, {3, 3}}).Validate(); err != nil {
		t.Fatalf("expected valid path, got %s", err)
	}
	if err := (Path{{0, 0}, {1, 1}}).Validate(); err == nil {
		t.Fatalf("expected illegal move to be rejected")
	}
	if err := (Path{{7, 6}, {9, 7}}).Validate(); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
	if err := (Path{}).Validate(); err == nil {
		t.Fatalf("expected empty path to be rejected")
	}
}

func TestPathMoves(t *testing.T) {
	if (Path{}).Moves() != 0 {
		t.Fatalf("expected 0 moves for empty path")
	}
	if (Path{{0, 0}}).Moves() != 0 {
		t.Fatalf("expected 0 moves for single square")
	}
	if (Path{{0, 0}, {2, 1}, {3, 3}}).Moves() != 2 {
		t.Fatalf("expected 2 moves")
	}
}
