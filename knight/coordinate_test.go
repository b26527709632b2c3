package knight

import (
	"encoding/json"
	"errors"
	"testing"

	chess "github.com/garlicgarrison/go-chess"
	"gopkg.in/yaml.v2"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in   string
		want Coordinate
	}{
		{"a1", Coordinate{0, 0}},
		{"h8", Coordinate{7, 7}},
		{"E4", Coordinate{4, 3}},
		{"3,4", Coordinate{3, 4}},
		{"[3, 4]", Coordinate{3, 4}},
		{" 0 , 7 ", Coordinate{0, 7}},
		{"8,8", Coordinate{8, 8}},
	}

	for _, tt := range tests {
		got, err := ParseCoordinate(tt.in)
		if err != nil {
			t.Fatalf("%q: err -- %s", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%q: expected %s, got %s", tt.in, tt.want, got)
		}
	}

	for _, bad := range []string{"", "i1", "a9", "1", "x,y", "1,2,3"} {
		if _, err := ParseCoordinate(bad); !errors.Is(err, ErrInvalidNotation) {
			t.Fatalf("%q: expected ErrInvalidNotation, got %v", bad, err)
		}
	}
}

func TestCoordinateSquare(t *testing.T) {
	c := Coordinate{File: 4, Rank: 3}
	if c.Square() != chess.E4 {
		t.Fatalf("expected e4, got %s", c.Square())
	}
	if c.Algebraic() != "e4" {
		t.Fatalf("expected e4, got %s", c.Algebraic())
	}

	for _, sq := range allSquares() {
		if FromSquare(sq.Square()) != sq {
			t.Fatalf("round trip through chess.Square failed for %s", sq)
		}
		if sq.Square() != chess.Square(sq.Index()) {
			t.Fatalf("index of %s does not match chess.Square", sq)
		}
	}
}

func TestCoordinateString(t *testing.T) {
	if s := NewCoordinate(7, 7).String(); s != "[7, 7]" {
		t.Fatalf("expected [7, 7], got %s", s)
	}
}

func TestCoordinateYAML(t *testing.T) {
	var q struct {
		Start Coordinate `yaml:"start"`
		End   Coordinate `yaml:"end"`
	}
	err := yaml.Unmarshal([]byte("start: [0, 0]\nend: h8\n"), &q)
	if err != nil {
		t.Fatalf("err -- %s", err)
	}
	if q.Start != (Coordinate{0, 0}) || q.End != (Coordinate{7, 7}) {
		t.Fatalf("unexpected query %+v", q)
	}

	err = yaml.Unmarshal([]byte("start: [0, 0, 0]\nend: h8\n"), &q)
	if !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("expected ErrInvalidNotation, got %v", err)
	}
}

func TestCoordinateJSON(t *testing.T) {
	b, err := json.Marshal(Path{{0, 0}, {1, 2}})
	if err != nil {
		t.Fatalf("err -- %s", err)
	}
	if string(b) != "[[0,0],[1,2]]" {
		t.Fatalf("unexpected json %s", b)
	}
}
