package knight

import (
	"fmt"
	"strings"
)

// Path is an ordered walk through the move graph, endpoints included.
type Path []Coordinate

// Moves is the number of edges in the path.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

func (p Path) Start() Coordinate {
	return p[0]
}

func (p Path) End() Coordinate {
	return p[len(p)-1]
}

// Validate checks that every square is on the board and that each step is a
// legal knight move.
func (p Path) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("empty path")
	}
	for i, c := range p {
		if !c.Valid() {
			return fmt.Errorf("%w: %s at step %d", ErrInvalidCoordinate, c, i)
		}
		if i > 0 && !IsKnightMove(p[i-1], c) {
			return fmt.Errorf("illegal move %s -> %s at step %d", p[i-1], c, i)
		}
	}
	return nil
}

func (p Path) String() string {
	squares := make([]string, 0, len(p))
	for _, c := range p {
		squares = append(squares, c.String())
	}
	return strings.Join(squares, " ")
}
