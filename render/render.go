// Package render formats finished knight paths for people to read.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/garlicgarrison/knight-path/knight"
)

// Text writes the move count followed by one [x, y] line per square.
func Text(w io.Writer, p knight.Path) error {
	if _, err := fmt.Fprintf(w, "You made it in %d moves! Here's your path:\n", p.Moves()); err != nil {
		return err
	}
	for _, c := range p {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}
	return nil
}

// Algebraic renders the path in chess notation, e.g. "a1 -> b3 -> c5".
func Algebraic(p knight.Path) string {
	squares := make([]string, 0, len(p))
	for _, c := range p {
		squares = append(squares, c.Algebraic())
	}
	return strings.Join(squares, " -> ")
}
