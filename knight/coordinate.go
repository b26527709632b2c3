package knight

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	chess "github.com/garlicgarrison/go-chess"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidNotation   = errors.New("invalid notation")
)

// Coordinate is a square on the board, 0-indexed. File is x, Rank is y.
type Coordinate struct {
	File int
	Rank int
}

func NewCoordinate(file, rank int) Coordinate {
	return Coordinate{File: file, Rank: rank}
}

// Index packs the coordinate into rank*8+file. Only meaningful for
// coordinates that are on the board.
func (c Coordinate) Index() int {
	return c.Rank*8 + c.File
}

func (c Coordinate) Valid() bool {
	return standardBoard.contains(c)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("[%d, %d]", c.File, c.Rank)
}

// Square converts the coordinate to a go-chess square. File 0 is the a-file
// and rank 0 is the first rank.
func (c Coordinate) Square() chess.Square {
	return chess.NewSquare(chess.File(c.File), chess.Rank(c.Rank))
}

func (c Coordinate) Algebraic() string {
	return c.Square().String()
}

func FromSquare(sq chess.Square) Coordinate {
	return Coordinate{File: int(sq.File()), Rank: int(sq.Rank())}
}

/*
ParseCoordinate accepts either algebraic notation ("e4") or a numeric
"x,y" pair, optionally wrapped in brackets ("[4, 3]").
*/
func ParseCoordinate(s string) (Coordinate, error) {
	s = strings.TrimSpace(s)
	if c, ok := parseAlgebraic(s); ok {
		return c, nil
	}

	trimmed := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	file, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	rank, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	// bounds are checked by the search, not here
	return Coordinate{File: file, Rank: rank}, nil
}

func parseAlgebraic(s string) (Coordinate, bool) {
	s = strings.ToLower(s)
	if len(s) != 2 {
		return Coordinate{}, false
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Coordinate{}, false
	}

	sq := chess.NewSquare(chess.File(s[0]-'a'), chess.Rank(s[1]-'1'))
	return FromSquare(sq), true
}

// UnmarshalYAML lets config files give a square as [x, y] or as "e4".
func (c *Coordinate) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var pair []int
	if err := unmarshal(&pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("%w: expected 2 components, got %d", ErrInvalidNotation, len(pair))
		}
		*c = Coordinate{File: pair[0], Rank: pair[1]}
		return nil
	}

	var s string
	if err := unmarshal(&s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidNotation, err)
	}

	parsed, err := ParseCoordinate(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", c.File, c.Rank)), nil
}
