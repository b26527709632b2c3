package knight

// board is the implicit grid the move graph lives on. Only the standard 8x8
// board is reachable from the exported API.
type board struct {
	files int
	ranks int
}

var standardBoard = board{files: 8, ranks: 8}

// the enumeration order breaks ties between equally short paths
var knightMoves = [8][2]int{
	{2, 1},
	{2, -1},
	{-2, 1},
	{-2, -1},
	{1, 2},
	{1, -2},
	{-1, 2},
	{-1, -2},
}

func (b board) contains(c Coordinate) bool {
	return c.File >= 0 && c.File < b.files && c.Rank >= 0 && c.Rank < b.ranks
}

func (b board) size() int {
	return b.files * b.ranks
}

func (b board) index(c Coordinate) int {
	return c.Rank*b.files + c.File
}

func (b board) neighbors(c Coordinate) []Coordinate {
	neighbors := make([]Coordinate, 0, len(knightMoves))
	for _, move := range knightMoves {
		next := Coordinate{File: c.File + move[0], Rank: c.Rank + move[1]}
		if b.contains(next) {
			neighbors = append(neighbors, next)
		}
	}

	return neighbors
}

// Neighbors returns every square a knight on c can reach in one move, in the
// fixed enumeration order. Off-board input yields nil.
func Neighbors(c Coordinate) []Coordinate {
	if !standardBoard.contains(c) {
		return nil
	}
	return standardBoard.neighbors(c)
}

// IsKnightMove reports whether a and b differ by exactly one knight move.
func IsKnightMove(a, b Coordinate) bool {
	dx, dy := abs(a.File-b.File), abs(a.Rank-b.Rank)
	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
