package knight

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoPathFound = errors.New("no path found")

const noPredecessor = -1

// FindShortestPath returns a shortest knight path from start to end, both
// endpoints included. When several shortest paths exist the one reached
// first under the fixed move order is returned, so results are reproducible.
func FindShortestPath(start, end Coordinate) (Path, error) {
	return standardBoard.shortestPath(context.Background(), start, end)
}

// FindShortestPathContext is FindShortestPath with cancellation. The context
// is checked once per dequeued square.
func FindShortestPathContext(ctx context.Context, start, end Coordinate) (Path, error) {
	return standardBoard.shortestPath(ctx, start, end)
}

// Distance returns the minimum number of knight moves between two squares.
func Distance(start, end Coordinate) (int, error) {
	path, err := FindShortestPath(start, end)
	if err != nil {
		return 0, err
	}
	return path.Moves(), nil
}

func (b board) shortestPath(ctx context.Context, start, end Coordinate) (Path, error) {
	if !b.contains(start) {
		return nil, fmt.Errorf("%w: start %s", ErrInvalidCoordinate, start)
	}
	if !b.contains(end) {
		return nil, fmt.Errorf("%w: end %s", ErrInvalidCoordinate, end)
	}
	if start == end {
		return Path{start}, nil
	}

	visited := make([]bool, b.size())
	predecessor := make([]int, b.size())
	for i := range predecessor {
		predecessor[i] = noPredecessor
	}

	queue := make([]Coordinate, 0, b.size())
	queue = append(queue, start)
	visited[b.index(start)] = true

	found := false
	for head := 0; head < len(queue); head++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := queue[head]
		if current == end {
			found = true
			break
		}

		for _, next := range b.neighbors(current) {
			i := b.index(next)
			if visited[i] {
				continue
			}
			visited[i] = true
			predecessor[i] = b.index(current)
			queue = append(queue, next)
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoPathFound, start, end)
	}

	return b.reconstructPath(predecessor, start, end), nil
}

// reconstructPath walks the predecessor table back from end, then reverses.
func (b board) reconstructPath(predecessor []int, start, end Coordinate) Path {
	path := Path{end}
	current := b.index(end)
	for current != b.index(start) {
		current = predecessor[current]
		path = append(path, Coordinate{File: current % b.files, Rank: current / b.files})
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
