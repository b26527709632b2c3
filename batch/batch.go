// Package batch runs a list of knight path queries from a YAML file and
// collects the results as JSON.
package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/garlicgarrison/knight-path/knight"
	guuid "github.com/google/uuid"
)

type Result struct {
	ID    guuid.UUID        `json:"id"`
	Start knight.Coordinate `json:"start"`
	End   knight.Coordinate `json:"end"`
	Moves int               `json:"moves"`
	Path  knight.Path       `json:"path,omitempty"`
	Error string            `json:"error,omitempty"`
}

type Results struct {
	Results []Result `json:"results"`
}

// Run answers every query in order. A failed query is recorded on its
// result and does not stop the run.
func Run(cfg *Config) []Result {
	results := make([]Result, 0, len(cfg.Queries))
	for _, q := range cfg.Queries {
		res := Result{
			ID:    guuid.New(),
			Start: q.Start,
			End:   q.End,
		}

		path, err := knight.FindShortestPath(q.Start, q.End)
		if err != nil {
			log.Printf("query %s failed -- %s", res.ID, err)
			res.Error = err.Error()
		} else {
			log.Printf("query %s: %s -> %s in %d moves", res.ID, q.Start, q.End, path.Moves())
			res.Moves = path.Moves()
			res.Path = path
		}

		results = append(results, res)
	}

	return results
}

func Encode(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Results{Results: results})
}

func WriteResults(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	defer f.Close()

	if err := Encode(f, results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return f.Close()
}
