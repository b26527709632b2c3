package main

import (
	"fmt"
	"log"
	"os"

	"github.com/garlicgarrison/knight-path/batch"
	"github.com/garlicgarrison/knight-path/knight"
	"github.com/garlicgarrison/knight-path/render"
	"github.com/spf13/cobra"
)

const DEFAULTCONFIG = "config/queries.yaml"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "knightpath",
		Short:        "Shortest knight paths on a chessboard",
		SilenceUsage: true,
	}
	root.AddCommand(newMovesCmd(), newBatchCmd())
	return root
}

func newMovesCmd() *cobra.Command {
	var algebraic bool
	cmd := &cobra.Command{
		Use:     "moves <start> <end>",
		Short:   "Print the shortest knight path between two squares",
		Example: "  knightpath moves 0,0 7,7\n  knightpath moves a1 h8 --algebraic",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := knight.ParseCoordinate(args[0])
			if err != nil {
				return err
			}
			end, err := knight.ParseCoordinate(args[1])
			if err != nil {
				return err
			}

			path, err := knight.FindShortestPath(start, end)
			if err != nil {
				return err
			}

			if algebraic {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Algebraic(path))
				return err
			}
			return render.Text(cmd.OutOrStdout(), path)
		},
	}
	cmd.Flags().BoolVarP(&algebraic, "algebraic", "a", false, "print the path in chess notation")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var configPath, outPath string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every query in a YAML file and emit JSON results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := batch.LoadConfig(configPath)
			if err != nil {
				return err
			}
			log.Printf("loaded %d queries from %s", len(cfg.Queries), configPath)

			results := batch.Run(cfg)
			if outPath == "" {
				return batch.Encode(cmd.OutOrStdout(), results)
			}
			if err := batch.WriteResults(outPath, results); err != nil {
				return err
			}
			log.Printf("results written to %s", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", DEFAULTCONFIG, "path to the queries yaml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write results json here instead of stdout")
	return cmd
}
