package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clarahjk00/Final-Proejct-G2/internal/ingest/text"
)

var solveTimeout time.Duration

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle read from a file or stdin",
		Long: `Solve a puzzle given as nine rows of nine digits.
Use 0 or . for empty cells; spaces between digits are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "abort the search after this long (0 = no limit)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	board, err := text.Read(in)
	if err != nil {
		return fmt.Errorf("reading puzzle: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	uc := newService()
	solved, st, err := uc.Solve(ctx, board)
	if err != nil {
		return err
	}
	fmt.Println(solved)
	fmt.Printf("Solving time: %.3f seconds (%d nodes)\n", st.Duration.Seconds(), st.Nodes)
	return nil
}
