package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clarahjk00/Final-Proejct-G2/internal/domain"
	"github.com/clarahjk00/Final-Proejct-G2/internal/ingest/text"
)

const divider = "==================================="

// runInteractive is the default mode: a menu loop in the spirit of a desk
// calculator. State is the most recently loaded puzzle.
func runInteractive(cmd *cobra.Command, args []string) error {
	uc := newService()
	sc := bufio.NewScanner(os.Stdin)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var board *domain.Board
	var source domain.Source

	for {
		fmt.Println("\nSudoku Solver")
		fmt.Println("1. Load Sudoku from manual input")
		fmt.Println("2. Load Sudoku from image")
		fmt.Println("3. Solve Sudoku")
		fmt.Println("4. Save puzzle")
		fmt.Println("5. Quit")
		fmt.Print("\nEnter your choice: ")
		if !sc.Scan() {
			return sc.Err()
		}
		switch strings.TrimSpace(sc.Text()) {
		case "1":
			fmt.Println(divider)
			b, err := promptManual(sc)
			if err != nil {
				return err
			}
			board, source = b, domain.SourceManual
			fmt.Println("\nSudoku board loaded successfully.")
			fmt.Println(board)
		case "2":
			if ocrCmd == "" {
				fmt.Println("Image loading needs --ocr-cmd; restart with it set.")
				continue
			}
			fmt.Print("Enter the path to the Sudoku image: ")
			if !sc.Scan() {
				return sc.Err()
			}
			b, _, err := uc.Recognize(ctx, strings.TrimSpace(sc.Text()))
			if err != nil {
				fmt.Printf("Failed to load puzzle from image: %v\n", err)
				fmt.Println("Try again or use manual input.")
				continue
			}
			board, source = b, domain.SourceImage
			fmt.Println("\nLoaded Sudoku puzzle from image:")
			fmt.Println(board)
		case "3":
			if board == nil || isEmptyBoard(board) {
				fmt.Println("\nBoard is empty. Please load a puzzle first.")
				continue
			}
			fmt.Println("\nSolving puzzle...")
			solved, st, err := uc.Solve(ctx, board)
			if errors.Is(err, domain.ErrUnsolvable) {
				fmt.Println("\nNo solution :(")
				continue
			}
			if err != nil {
				return err
			}
			fmt.Println("\nSolution:")
			fmt.Println(solved)
			fmt.Printf("Solving time: %.3f seconds\n", st.Duration.Seconds())
		case "4":
			if board == nil {
				fmt.Println("\nNothing to save. Please load a puzzle first.")
				continue
			}
			fmt.Print("Name (optional): ")
			if !sc.Scan() {
				return sc.Err()
			}
			p := &domain.Puzzle{
				ID:        strconv.FormatInt(time.Now().UnixNano(), 10),
				Name:      strings.TrimSpace(sc.Text()),
				Source:    source,
				Board:     *board,
				CreatedAt: time.Now().UnixNano(),
			}
			if err := uc.Save(ctx, p); err != nil {
				fmt.Printf("Save failed: %v\n", err)
				continue
			}
			fmt.Printf("Saved as %s.\n", p.ID)
		case "5":
			fmt.Println("\nExiting.")
			return nil
		default:
			fmt.Println("Error: Invalid choice. Please try again.")
		}
	}
}

// promptManual asks for the grid row by row, re-prompting on malformed rows.
func promptManual(sc *bufio.Scanner) (*domain.Board, error) {
	fmt.Println("Enter your sudoku row by row.")
	fmt.Println("Use 0 or . for empty cells.")
	var grid [9][9]uint8
	for i := 0; i < 9; i++ {
		for {
			fmt.Printf("Enter row %d (9 digits): ", i+1)
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, err
				}
				return nil, text.ErrTooFewRows
			}
			row, err := text.ParseRow(sc.Text())
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			grid[i] = row
			break
		}
	}
	b := &domain.Board{}
	if err := b.Load(grid); err != nil {
		return nil, err
	}
	return b, nil
}

func isEmptyBoard(b *domain.Board) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				return false
			}
		}
	}
	return true
}
