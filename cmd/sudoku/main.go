// Sudoku solver CLI: solve puzzles typed in row by row, read from files, or
// recognized from photographed grids by an external OCR command, with an
// optional web UI.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
