// Package image adapts an external OCR program into the Recognizer port.
// The heavy lifting (denoising, perspective correction, cell segmentation,
// character recognition) stays outside this process; the contract here is
// only "best effort digits, 0 on failure".
package image

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ExternalRecognizer runs a configured command with the image path appended
// as its last argument. The command must print 81 digits in row-major order
// on the first line of stdout (whitespace between digits is allowed), and may
// print 81 space-separated confidences in [0,1] on a second line. Missing
// confidences default to 1 for recognized digits and 0 for empty cells.
type ExternalRecognizer struct {
	cmd  string
	args []string
}

func NewExternalRecognizer(cmd string, args ...string) *ExternalRecognizer {
	return &ExternalRecognizer{cmd: cmd, args: args}
}

func (x *ExternalRecognizer) Recognize(ctx context.Context, imagePath string) ([9][9]uint8, [9][9]float64, error) {
	var grid [9][9]uint8
	var conf [9][9]float64

	args := append(append([]string{}, x.args...), imagePath)
	cmd := exec.CommandContext(ctx, x.cmd, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return grid, conf, fmt.Errorf("recognizer %q: %w (stderr: %s)",
			x.cmd, err, strings.TrimSpace(stderr.String()))
	}

	lines := strings.SplitN(strings.TrimSpace(stdout.String()), "\n", 2)
	if err := parseDigits(lines[0], &grid); err != nil {
		return grid, conf, err
	}
	defaultConfidence(&grid, &conf)
	if len(lines) == 2 {
		parseConfidence(lines[1], &conf)
	}
	return grid, conf, nil
}

// parseDigits fills grid from a row-major digit string. Non-digit characters
// other than whitespace make the whole output unusable.
func parseDigits(line string, grid *[9][9]uint8) error {
	compact := strings.Join(strings.Fields(line), "")
	if len(compact) != 81 {
		return fmt.Errorf("recognizer output has %d digits, want 81", len(compact))
	}
	for i := 0; i < 81; i++ {
		ch := compact[i]
		if ch < '0' || ch > '9' {
			return fmt.Errorf("recognizer output has non-digit %q at cell %d", ch, i)
		}
		grid[i/9][i%9] = ch - '0'
	}
	return nil
}

func defaultConfidence(grid *[9][9]uint8, conf *[9][9]float64) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] != 0 {
				conf[r][c] = 1
			}
		}
	}
}

// parseConfidence overlays per-cell confidences; malformed entries are
// ignored and keep their defaults, matching the best-effort contract.
func parseConfidence(line string, conf *[9][9]float64) {
	fields := strings.Fields(line)
	if len(fields) != 81 {
		return
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v < 0 || v > 1 {
			continue
		}
		conf[i/9][i%9] = v
	}
}
