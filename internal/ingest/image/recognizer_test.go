package image

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const sampleDigits = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParseDigits(t *testing.T) {
	var grid [9][9]uint8
	if err := parseDigits(sampleDigits, &grid); err != nil {
		t.Fatalf("parseDigits: %v", err)
	}
	if grid[0][0] != 5 || grid[0][4] != 7 || grid[8][8] != 9 {
		t.Fatalf("unexpected grid: %v", grid)
	}
}

func TestParseDigitsWithWhitespace(t *testing.T) {
	spaced := strings.Join(strings.Split(sampleDigits, ""), " ")
	var grid [9][9]uint8
	if err := parseDigits(spaced, &grid); err != nil {
		t.Fatalf("parseDigits: %v", err)
	}
	if grid[0][0] != 5 {
		t.Fatalf("unexpected grid: %v", grid)
	}
}

func TestParseDigitsRejects(t *testing.T) {
	var grid [9][9]uint8
	if err := parseDigits("123", &grid); err == nil {
		t.Error("short output accepted")
	}
	bad := sampleDigits[:80] + "x"
	if err := parseDigits(bad, &grid); err == nil {
		t.Error("non-digit output accepted")
	}
}

func TestConfidenceDefaults(t *testing.T) {
	var grid [9][9]uint8
	var conf [9][9]float64
	grid[0][0] = 5
	defaultConfidence(&grid, &conf)
	if conf[0][0] != 1 {
		t.Errorf("recognized cell confidence = %v, want 1", conf[0][0])
	}
	if conf[0][1] != 0 {
		t.Errorf("empty cell confidence = %v, want 0", conf[0][1])
	}
}

func TestParseConfidenceBestEffort(t *testing.T) {
	var conf [9][9]float64
	fields := make([]string, 81)
	for i := range fields {
		fields[i] = "0.75"
	}
	fields[3] = "junk" // ignored, keeps default
	parseConfidence(strings.Join(fields, " "), &conf)
	if conf[0][0] != 0.75 {
		t.Errorf("conf[0][0] = %v, want 0.75", conf[0][0])
	}
	if conf[0][3] != 0 {
		t.Errorf("conf[0][3] = %v, want default 0", conf[0][3])
	}

	// A line with the wrong field count is dropped entirely.
	var conf2 [9][9]float64
	parseConfidence("0.5 0.5", &conf2)
	if conf2[0][0] != 0 {
		t.Errorf("short confidence line applied: %v", conf2[0][0])
	}
}

// writeStubRecognizer creates a script that ignores its image argument and
// prints canned output.
func writeStubRecognizer(t *testing.T, output string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recognize.sh")
	script := "#!/bin/sh\nprintf '%s\\n' \"" + output + "\"\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing stub: %v", err)
	}
	return path
}

func TestExternalRecognizer(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub recognizer is a shell script")
	}
	rec := NewExternalRecognizer(writeStubRecognizer(t, sampleDigits))
	grid, conf, err := rec.Recognize(context.Background(), "board.png")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if grid[0][0] != 5 || grid[8][8] != 9 {
		t.Fatalf("unexpected grid: %v", grid)
	}
	if conf[0][0] != 1 || conf[0][2] != 0 {
		t.Fatalf("unexpected confidence defaults: %v %v", conf[0][0], conf[0][2])
	}
}

func TestExternalRecognizerCommandFailure(t *testing.T) {
	rec := NewExternalRecognizer("definitely-not-a-real-command-9x9")
	if _, _, err := rec.Recognize(context.Background(), "board.png"); err == nil {
		t.Fatal("missing command did not error")
	}
}
