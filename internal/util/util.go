// internal/util/util.go
// Package util holds file and display-width helpers shared by the CLI and the viewer.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WriteFile writes data with 0o644 permissions, creating the parent directory first.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", path, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Truncate shortens each line of text to at most width terminal cells,
// ending a shortened line with an ellipsis. Wide (CJK) runes count as two cells.
func Truncate(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = runewidth.Truncate(line, width, "…")
	}
	return strings.Join(lines, "\n")
}

// Wrap breaks every line of text so no line is wider than width cells.
// Lines break after a space or a wide rune; a run without either is split hard.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	var (
		out       []string
		cur       []rune
		curWidth  int
		lastBreak = -1
	)
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		for curWidth+rw > width && len(cur) > 0 {
			if lastBreak > 0 && lastBreak < len(cur) {
				out = append(out, strings.TrimRight(string(cur[:lastBreak]), " "))
				cur = append([]rune(nil), cur[lastBreak:]...)
			} else {
				out = append(out, strings.TrimRight(string(cur), " "))
				cur = cur[:0]
			}
			curWidth = runewidth.StringWidth(string(cur))
			lastBreak = -1
		}
		if r == ' ' && len(cur) == 0 && len(out) > 0 {
			continue
		}
		cur = append(cur, r)
		curWidth += rw
		if r == ' ' || rw > 1 {
			lastBreak = len(cur)
		}
	}
	return append(out, string(cur))
}
