package main

import (
	"fmt"
	"os/exec"
	"regexp"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/lucasb-eyer/go-colorful"

	"drawboard/board"
)

var (
	hashHexPattern = regexp.MustCompile(`#[0-9a-fA-F]{6}\b`)
	bareHexPattern = regexp.MustCompile(`\b[0-9a-fA-F]{6}\b`)
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
		if output, err := exec.Command("pbpaste").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// colorFromText finds the first hex colour in clipboard text. A #-prefixed
// colour wins over a bare six digit word, so RTF and HTML wrappers around a
// copied value do not get in the way.
func colorFromText(text string) (string, bool) {
	candidates := hashHexPattern.FindAllString(text, -1)
	for _, word := range bareHexPattern.FindAllString(text, -1) {
		candidates = append(candidates, "#"+word)
	}
	for _, s := range candidates {
		if c, err := colorful.Hex(strings.ToLower(s)); err == nil {
			return c.Hex(), true
		}
	}
	return "", false
}

func pasteColor() (string, error) {
	text, err := readClipboardText()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	c, ok := colorFromText(text)
	if !ok {
		return "", fmt.Errorf("no hex colour on the clipboard")
	}
	return c, nil
}

// selectionColors describes the first selected shape's colours, rectangles
// before arrows.
func selectionColors(b board.Board) (string, bool) {
	if rects := b.SelectedRectangles(); len(rects) > 0 {
		return fmt.Sprintf("fill=%s border=%s", rects[0].FillColor, rects[0].BorderColor), true
	}
	if arrows := b.SelectedArrows(); len(arrows) > 0 {
		return fmt.Sprintf("arrow=%s", arrows[0].Color), true
	}
	return "", false
}

func copyColors(b board.Board) (string, error) {
	text, ok := selectionColors(b)
	if !ok {
		return "", fmt.Errorf("nothing selected")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return "", fmt.Errorf("failed to write clipboard: %w", err)
	}
	return text, nil
}

// cycleColor steps through the palette from current. Colours outside the
// palette start from its first entry.
func cycleColor(current string, step int) string {
	idx := -1
	for i, c := range palette {
		if strings.EqualFold(c, current) {
			idx = i
			break
		}
	}
	if idx < 0 {
		if step < 0 {
			return palette[len(palette)-1]
		}
		return palette[0]
	}
	n := len(palette)
	return palette[((idx+step)%n+n)%n]
}
