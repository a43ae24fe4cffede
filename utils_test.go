package main

import (
	"testing"

	"drawboard/board"
	"drawboard/shape"
)

func TestColorFromText(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"#3B82F6", "#3b82f6", true},
		{"  #ff0000\n", "#ff0000", true},
		{`<span style="color: #00ff00">x</span>`, "#00ff00", true},
		{`{\rtf1\ansi #1e40af\par}`, "#1e40af", true},
		{"abcdef", "#abcdef", true},
		{"#12345", "", false},
		{"#1234567", "", false},
		{"hello", "", false},
	}
	for _, tt := range tests {
		got, ok := colorFromText(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("colorFromText(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCycleColor(t *testing.T) {
	last := palette[len(palette)-1]
	tests := []struct {
		current string
		step    int
		want    string
	}{
		{palette[0], 1, palette[1]},
		{palette[0], -1, last},
		{last, 1, palette[0]},
		{"#3B82F6", 1, palette[1]},
		{"#123456", 1, palette[0]},
		{"#123456", -1, last},
	}
	for _, tt := range tests {
		if got := cycleColor(tt.current, tt.step); got != tt.want {
			t.Errorf("cycleColor(%s, %d) = %s, want %s", tt.current, tt.step, got, tt.want)
		}
	}
}

func TestSelectionColors(t *testing.T) {
	b := board.Board{
		Rectangles: []shape.Rectangle{{ID: "r", FillColor: "#111111", BorderColor: "#222222"}},
		Arrows:     []shape.Arrow{{ID: "a", Color: "#333333", Selected: true}},
	}
	if got, ok := selectionColors(b); !ok || got != "arrow=#333333" {
		t.Errorf("arrow colours %q", got)
	}
	b = b.SelectRectangle("r", false)
	if got, ok := selectionColors(b); !ok || got != "fill=#111111 border=#222222" {
		t.Errorf("rectangle colours %q", got)
	}
	if _, ok := selectionColors(b.ClearSelection()); ok {
		t.Error("colours for empty selection")
	}
}
