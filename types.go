package main

import (
	"log/slog"

	"drawboard/editor"
	"drawboard/shape"
)

type model struct {
	width          int
	height         int
	session        *editor.Session
	capture        *termCapture
	config         *Config
	log            *slog.Logger
	hover          shape.Point
	cursor         editor.Cursor
	help           bool
	helpScroll     int
	errorMessage   string
	successMessage string
	frame          *rasterCache
}

type toolbarButton struct {
	item  ToolbarItem
	label string
	start int
	end   int
}

// termCapture stands in for a window-level pointer subscription. The
// terminal always reports motion; while held, handleMouse routes every
// motion and release to the session even when the pointer is over the
// toolbar or off the canvas, and skips toolbar clicks.
type termCapture struct {
	held bool
	log  *slog.Logger
}

func (c *termCapture) Acquire() {
	c.held = true
	c.log.Debug("mouse routed to canvas")
}

func (c *termCapture) Release() {
	c.held = false
	c.log.Debug("mouse released from canvas")
}
