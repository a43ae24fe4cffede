package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"drawboard/editor"
	"drawboard/render"
)

var (
	toolbarBg = lipgloss.Color("#243141")
	toolbarFg = lipgloss.Color("#E6E6E6")
	activeBg  = lipgloss.Color("#3b82f6")

	buttonStyle  = lipgloss.NewStyle().Foreground(toolbarFg).Background(toolbarBg)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(activeBg).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
)

const swatch = "■"

// toolbarButtons lays out row 0. The label text decides each button's
// columns; styling adds no width.
func (m *model) toolbarButtons() []toolbarButton {
	st := m.session.State()
	groupLabel := " Group (G) "
	if st.Board.AnySelectedGrouped() {
		groupLabel = " Ungroup (G) "
	}

	labels := []struct {
		item  ToolbarItem
		label string
	}{
		{ToolSelect, " Select (V) "},
		{ToolRectangle, " Rectangle (R) "},
		{ToolArrow, " Arrow (A) "},
		{ToolFill, " Fill " + swatch + " " + st.Fill + " "},
		{ToolBorder, " Border " + swatch + " " + st.Border + " "},
		{ToolGroup, groupLabel},
		{ToolDelete, " Delete "},
	}

	buttons := make([]toolbarButton, 0, len(labels))
	x := 0
	for _, l := range labels {
		w := lipgloss.Width(l.label)
		buttons = append(buttons, toolbarButton{item: l.item, label: l.label, start: x, end: x + w})
		x += w + 1
	}
	return buttons
}

func (m *model) toolbarHit(x int) ToolbarItem {
	for _, b := range m.toolbarButtons() {
		if x >= b.start && x < b.end {
			return b.item
		}
	}
	return ToolNone
}

func (m *model) renderToolbar() string {
	st := m.session.State()
	active := map[editor.Mode]ToolbarItem{
		editor.ModeSelect:    ToolSelect,
		editor.ModeRectangle: ToolRectangle,
		editor.ModeArrow:     ToolArrow,
	}[st.Mode]

	parts := make([]string, 0, 8)
	for _, b := range m.toolbarButtons() {
		style := buttonStyle
		if b.item == active {
			style = activeStyle
		}
		switch b.item {
		case ToolFill, ToolBorder:
			c := st.Fill
			if b.item == ToolBorder {
				c = st.Border
			}
			before, after, _ := strings.Cut(b.label, swatch)
			parts = append(parts,
				style.Render(before)+
					style.Foreground(lipgloss.Color(c)).Render(swatch)+
					style.Render(after))
		default:
			parts = append(parts, style.Render(b.label))
		}
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, " "))
}

// rasterCache holds the last canvas raster. Hover-only mouse motion leaves
// the session revision alone, so repeated views reuse it.
type rasterCache struct {
	rev        uint64
	cols, rows int
	img        image.Image
}

// raster renders the visible part of the canvas at two pixels per cell,
// one for each half of a ▀ glyph.
func (m *model) raster(cols, rows int) image.Image {
	rev := m.session.Revision()
	if c := m.frame; c != nil && c.img != nil && c.rev == rev && c.cols == cols && c.rows == rows {
		return c.img
	}

	full := render.Image(render.SceneOf(m.session.State()), render.CanvasWidth, render.CanvasHeight)
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	src := image.Rect(0, 0, cols*m.config.CellWidth, rows*m.config.CellHeight)
	draw.BiLinear.Scale(dst, dst.Bounds(), full, src, draw.Src, nil)

	if m.frame != nil {
		m.frame.rev, m.frame.cols, m.frame.rows, m.frame.img = rev, cols, rows, dst
	}
	return dst
}

func hexOf(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func (m *model) renderCanvas() string {
	cols, rows := m.canvasCells()
	if cols == 0 || rows == 0 {
		return ""
	}
	img := m.raster(cols, rows)

	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		var line strings.Builder
		run := 0
		var fg, bg string
		flush := func() {
			if run == 0 {
				return
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg))
			line.WriteString(style.Render(strings.Repeat("▀", run)))
			run = 0
		}
		for x := 0; x < cols; x++ {
			top, bottom := hexOf(img.At(x, 2*y)), hexOf(img.At(x, 2*y+1))
			if top != fg || bottom != bg {
				flush()
				fg, bg = top, bottom
			}
			run++
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (m *model) statusLine() string {
	st := m.session.State()
	status := fmt.Sprintf("Mode: %s | Gesture: %s | Cursor: %s | (%.0f,%.0f)",
		st.Mode, st.GestureName(), m.cursor, m.hover.X, m.hover.Y)
	if n := len(st.Board.SelectedRectangles()) + len(st.Board.SelectedArrows()); n > 0 {
		status += fmt.Sprintf(" | Selected: %d", n)
	}
	line := statusStyle.Render(status)
	switch {
	case m.errorMessage != "":
		line += statusStyle.Render(" | ") + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		line += statusStyle.Render(" | ") + successStyle.Render(m.successMessage)
	default:
		line += statusStyle.Render(" | ? for help | q to quit")
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(m.renderToolbar())
	result.WriteString("\n")
	if canvas := m.renderCanvas(); canvas != "" {
		result.WriteString(canvas)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

var helpLines = []string{
	"drawboard Help",
	"==============",
	"",
	"Modes:",
	"------",
	"  v                Select mode",
	"  r                Rectangle mode (draw once, then back to select)",
	"  a                Arrow mode (draw once, then back to select)",
	"",
	"Select Mode:",
	"------------",
	"  click            Select the shape under the pointer",
	"  shift/ctrl+click Add to the selection",
	"  drag body        Move the selection and its groups",
	"  drag handle      Scale from one of the 8 blue handles",
	"  drag near corner Rotate (just outside a selected corner)",
	"  drag arrow end   Move that endpoint",
	"  h/j/k/l, arrows  Nudge the selection one cell",
	"  H/J/K/L          Nudge two cells",
	"",
	"Editing:",
	"--------",
	"  g                Group the selection, or ungroup it",
	"  Backspace/Del    Delete the selection",
	"  f / F            Next / previous fill colour",
	"  b / B            Next / previous border colour",
	"  p                Paste a hex colour from the clipboard as fill",
	"  y                Copy the selected shape's colours",
	"",
	"General:",
	"--------",
	"  s                Export PNG to the save directory",
	"  Esc              Cancel the current gesture",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) helpView() string {
	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	startLine := m.helpScroll
	if startLine > len(helpLines)-visibleHeight {
		startLine = len(helpLines) - visibleHeight
	}
	if startLine < 0 {
		startLine = 0
	}
	endLine := startLine + visibleHeight
	if endLine > len(helpLines) {
		endLine = len(helpLines)
	}

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + statusStyle.Render(statusLine)
}
