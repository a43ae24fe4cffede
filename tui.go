package main

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"drawboard/editor"
	"drawboard/render"
	"drawboard/shape"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.session.Close()
	return m, tea.Quit
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.help {
		switch key {
		case "j", "down":
			m.helpScroll++
		case "k", "up":
			if m.helpScroll > 0 {
				m.helpScroll--
			}
		case "esc", "?", "q":
			m.help = false
			m.helpScroll = 0
		case "ctrl+c":
			return m.quit()
		}
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""
	st := m.session.State()

	switch key {
	case "q", "ctrl+c":
		return m.quit()
	case "?":
		m.help = true
	case "esc":
		m.session.Dispatch(editor.Cancel{})
	case "f":
		m.session.Dispatch(editor.SetFill{Color: cycleColor(st.Fill, 1)})
	case "F":
		m.session.Dispatch(editor.SetFill{Color: cycleColor(st.Fill, -1)})
	case "b":
		m.session.Dispatch(editor.SetBorder{Color: cycleColor(st.Border, 1)})
	case "B":
		m.session.Dispatch(editor.SetBorder{Color: cycleColor(st.Border, -1)})
	case "p":
		c, err := pasteColor()
		if err != nil {
			m.errorMessage = err.Error()
			break
		}
		m.session.Dispatch(editor.SetFill{Color: c})
		m.successMessage = "Fill " + c
	case "y":
		text, err := copyColors(st.Board)
		if err != nil {
			m.errorMessage = err.Error()
			break
		}
		m.successMessage = "Copied " + text
	case "s":
		path, err := m.exportPNG(time.Now())
		if err != nil {
			m.log.Error("export failed", "err", err)
			m.errorMessage = err.Error()
			break
		}
		m.successMessage = "Saved " + path
	default:
		if n, ok := m.nudgeFor(key); ok {
			m.session.Dispatch(n)
			break
		}
		if k, ok := keyEvent(msg); ok {
			m.session.Dispatch(k)
		}
	}
	m.cursor = m.session.Cursor(m.hover)
	return m, nil
}

// keyEvent translates a terminal key into the editor's shortcut vocabulary.
func keyEvent(msg tea.KeyMsg) (editor.Key, bool) {
	switch msg.Type {
	case tea.KeyBackspace:
		return editor.Key{Name: "backspace"}, true
	case tea.KeyDelete:
		return editor.Key{Name: "delete"}, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return editor.Key{}, false
		}
		return editor.Key{Name: string(msg.Runes), Meta: msg.Alt}, true
	}
	if name, ok := strings.CutPrefix(msg.String(), "ctrl+"); ok {
		return editor.Key{Name: name, Ctrl: true}, true
	}
	return editor.Key{}, false
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	p, onCanvas := m.canvasPoint(msg.X, msg.Y)
	captured := m.capture.held
	if !captured && onCanvas {
		p = m.snapToHandle(msg.X, msg.Y, p)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if msg.Y < toolbarRows && !captured {
			if item := m.toolbarHit(msg.X); item != ToolNone {
				m.errorMessage = ""
				m.successMessage = ""
				m.activate(item)
			}
			return
		}
		if !onCanvas {
			return
		}
		m.errorMessage = ""
		m.successMessage = ""
		// Most terminals keep shift+click for their own text selection.
		m.session.Dispatch(editor.PointerDown{Pos: p, Shift: msg.Shift || msg.Ctrl})
	case tea.MouseActionMotion:
		if captured {
			m.session.Dispatch(editor.PointerMove{Pos: p})
		}
	case tea.MouseActionRelease:
		m.session.Dispatch(editor.PointerUp{Pos: p})
	}

	m.hover = p
	m.cursor = m.session.Cursor(p)
}

// canvasCells is the size of the canvas area in terminal cells.
func (m *model) canvasCells() (int, int) {
	cols := m.width
	if limit := render.CanvasWidth / m.config.CellWidth; cols > limit {
		cols = limit
	}
	rows := m.height - toolbarRows - statusRows
	if limit := render.CanvasHeight / m.config.CellHeight; rows > limit {
		rows = limit
	}
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols, rows
}

// canvasPoint maps a terminal cell to the canvas point at its centre, and
// reports whether the cell lies inside the canvas area.
func (m *model) canvasPoint(x, y int) (shape.Point, bool) {
	cx, cy := x, y-toolbarRows
	p := shape.Point{
		X: (float64(cx) + 0.5) * float64(m.config.CellWidth),
		Y: (float64(cy) + 0.5) * float64(m.config.CellHeight),
	}
	cols, rows := m.canvasCells()
	return p, cx >= 0 && cy >= 0 && cx < cols && cy < rows
}

// snapToHandle moves p, the centre of cell (x, y), onto the nearest scale
// handle of a selected rectangle that passes through the cell. A cell is
// coarser than the handle tolerance, so a handle lying on a cell boundary
// would otherwise never be hit. Points already on a control stay put.
func (m *model) snapToHandle(x, y int, p shape.Point) shape.Point {
	st := m.session.State()
	if st.Mode != editor.ModeSelect || st.Active() {
		return p
	}
	selected := st.Board.SelectedRectangles()
	for _, r := range selected {
		if shape.IsPointNearRotationHandle(p, r) || shape.ScaleHandleAt(p, r) != shape.HandleNone {
			return p
		}
	}

	cw, ch := float64(m.config.CellWidth), float64(m.config.CellHeight)
	left, top := float64(x)*cw, float64(y-toolbarRows)*ch
	best, bestDist := p, math.Inf(1)
	for _, r := range selected {
		for _, h := range shape.HandlePoints(r) {
			h = shape.RotateAbout(h, r.Rotation, r.Center())
			q := shape.Point{
				X: math.Max(left, math.Min(h.X, left+cw)),
				Y: math.Max(top, math.Min(h.Y, top+ch)),
			}
			if shape.ScaleHandleAt(q, r) == shape.HandleNone || shape.IsPointNearRotationHandle(q, r) {
				continue
			}
			if d := q.Distance(p); d < bestDist {
				best, bestDist = q, d
			}
		}
	}
	return best
}

func (m *model) activate(item ToolbarItem) {
	st := m.session.State()
	switch item {
	case ToolSelect:
		m.session.Dispatch(editor.SetMode{Mode: editor.ModeSelect})
	case ToolRectangle:
		m.session.Dispatch(editor.SetMode{Mode: editor.ModeRectangle})
	case ToolArrow:
		m.session.Dispatch(editor.SetMode{Mode: editor.ModeArrow})
	case ToolFill:
		m.session.Dispatch(editor.SetFill{Color: cycleColor(st.Fill, 1)})
	case ToolBorder:
		m.session.Dispatch(editor.SetBorder{Color: cycleColor(st.Border, 1)})
	case ToolGroup:
		m.session.Dispatch(editor.ToggleGroup{})
	case ToolDelete:
		m.session.Dispatch(editor.DeleteSelection{})
	}
}
