// Package script reads line-based gesture scripts and replays them against an
// editor session, so boards can be built and checked without a terminal.
//
//	# draw, then stretch the south-east corner
//	mode rectangle
//	down 10 10
//	move 110 60
//	up 110 60
//	down 110 60
//	move 210 160
//	up 210 160
//	key g
//
// Blank lines and lines starting with # are skipped.
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"drawboard/editor"
	"drawboard/shape"
)

// Parse reads every event in r.
func Parse(r io.Reader) ([]editor.Event, error) {
	var events []editor.Event
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := parseLine(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", n+1, err)
	}
	return events, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]editor.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	events, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}

func parseLine(fields []string) (editor.Event, error) {
	verb, args := strings.ToLower(fields[0]), fields[1:]
	switch verb {
	case "down":
		p, rest, err := point(verb, args)
		if err != nil {
			return nil, err
		}
		ev := editor.PointerDown{Pos: p}
		for _, mod := range rest {
			if strings.ToLower(mod) != "shift" {
				return nil, fmt.Errorf("down: unknown modifier %q", mod)
			}
			ev.Shift = true
		}
		return ev, nil
	case "move", "up":
		p, rest, err := point(verb, args)
		if err != nil {
			return nil, err
		}
		if len(rest) > 0 {
			return nil, fmt.Errorf("%s: unexpected %q", verb, rest[0])
		}
		if verb == "move" {
			return editor.PointerMove{Pos: p}, nil
		}
		return editor.PointerUp{Pos: p}, nil
	case "nudge":
		d, rest, err := point(verb, args)
		if err != nil {
			return nil, err
		}
		if len(rest) > 0 {
			return nil, fmt.Errorf("nudge: unexpected %q", rest[0])
		}
		return editor.Nudge{DX: d.X, DY: d.Y}, nil
	case "key":
		if len(args) == 0 {
			return nil, fmt.Errorf("key: missing key name")
		}
		ev := editor.Key{Name: args[0]}
		for _, mod := range args[1:] {
			switch strings.ToLower(mod) {
			case "shift":
				ev.Shift = true
			case "ctrl":
				ev.Ctrl = true
			case "meta":
				ev.Meta = true
			default:
				return nil, fmt.Errorf("key: unknown modifier %q", mod)
			}
		}
		return ev, nil
	case "mode":
		if len(args) != 1 {
			return nil, fmt.Errorf("mode: want one of select, rectangle, arrow")
		}
		m, err := editor.ParseMode(strings.ToLower(args[0]))
		if err != nil {
			return nil, err
		}
		return editor.SetMode{Mode: m}, nil
	case "fill", "border":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: want a #rrggbb colour", verb)
		}
		if _, err := colorful.Hex(args[0]); err != nil {
			return nil, fmt.Errorf("%s: %w", verb, err)
		}
		if verb == "fill" {
			return editor.SetFill{Color: args[0]}, nil
		}
		return editor.SetBorder{Color: args[0]}, nil
	case "delete", "group", "cancel":
		if len(args) > 0 {
			return nil, fmt.Errorf("%s takes no arguments", verb)
		}
		switch verb {
		case "delete":
			return editor.DeleteSelection{}, nil
		case "group":
			return editor.ToggleGroup{}, nil
		}
		return editor.Cancel{}, nil
	}
	return nil, fmt.Errorf("unknown command %q", fields[0])
}

func point(verb string, args []string) (shape.Point, []string, error) {
	if len(args) < 2 {
		return shape.Point{}, nil, fmt.Errorf("%s: want X Y", verb)
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return shape.Point{}, nil, fmt.Errorf("%s: bad x %q", verb, args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return shape.Point{}, nil, fmt.Errorf("%s: bad y %q", verb, args[1])
	}
	return shape.Point{X: x, Y: y}, args[2:], nil
}

// Run feeds events through s in order and closes it, so a script that ends
// mid-gesture still lets go of the pointer.
func Run(s *editor.Session, events []editor.Event) editor.State {
	for _, ev := range events {
		s.Dispatch(ev)
	}
	s.Close()
	return s.State()
}
