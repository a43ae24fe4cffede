package script

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"drawboard/editor"
	"drawboard/shape"
)

func newSession() *editor.Session {
	s := editor.New(editor.DefaultFill, editor.DefaultBorder, editor.DefaultArrowColor)
	return editor.NewSession(s, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParse(t *testing.T) {
	src := `
# comment
mode arrow
down 1.5 -2
move 3 4
up 3 4
down 10 10 shift
key G
key g ctrl meta
fill #ff0000
border #00ff00
delete
group
cancel
nudge 10 -20
`
	events, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []editor.Event{
		editor.SetMode{Mode: editor.ModeArrow},
		editor.PointerDown{Pos: shape.Point{X: 1.5, Y: -2}},
		editor.PointerMove{Pos: shape.Point{X: 3, Y: 4}},
		editor.PointerUp{Pos: shape.Point{X: 3, Y: 4}},
		editor.PointerDown{Pos: shape.Point{X: 10, Y: 10}, Shift: true},
		editor.Key{Name: "G"},
		editor.Key{Name: "g", Ctrl: true, Meta: true},
		editor.SetFill{Color: "#ff0000"},
		editor.SetBorder{Color: "#00ff00"},
		editor.DeleteSelection{},
		editor.ToggleGroup{},
		editor.Cancel{},
		editor.Nudge{DX: 10, DY: -20},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, events[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown command", "jump 1 2", "line 1: unknown command"},
		{"missing y", "\n\ndown 1", "line 3: down: want X Y"},
		{"bad x", "move x 2", "line 1: move: bad x"},
		{"bad modifier", "down 1 2 alt", "line 1: down: unknown modifier"},
		{"trailing arg", "up 1 2 3", "line 1: up: unexpected"},
		{"bad mode", "mode circle", "line 1: unknown mode"},
		{"bad colour", "fill red", "line 1: fill:"},
		{"args on delete", "delete now", "line 1: delete takes no arguments"},
		{"key without name", "key", "line 1: key: missing key name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestReplayScenario(t *testing.T) {
	events, err := ParseFile("testdata/scenario.txt")
	if err != nil {
		t.Fatal(err)
	}
	s := newSession()
	st := Run(s, events)

	if s.Captured() {
		t.Error("capture still held after replay")
	}
	if len(st.Board.Rectangles) != 1 {
		t.Fatalf("want 1 rectangle, got %d", len(st.Board.Rectangles))
	}
	r := st.Board.Rectangles[0]
	if r.X != 10 || r.Y != 10 || r.Width != 200 || r.Height != 150 || r.Rotation != 0 {
		t.Errorf("rectangle %+v", r)
	}
	if len(st.Board.Groups) != 0 {
		t.Errorf("groups left: %+v", st.Board.Groups)
	}
	if st.Mode != editor.ModeSelect {
		t.Errorf("mode %s", st.Mode)
	}
}

func TestRunClosesOpenGesture(t *testing.T) {
	events, err := Parse(strings.NewReader("mode rectangle\ndown 0 0\nmove 50 50\n"))
	if err != nil {
		t.Fatal(err)
	}
	s := newSession()
	st := Run(s, events)
	if st.Active() || s.Captured() {
		t.Fatal("gesture left open")
	}
	if len(st.Board.Rectangles) != 0 {
		t.Error("unfinished rectangle committed")
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile("testdata/nope.txt"); err == nil {
		t.Fatal("expected error")
	}
}
