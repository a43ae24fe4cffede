package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"drawboard/editor"
	"drawboard/render"
	"drawboard/script"
)

var (
	replayOutput string
	replayLegend bool
	replayCheck  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Replay a gesture script without a terminal",
	Long: `Replay feeds a script of pointer and key events through the editor and
prints the resulting board. Each line is one event:

  down X Y [shift]   move X Y   up X Y
  key NAME [shift|ctrl|meta]
  mode select|rectangle|arrow
  fill #rrggbb   border #rrggbb
  delete   group   cancel   nudge DX DY`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&replayOutput, "output", "o", "", "write the resulting board to this PNG file")
	replayCmd.Flags().BoolVar(&replayLegend, "legend", false, "draw the shortcut legend under the PNG")
	replayCmd.Flags().BoolVar(&replayCheck, "check", false, "fail if the resulting board is inconsistent")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	config := resolveConfig(cmd)
	logger, closeLog, err := newLogger(config, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	events, err := script.ParseFile(args[0])
	if err != nil {
		return err
	}

	st := editor.New(config.Fill, config.Border, config.ArrowColor)
	session := editor.NewSession(st, &termCapture{log: logger}, logger)
	final := script.Run(session, events)
	logger.Debug("replay finished", "events", len(events))

	out := cmd.OutOrStdout()
	printBoard(out, final)

	if replayCheck {
		if err := final.Board.Validate(); err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		fmt.Fprintln(out, "Check: ok")
	}

	if replayOutput != "" {
		opts := render.Options{Width: render.CanvasWidth, Height: render.CanvasHeight}
		if replayLegend {
			opts.Legend = render.DefaultLegend
		}
		if err := render.ExportPNG(replayOutput, render.SceneOf(final), opts); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", replayOutput)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printBoard(w io.Writer, st editor.State) {
	b := st.Board
	fmt.Fprintf(w, "Mode: %s\n", st.Mode)
	fmt.Fprintf(w, "Rectangles: %d\n", len(b.Rectangles))
	for _, r := range b.Rectangles {
		fmt.Fprintf(w, "  %s x=%.1f y=%.1f w=%.1f h=%.1f rot=%.3f fill=%s border=%s selected=%t\n",
			shortID(r.ID), r.X, r.Y, r.Width, r.Height, r.Rotation, r.FillColor, r.BorderColor, r.Selected)
	}
	fmt.Fprintf(w, "Arrows: %d\n", len(b.Arrows))
	for _, a := range b.Arrows {
		fmt.Fprintf(w, "  %s (%.1f,%.1f) -> (%.1f,%.1f) color=%s selected=%t\n",
			shortID(a.ID), a.Start.X, a.Start.Y, a.End.X, a.End.Y, a.Color, a.Selected)
	}
	fmt.Fprintf(w, "Groups: %d\n", len(b.Groups))
	for _, g := range b.Groups {
		ids := make([]string, len(g.RectangleIDs))
		for i, id := range g.RectangleIDs {
			ids[i] = shortID(id)
		}
		fmt.Fprintf(w, "  %s %v\n", shortID(g.ID), ids)
	}
}
