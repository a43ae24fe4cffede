package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"drawboard/editor"
)

var (
	flagFill       string
	flagBorder     string
	flagArrowColor string
	flagSaveDir    string
	flagLogFile    string
	flagLogLevel   string
	flagCellWidth  int
	flagCellHeight int
)

var rootCmd = &cobra.Command{
	Use:   "drawboard",
	Short: "A terminal diagram editor for rectangles and arrows",
	Long: `drawboard edits a 1200x800 board of rectangles and arrows with the mouse.
Rectangles can be moved, scaled from their handles, rotated from just outside
a corner, recoloured and grouped. Settings are read from ~/.drawboardrc and
can be overridden with flags.`,
	Version:      "0.1.0",
	SilenceUsage: true,
	RunE:         runEditor,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&flagFill, "fill", "", "initial fill colour (#rrggbb)")
	f.StringVar(&flagBorder, "border", "", "initial border colour (#rrggbb)")
	f.StringVar(&flagArrowColor, "arrow-color", "", "colour of new arrows (#rrggbb)")
	f.StringVar(&flagSaveDir, "save-dir", "", "directory for exported images")
	f.StringVar(&flagLogFile, "log-file", "", "write logs to this file")
	f.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")
	f.IntVar(&flagCellWidth, "cell-width", 0, "canvas pixels per terminal column")
	f.IntVar(&flagCellHeight, "cell-height", 0, "canvas pixels per terminal row")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig layers changed flags over ~/.drawboardrc.
func resolveConfig(cmd *cobra.Command) *Config {
	config := loadConfig()
	flags := cmd.Flags()
	if flags.Changed("fill") {
		config.Fill = flagFill
	}
	if flags.Changed("border") {
		config.Border = flagBorder
	}
	if flags.Changed("arrow-color") {
		config.ArrowColor = flagArrowColor
	}
	if flags.Changed("save-dir") {
		home, _ := os.UserHomeDir()
		config.SaveDirectory = expandPath(flagSaveDir, home)
	}
	if flags.Changed("log-file") {
		config.LogFile = flagLogFile
	}
	if flags.Changed("log-level") {
		config.LogLevel = flagLogLevel
	}
	if flags.Changed("cell-width") && flagCellWidth > 0 {
		config.CellWidth = flagCellWidth
	}
	if flags.Changed("cell-height") && flagCellHeight > 0 {
		config.CellHeight = flagCellHeight
	}
	return config
}

// newLogger opens the configured log file through bubbletea so the terminal
// stays clean. Without a log file, records go to fallback.
func newLogger(config *Config, fallback io.Writer) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	if config.LogFile == "" {
		return slog.New(slog.NewTextHandler(fallback, opts)), func() {}, nil
	}
	f, err := tea.LogToFile(config.LogFile, "drawboard")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
}

func newModel(config *Config, logger *slog.Logger) model {
	capture := &termCapture{log: logger}
	st := editor.New(config.Fill, config.Border, config.ArrowColor)
	return model{
		session: editor.NewSession(st, capture, logger),
		capture: capture,
		config:  config,
		log:     logger,
		cursor:  editor.CursorDefault,
		frame:   &rasterCache{},
	}
}

func runEditor(cmd *cobra.Command, args []string) error {
	config := resolveConfig(cmd)
	logger, closeLog, err := newLogger(config, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	m := newModel(config, logger)
	defer m.session.Close()

	logger.Info("starting editor", "cellwidth", config.CellWidth, "cellheight", config.CellHeight)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}
