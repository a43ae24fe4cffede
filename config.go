package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"drawboard/editor"
)

type Config struct {
	SaveDirectory string
	Fill          string
	Border        string
	ArrowColor    string
	CellWidth     int
	CellHeight    int
	Legend        bool
	LogLevel      string
	LogFile       string
}

func defaultConfig() *Config {
	return &Config{
		Fill:       editor.DefaultFill,
		Border:     editor.DefaultBorder,
		ArrowColor: editor.DefaultArrowColor,
		CellWidth:  defaultCellWidth,
		CellHeight: defaultCellHeight,
		Legend:     true,
		LogLevel:   "info",
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	file, err := os.Open(filepath.Join(homeDir, ".drawboardrc"))
	if err != nil {
		return config
	}
	defer file.Close()

	parseConfig(file, homeDir, config)
	return config
}

// parseConfig applies key = value lines from r on top of config. Unknown keys
// and malformed values leave the current setting alone.
func parseConfig(r io.Reader, homeDir string, config *Config) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "fill", "fillcolor", "fill_color":
			config.Fill = value
		case "border", "bordercolor", "border_color":
			config.Border = value
		case "arrowcolor", "arrow_color", "arrow":
			config.ArrowColor = value
		case "cellwidth", "cell_width":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.CellWidth = n
			}
		case "cellheight", "cell_height":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.CellHeight = n
			}
		case "legend":
			config.Legend = strings.ToLower(value) == "true"
		case "loglevel", "log_level":
			var level slog.Level
			if err := level.UnmarshalText([]byte(value)); err == nil {
				config.LogLevel = strings.ToLower(value)
			}
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		}
	}
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
