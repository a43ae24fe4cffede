package main

type ToolbarItem int

const (
	ToolNone ToolbarItem = iota
	ToolSelect
	ToolRectangle
	ToolArrow
	ToolFill
	ToolBorder
	ToolGroup
	ToolDelete
)

const (
	defaultCellWidth  = 10
	defaultCellHeight = 20

	toolbarRows = 1
	statusRows  = 1
)

// palette is what the fill and border swatches cycle through.
var palette = []string{
	"#3b82f6",
	"#1e40af",
	"#ef4444",
	"#f97316",
	"#eab308",
	"#22c55e",
	"#14b8a6",
	"#8b5cf6",
	"#ec4899",
	"#6b7280",
	"#000000",
	"#ffffff",
}
