package tabulate

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// markdownRenderer draws the grid as a GitHub-flavored Markdown table.
// Markdown tables require a header row; it defaults to blank cells and can
// be set with Configure("header", ...).
type markdownRenderer struct {
	header []string
}

func (r *markdownRenderer) Configure(name string, args ...any) error {
	switch name {
	case "header":
		header := make([]string, len(args))
		for i, arg := range args {
			header[i] = cellString(arg)
		}
		r.header = header
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOperation, name)
	}
}

func (r *markdownRenderer) RenderGrid(w io.Writer, g Grid) error {
	if len(g) == 0 {
		return nil
	}
	rows := stringRows(g)

	numCols := len(rows[0])
	if len(r.header) > numCols {
		numCols = len(r.header)
	}

	header := make([]string, numCols)
	copy(header, r.header)

	// Minimum width 3 so the separator row stays well-formed.
	widths := make([]int, numCols)
	for i, col := range header {
		if w := runewidth.StringWidth(col); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = padCell(cell, width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
