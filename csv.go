package tabulate

import (
	"encoding/csv"
	"fmt"
	"io"
)

type csvRenderer struct {
	delimiter rune
}

func (r *csvRenderer) Configure(name string, args ...any) error {
	switch name {
	case "delimiter":
		if len(args) != 1 {
			return fmt.Errorf("%w: delimiter takes one argument, got %d", ErrUnsupportedOperation, len(args))
		}
		switch d := args[0].(type) {
		case rune:
			r.delimiter = d
		case string:
			if len([]rune(d)) != 1 {
				return fmt.Errorf("%w: delimiter must be a single character, got %q", ErrUnsupportedOperation, d)
			}
			r.delimiter = []rune(d)[0]
		default:
			return fmt.Errorf("%w: delimiter argument must be a rune or string, got %T", ErrUnsupportedOperation, args[0])
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOperation, name)
	}
}

func (r *csvRenderer) RenderGrid(w io.Writer, g Grid) error {
	cw := csv.NewWriter(w)
	cw.Comma = r.delimiter
	for _, row := range g {
		if err := cw.Write(stringRow(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func stringRow(row Row) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = cellString(cell)
	}
	return out
}
