package tabulate

import (
	"fmt"
	"html"
	"io"
	"strings"
)

type htmlRenderer struct {
	class string
	id    string
}

func (r *htmlRenderer) Configure(name string, args ...any) error {
	switch name {
	case "class", "id":
		if len(args) != 1 {
			return fmt.Errorf("%w: %s takes one argument, got %d", ErrUnsupportedOperation, name, len(args))
		}
		s, ok := args[0].(string)
		if !ok {
			return fmt.Errorf("%w: %s argument must be a string, got %T", ErrUnsupportedOperation, name, args[0])
		}
		if name == "class" {
			r.class = s
		} else {
			r.id = s
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOperation, name)
	}
}

func (r *htmlRenderer) RenderGrid(w io.Writer, g Grid) error {
	var attrs strings.Builder
	if r.id != "" {
		fmt.Fprintf(&attrs, " id=%q", r.id)
	}
	if r.class != "" {
		fmt.Fprintf(&attrs, " class=%q", r.class)
	}
	if _, err := fmt.Fprintf(w, "<table%s>\n", attrs.String()); err != nil {
		return err
	}
	for _, row := range g {
		if _, err := fmt.Fprintln(w, "  <tr>"); err != nil {
			return err
		}
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "    <td>%s</td>\n", html.EscapeString(cellString(cell))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "  </tr>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}
