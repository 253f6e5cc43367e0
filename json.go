package tabulate

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonRenderer struct {
	indent string
}

func (r *jsonRenderer) Configure(name string, args ...any) error {
	switch name {
	case "indent":
		if len(args) != 1 {
			return fmt.Errorf("%w: indent takes one argument, got %d", ErrUnsupportedOperation, len(args))
		}
		s, ok := args[0].(string)
		if !ok {
			return fmt.Errorf("%w: indent argument must be a string, got %T", ErrUnsupportedOperation, args[0])
		}
		r.indent = s
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOperation, name)
	}
}

func (r *jsonRenderer) RenderGrid(w io.Writer, g Grid) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	return enc.Encode(g)
}
