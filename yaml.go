package tabulate

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlRenderer struct {
	indent int
}

func (r *yamlRenderer) Configure(name string, args ...any) error {
	switch name {
	case "indent":
		if len(args) != 1 {
			return fmt.Errorf("%w: indent takes one argument, got %d", ErrUnsupportedOperation, len(args))
		}
		n, ok := args[0].(int)
		if !ok {
			return fmt.Errorf("%w: indent argument must be an int, got %T", ErrUnsupportedOperation, args[0])
		}
		r.indent = n
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOperation, name)
	}
}

func (r *yamlRenderer) RenderGrid(w io.Writer, g Grid) error {
	enc := yaml.NewEncoder(w)
	if r.indent > 0 {
		enc.SetIndent(r.indent)
	}
	if err := enc.Encode(g); err != nil {
		return err
	}
	return enc.Close()
}
