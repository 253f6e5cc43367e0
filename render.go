package tabulate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMissingData          = errors.New("no data to render")
	ErrMissingRenderer      = errors.New("missing renderer identifier")
	ErrRendererLoad         = errors.New("renderer not registered")
	ErrUnsupportedOperation = errors.New("unsupported renderer operation")
	ErrRendererContract     = errors.New("renderer lacks output capability")
)

// Renderer is the one required capability of a renderer: write a formatted
// representation of the grid to w.
type Renderer interface {
	RenderGrid(w io.Writer, g Grid) error
}

// Configurable is the optional capability a renderer exposes to accept
// configuration calls before rendering. Implementations return
// [ErrUnsupportedOperation] (wrapped) for names they do not recognize.
type Configurable interface {
	Configure(name string, args ...any) error
}

// Call is a single named configuration instruction with positional
// arguments, applied to a renderer before output is produced.
type Call struct {
	Name string
	Args []any
}

// RenderOptions controls a single Render dispatch.
//
// Data, when non-nil, is tabulated fresh and overwrites the cached grid;
// when nil, the grid from the previous Tabulate call is reused. Calls are
// applied to the renderer in order before rendering.
type RenderOptions struct {
	Data  []any
	Calls []Call
}

var renderers = map[string]func() any{
	"csv":      func() any { return &csvRenderer{delimiter: ','} },
	"html":     func() any { return &htmlRenderer{} },
	"json":     func() any { return &jsonRenderer{} },
	"markdown": func() any { return &markdownRenderer{} },
	"text":     func() any { return &textRenderer{border: BorderRounded} },
	"yaml":     func() any { return &yamlRenderer{} },
}

// RegisterRenderer adds a renderer constructor under id, replacing any
// previous registration. The constructed value must implement [Renderer] to
// be usable; [Configurable] is optional. Registration is expected to happen
// during init, before any Render call.
func RegisterRenderer(id string, ctor func() any) {
	renderers[id] = ctor
}

// Renderers returns the sorted identifiers of all registered renderers.
func Renderers() []string {
	ids := make([]string, 0, len(renderers))
	for id := range renderers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Render resolves the renderer registered under id, feeds it a grid, and
// returns the formatted output.
//
// If opts.Data is non-nil it is tabulated first, exactly as if
// [Tabulator.Tabulate] had been called; otherwise the cached grid from the
// previous tabulation is rendered. Calling Render with no data before any
// tabulation returns [ErrMissingData].
func (t *Tabulator) Render(id string, opts RenderOptions) (string, error) {
	if id == "" {
		return "", ErrMissingRenderer
	}

	var grid Grid
	if opts.Data != nil {
		grid = t.Tabulate(opts.Data)
	} else {
		var ok bool
		grid, ok = t.LastGrid()
		if !ok {
			return "", fmt.Errorf("%w: renderer %q called without data or a prior tabulation", ErrMissingData, id)
		}
	}

	ctor, ok := renderers[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRendererLoad, id)
	}
	r := ctor()

	if len(opts.Calls) > 0 {
		cfg, ok := r.(Configurable)
		if !ok {
			return "", fmt.Errorf("%w: renderer %q accepts no configuration calls", ErrUnsupportedOperation, id)
		}
		for _, call := range opts.Calls {
			if err := cfg.Configure(call.Name, call.Args...); err != nil {
				return "", err
			}
		}
	}

	out, ok := r.(Renderer)
	if !ok {
		return "", fmt.Errorf("%w: %q does not implement RenderGrid", ErrRendererContract, id)
	}

	var buf bytes.Buffer
	if err := out.RenderGrid(&buf, grid); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// cellString formats a single cell for the line-oriented renderers. A nil
// cell (the default fill value) prints as an empty string.
func cellString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

func stringRows(g Grid) [][]string {
	rows := make([][]string, len(g))
	for i, row := range g {
		rows[i] = stringRow(row)
	}
	return rows
}
