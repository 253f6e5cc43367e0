// Package tabulate reshapes a flat sequence of values into a rectangular
// grid and renders it through pluggable renderers.
//
// A [Tabulator] picks a column count from the element count
// (floor(sqrt(N)), clamped into a min/max bound pair), slices the sequence
// into fixed-width rows, and pads the final partial row with a fill value:
//
//	t := tabulate.New()
//	grid := t.Tabulate(tabulate.Values(1, 2, 3, 4, 5, 6, 7, 8, 9, 10))
//	// [[1 2 3] [4 5 6] [7 8 9] [10 <nil> <nil>]]
//
// The bound pair is self-repairing: raising the minimum above the current
// maximum raises the maximum to match, and vice versa, so it can never
// invert. Setters ignore non-positive input and return the value in effect,
// doubling as getters.
//
// # Rendering
//
// Every Tabulate call caches its grid on the instance, so a later
// [Tabulator.Render] can reuse it without passing the data again:
//
//	out, err := t.Render("text", tabulate.RenderOptions{})
//
// Render resolves the identifier in a registry of constructors. A renderer
// needs only the [Renderer] capability; it may also implement
// [Configurable] to accept ordered configuration [Call] instructions
// supplied per dispatch:
//
//	out, err := t.Render("html", tabulate.RenderOptions{
//		Data:  tabulate.Values("a", "b", "c"),
//		Calls: []tabulate.Call{{Name: "class", Args: []any{"wide"}}},
//	})
//
// Built-in renderers: text (bordered terminal table), html, markdown, csv,
// json, and yaml. Register additional ones with [RegisterRenderer].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMissingData] — Render called with no data and no prior tabulation
//   - [ErrMissingRenderer] — Render called with an empty identifier
//   - [ErrRendererLoad] — unknown renderer identifier
//   - [ErrUnsupportedOperation] — a configuration call the renderer rejects
//   - [ErrRendererContract] — registered value lacks the output capability
//
// The package is synchronous and allocation-only: no I/O beyond the writer
// a renderer is handed, no goroutines, no locking. Tabulator instances are
// not safe for concurrent use.
package tabulate
