package tabulate

import "math"

// Default column bounds for a fresh [Tabulator].
const (
	DefaultMinColumns = 1
	DefaultMaxColumns = 100000
)

// Row is one row of a [Grid]. Cells are opaque to the package; renderers
// decide how to print them.
type Row []any

// Grid is a rectangular collection of rows. Every row produced by
// [Tabulator.Tabulate] has the same length.
type Grid []Row

// Tabulator reshapes a flat sequence of values into a rectangular Grid.
//
// The column count is floor(sqrt(N)) clamped into [min, max], the sequence
// is sliced into fixed-width rows in input order, and the final partial row
// is padded with the fill value. The sqrt sizing is a deliberate heuristic:
// it does not minimize filler cells for every N, and callers depend on the
// exact formula, so it must not be replaced with a closest-to-square
// factorization.
//
// A Tabulator is not safe for concurrent use; give each goroutine its own
// instance or synchronize externally.
type Tabulator struct {
	minCols int
	maxCols int
	fill    any

	grid      Grid
	rows      int
	cols      int
	tabulated bool
}

// New returns a Tabulator with the default column bounds and a nil fill
// value.
func New() *Tabulator {
	return &Tabulator{
		minCols: DefaultMinColumns,
		maxCols: DefaultMaxColumns,
	}
}

// SetMaxColumns sets the upper column bound and returns the bound in effect
// afterwards. If the new maximum is below the current minimum, the minimum
// is lowered to match, so the pair is never inverted. Non-positive input is
// ignored, making the call a plain getter in that case.
func (t *Tabulator) SetMaxColumns(n int) int {
	if n >= 1 {
		t.maxCols = n
		if t.minCols > n {
			t.minCols = n
		}
	}
	return t.maxCols
}

// SetMinColumns sets the lower column bound and returns the bound in effect
// afterwards. If the new minimum exceeds the current maximum, the maximum is
// raised to match. Non-positive input is ignored.
func (t *Tabulator) SetMinColumns(n int) int {
	if n >= 1 {
		t.minCols = n
		if t.maxCols < n {
			t.maxCols = n
		}
	}
	return t.minCols
}

// MinColumns returns the current lower column bound.
func (t *Tabulator) MinColumns() int { return t.minCols }

// MaxColumns returns the current upper column bound.
func (t *Tabulator) MaxColumns() int { return t.maxCols }

// SetFillValue sets the value substituted into the trailing slots of a
// partial final row. The default is nil, which renderers print as an empty
// cell. The value persists across Tabulate calls.
func (t *Tabulator) SetFillValue(v any) {
	t.fill = v
}

// Tabulate partitions seq into a rectangular Grid and caches the result on
// the Tabulator for later rendering. The returned Grid is independent of the
// cache; mutating it does not affect a subsequent [Tabulator.Render].
//
// An empty seq clears the cache and returns an empty Grid.
func (t *Tabulator) Tabulate(seq []any) Grid {
	t.tabulated = true
	if len(seq) == 0 {
		t.grid = Grid{}
		t.rows = 0
		t.cols = 0
		return Grid{}
	}

	n := len(seq)
	cols := int(math.Sqrt(float64(n)))
	if cols > t.maxCols {
		cols = t.maxCols
	}
	if cols < t.minCols {
		cols = t.minCols
	}

	full := n / cols
	rest := (cols - n%cols) % cols

	grid := make(Grid, 0, full+1)
	for i := 0; i < full; i++ {
		row := make(Row, cols)
		copy(row, seq[i*cols:(i+1)*cols])
		grid = append(grid, row)
	}
	if rest > 0 {
		row := make(Row, cols)
		copy(row, seq[full*cols:])
		for i := cols - rest; i < cols; i++ {
			row[i] = t.fill
		}
		grid = append(grid, row)
	}

	t.grid = grid
	t.rows = len(grid)
	t.cols = cols
	return grid.clone()
}

// RowCount returns the row count of the last tabulation, or 0 if Tabulate
// has not been called or was last called with an empty sequence.
func (t *Tabulator) RowCount() int { return t.rows }

// ColumnCount returns the column count of the last tabulation, or 0 if
// Tabulate has not been called or was last called with an empty sequence.
func (t *Tabulator) ColumnCount() int { return t.cols }

// LastGrid returns a copy of the cached Grid from the most recent Tabulate
// call. The second return is false if Tabulate has never been called.
func (t *Tabulator) LastGrid() (Grid, bool) {
	if !t.tabulated {
		return nil, false
	}
	return t.grid.clone(), true
}

func (g Grid) clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make(Row, len(row))
		copy(out[i], row)
	}
	return out
}

// Values converts a typed slice into the []any a Tabulator consumes.
func Values[T any](items ...T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
