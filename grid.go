package vt

// Grid is a styled 2D character array with a cursor. It is the core's sole
// stateful model of "what is on screen"; a Terminal owns one and drives it
// from ActionSink callbacks.
//
// Rows are independently sized and may be shorter than w — rows that
// scrolling or a height change brings in start empty and only grow as far
// as something is written or the cursor moves into them. x may equal
// w, which means the cursor is pending a wrap on the next Put. y is -1
// until the first Resize.
type Grid struct {
	cells [][]Cell
	w, h  int
	x, y  int
	Pen   Cell // the format new cells are stamped with; Rune is ignored.
}

// NewGrid returns a Grid of the given size with every cell in the default
// pen. The cursor starts in column 0 of the bottom row, which is where the
// initial Resize from an empty grid leaves it.
func NewGrid(w, h int) *Grid {
	g := &Grid{y: -1}
	g.Resize(w, h)
	for i := range g.cells {
		g.cells[i] = makeRow(w)
	}
	return g
}

func makeRow(w int) []Cell {
	row := make([]Cell, w)
	for i := range row {
		row[i] = defaultCell()
	}
	return row
}

// Width and Height report the current grid dimensions.
func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

// X and Y report the cursor position. X may equal Width() (pending wrap);
// Y is -1 before the first Resize.
func (g *Grid) X() int { return g.x }
func (g *Grid) Y() int { return g.y }

// CellAt returns the cell at (x, y). x/y must be within the current grid
// bounds; this is a programmer error otherwise, matching the core's
// "invalid dimension" error category.
func (g *Grid) CellAt(x, y int) Cell {
	row := g.cells[y]
	if x >= len(row) {
		return defaultCell()
	}
	return row[x]
}

// Put writes value at the cursor and advances it, wrapping to the next
// line first if the cursor was already pending a wrap (x == w).
func (g *Grid) Put(value Cell) {
	if g.x == g.w {
		g.CarriageReturn()
		g.LineFeed()
	}
	row := g.cells[g.y]
	if g.x == len(row) {
		row = append(row, defaultCell())
		g.cells[g.y] = row
	}
	row[g.x] = value
	g.x++
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (g *Grid) CarriageReturn() {
	g.x = 0
}

// LineFeed moves the cursor down one row, scrolling the grid via ShiftUp
// if it was already on the last row.
func (g *Grid) LineFeed() {
	if g.y+1 == g.h {
		g.ShiftUp()
	} else {
		g.y++
	}
	g.fixWidth()
}

// ShiftUp scrolls the grid up by one row: row 0 is discarded, every other
// row moves up by one, and a fresh empty row appears at the bottom.
func (g *Grid) ShiftUp() {
	for i := 1; i < g.h; i++ {
		g.cells[i-1], g.cells[i] = g.cells[i], g.cells[i-1]
	}
	g.cells[g.h-1] = nil
}

// Tab advances the cursor to the next tab stop (every 8th column),
// stamping every cell it passes over with fill.
func (g *Grid) Tab(fill Cell) {
	for {
		g.Put(fill)
		if isTabStop(g.x) {
			return
		}
	}
}

func isTabStop(x int) bool { return x%8 == 0 }

// Move sets the cursor position directly, e.g. in response to a cursor
// positioning CSI sequence.
func (g *Grid) Move(x, y int) {
	g.x = x
	g.y = y
	g.fixWidth()
}

func (g *Grid) fixWidth() {
	row := g.cells[g.y]
	if len(row) <= g.x {
		want := g.x + 1
		if want > g.w {
			want = g.w
		}
		for len(row) < want {
			row = append(row, defaultCell())
		}
		g.cells[g.y] = row
	}
}

// Resize changes the grid's dimensions. Growing the height inserts blank
// rows at the top and shifts y down by the growth so the cursor stays on
// the same logical line; shrinking drops rows from the top and shifts y up
// the same way. Rows wider than the new width are truncated; x is clamped
// to the new width.
func (g *Grid) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		panic("vt: Resize requires positive width and height")
	}
	if dh := h - g.h; dh != 0 {
		if dh > 0 {
			g.cells = append(g.cells, make([][]Cell, dh)...)
			for i := g.h - 1; i >= 0; i-- {
				g.cells[i], g.cells[i+dh] = g.cells[i+dh], g.cells[i]
			}
		} else {
			for i := 0; i < h; i++ {
				g.cells[i], g.cells[i-dh] = g.cells[i-dh], g.cells[i]
			}
			g.cells = g.cells[:h]
		}
		g.y += dh
		g.h = h
	}
	for i := range g.cells {
		if len(g.cells[i]) > w {
			g.cells[i] = g.cells[i][:w]
		}
	}
	if g.x > w {
		g.x = w
	}
	g.w = w
}
