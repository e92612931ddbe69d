package vt

// Terminal is the core's ActionSink implementation: it owns a Grid and the
// current pen, and turns parser callbacks into Grid mutations. It never
// calls back into a Parser.
type Terminal struct {
	Grid *Grid
	pen  Cell // Rune is unused; FG/BG/Attr are the current SGR state.

	savedX, savedY int
	haveSaved      bool
}

// NewTerminal returns a Terminal backed by a freshly created w x h Grid.
func NewTerminal(w, h int) *Terminal {
	return &Terminal{Grid: NewGrid(w, h), pen: defaultCell()}
}

// Put writes r at the cursor in the current pen. This is the entry point
// for the printable runes Parser.Consume returns false for.
func (t *Terminal) Put(r rune) {
	cell := t.pen
	cell.Rune = r
	t.Grid.Put(cell)
}

func (t *Terminal) Control(c byte) {
	switch c {
	case '\r':
		t.Grid.CarriageReturn()
		return
	case '\n':
		t.Grid.LineFeed()
		return
	case '\t':
		fill := t.pen
		fill.Rune = ' '
		t.Grid.Tab(fill)
		return
	}
}

// Escape handles a bare escape sequence (one with no CSI/DCS/OSC
// introducer). DECSC/DECRC, IND/NEL/RI, and RIS are implemented here in
// terms of existing Grid operations; anything else is unhandled.
func (t *Terminal) Escape(command []byte) {
	if len(command) != 1 {
		return
	}
	switch command[0] {
	case '7': // DECSC: save cursor position
		t.savedX, t.savedY = t.Grid.X(), t.Grid.Y()
		t.haveSaved = true
	case '8': // DECRC: restore cursor position
		if t.haveSaved {
			t.Grid.Move(t.savedX, t.savedY)
		}
	case 'D': // IND: index (move down, scrolling if already on the last row)
		t.Grid.LineFeed()
	case 'E': // NEL: next line
		t.Grid.CarriageReturn()
		t.Grid.LineFeed()
	case 'M': // RI: reverse index (move up, or scroll if already on the first row)
		if t.Grid.Y() == 0 {
			t.scrollDown()
		} else {
			t.Grid.Move(t.Grid.X(), t.Grid.Y()-1)
		}
	case 'c': // RIS: reset to initial state
		t.Grid = NewGrid(t.Grid.Width(), t.Grid.Height())
		t.pen = defaultCell()
		t.haveSaved = false
	}
}

// scrollDown inserts a blank row at the top and discards the bottom row;
// Grid exposes no dedicated "scroll down" primitive, so RI at the top row
// rotates the grid's rows directly. The cursor position is unchanged.
func (t *Terminal) scrollDown() {
	g := t.Grid
	copy(g.cells[1:], g.cells[:g.h-1])
	g.cells[0] = nil
	g.fixWidth()
}

// CSI handles a Control Sequence Introducer. Only SGR ('m') is interpreted
// with any depth; DSR/DA ('n'/'c') and everything else are accepted but
// produce no reply, matching the original prototype's silence there.
func (t *Terminal) CSI(command []byte, args []int) {
	if len(command) != 1 {
		return
	}
	switch command[0] {
	case 'm':
		t.sgr(args)
	}
}

// sgr folds a sequence of SGR parameters left to right into the current
// pen, matching the accumulation order real terminals use: later codes in
// the same sequence override earlier ones.
func (t *Terminal) sgr(args []int) {
	if len(args) == 3 && args[0] == 38 && args[1] == 5 {
		t.pen.FG = paletteIndex(args[2], defaultFG)
		return
	}
	if len(args) == 3 && args[0] == 48 && args[1] == 5 {
		t.pen.BG = paletteIndex(args[2], defaultBG)
		return
	}
	if len(args) == 0 {
		args = []int{0}
	}
	for _, a := range args {
		switch a {
		case 0:
			t.pen = defaultCell()
			continue
		case 1:
			t.pen.Attr |= AttrBold
			continue
		case 2:
			t.pen.Attr &^= AttrBold
			continue
		case 3:
			t.pen.Attr |= AttrItalic
			continue
		case 4, 21:
			t.pen.Attr |= AttrUnderline
			continue
		case 7:
			t.pen.Attr |= AttrInverse
			continue
		case 22:
			t.pen.Attr &^= AttrBold
			continue
		case 23:
			t.pen.Attr &^= AttrItalic
			continue
		case 24:
			t.pen.Attr &^= AttrUnderline
			continue
		case 27:
			t.pen.Attr &^= AttrInverse
			continue
		case 5, 8, 9, 25, 28, 29:
			continue // accepted, unsupported: blink/hidden/strike toggles
		case 39:
			t.pen.FG = defaultFG
			continue
		case 49:
			t.pen.BG = defaultBG
			continue
		}
		switch {
		case a >= 30 && a < 38:
			t.pen.FG = uint8(a - 30)
		case a >= 40 && a < 48:
			t.pen.BG = uint8(a - 40)
		case a >= 90 && a < 98:
			t.pen.FG = uint8(8 + a - 90)
		case a >= 100 && a < 108:
			t.pen.BG = uint8(8 + a - 100)
		}
	}
}

// paletteIndex validates a 38;5;n/48;5;n index, snapping out-of-range
// values to def rather than clamping them into range.
func paletteIndex(n int, def uint8) uint8 {
	if n < 0 || n >= 256 {
		return def
	}
	return uint8(n)
}

func (t *Terminal) DSC(command []byte, args []int, payload []byte) {}

func (t *Terminal) OSC(payload []byte) {}
