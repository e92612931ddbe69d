package vt

// Attr is a bitset of the pen attributes a Cell can carry. Color is not
// part of Attr; it lives in Cell.fg/bg as a palette index.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrItalic
	AttrUnderline
	AttrInverse
)

// defaultFG and defaultBG match the original prototype's Cell defaults:
// index 7 (white) on index 0 (black), the classic ANSI pair.
const (
	defaultFG uint8 = 7
	defaultBG uint8 = 0
)

// Cell is one grid position: a rune plus the pen that was active when it
// was written. fg/bg are 8-bit indices into a 256-color palette; resolving
// them to displayable RGB is a presentation-layer concern (see palette.go)
// that the core never performs.
type Cell struct {
	Rune rune
	FG   uint8
	BG   uint8
	Attr Attr
}

// defaultCell is what a row's internal padding is filled with when Grid
// grows a row out to a new width: rune 0 (nothing drawn there yet) in the
// default pen. It is distinct from a space character, which a Terminal
// writes for a printed space and as the fill of a tab, in the current pen.
func defaultCell() Cell {
	return Cell{Rune: 0, FG: defaultFG, BG: defaultBG}
}

func (a Attr) has(bit Attr) bool { return a&bit != 0 }
