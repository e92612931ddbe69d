package vt

import (
	"fmt"
	"strings"
)

// Dump renders the grid as a string of real SGR escape sequences, one line
// per row, each cell re-emitting its fg/bg palette index directly (not
// resolved to RGB — that stays the host terminal's job). It exists for
// debugging and for the simple whole-frame renderer in cmd/vtshell.
func (g *Grid) Dump() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			cell := g.CellAt(x, y)
			fg, bg := cell.FG, cell.BG
			if cell.Attr.has(AttrInverse) {
				fg, bg = bg, fg
			}
			fmt.Fprintf(&b, "\x1b[38;5;%dm\x1b[48;5;%dm", fg, bg)
			if cell.Attr.has(AttrBold) {
				b.WriteString("\x1b[1m")
			}
			if cell.Attr.has(AttrItalic) {
				b.WriteString("\x1b[3m")
			}
			if cell.Attr.has(AttrUnderline) {
				b.WriteString("\x1b[4m")
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
			b.WriteString("\x1b[0m")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
