package main

import (
	"os"
	"time"

	"github.com/sam-mccall/vtcore"
)

// renderer redraws the host terminal from a Grid whenever its dump output
// actually changes. It trades the teacher's per-cell differential diff
// (tied to border/status-bar/scrollback features this repository doesn't
// carry) for a much simpler whole-frame compare, on the same ticker-driven
// loop shape.
type renderer struct {
	term     *vt.Terminal
	last     string
	interval time.Duration
	stop     chan struct{}
}

func newRenderer(term *vt.Terminal) *renderer {
	return &renderer{term: term, interval: 16 * time.Millisecond, stop: make(chan struct{})}
}

func (r *renderer) loop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.draw()
		}
	}
}

func (r *renderer) draw() {
	frame := r.term.Grid.Dump()
	if frame == r.last {
		return
	}
	r.last = frame
	os.Stdout.WriteString("\x1b[H" + frame)
}

func (r *renderer) close() {
	close(r.stop)
}
