package main

import (
	"io"
	"os"
)

// inputLoop copies raw bytes from the host terminal's stdin straight into
// the PTY master, exactly as a real terminal's keyboard would. The teacher's
// input loop intercepts scrollback-navigation keys before forwarding; this
// driver has no scrollback, so every byte goes through untouched.
func inputLoop(w io.Writer, done <-chan struct{}) {
	buf := make([]byte, 4096)
	for {
		select {
		case <-done:
			return
		default:
		}
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return
			}
		}
		if err != nil {
			return
		}
	}
}
