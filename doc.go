// Package vt implements the core of a DEC/ANSI terminal emulator: a
// byte-oriented escape-sequence parser (Parser) driving a callback
// interface (ActionSink), and a styled character grid (Grid) that a
// Terminal maintains in response to those callbacks.
//
// The package is deliberately narrow. PTY allocation, shell spawning,
// window-system input, and pixel rendering all live outside it (see
// cmd/vtshell and internal/ptyio for the supporting pieces that make a
// runnable program); this package only turns bytes into grid state.
package vt
