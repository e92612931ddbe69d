package vt

import "unicode/utf8"

// Session couples a Parser to the Terminal it drives, decoding a raw byte
// stream into runes and routing each one to either the parser (control
// codes and escape sequences) or straight into the grid (everything the
// parser's fast path declines).
//
// This is the glue spec.md leaves as an exercise for a caller; Terminal and
// Parser themselves know nothing about each other.
type Session struct {
	Term   *Terminal
	Parser *Parser
}

// NewSession wires term to a new Parser targeting sink. Sink is usually
// term itself, optionally wrapped in a LoggingSink.
func NewSession(term *Terminal, sink ActionSink) *Session {
	return &Session{Term: term, Parser: NewParser(sink)}
}

// Write decodes p as UTF-8 and feeds every rune through the parser,
// falling back to Terminal.Put for runes the parser reports as plain text.
// It never returns an error; malformed UTF-8 is decoded as the Unicode
// replacement character, one byte at a time, so the stream always makes
// forward progress.
func (s *Session) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		p = p[size:]
		if !s.Parser.Consume(r) {
			s.Term.Put(r)
		}
	}
	return n, nil
}
