package vt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures every ActionSink call it receives, in order, for
// assertions against the exact sequence of events a byte stream produces.
type recordingSink struct {
	controls []byte
	escapes  [][]byte
	csis     []csiEvent
	dscs     []dscEvent
	oscs     [][]byte
}

type csiEvent struct {
	command []byte
	args    []int
}

type dscEvent struct {
	command []byte
	args    []int
	payload []byte
}

func (s *recordingSink) Control(c byte)         { s.controls = append(s.controls, c) }
func (s *recordingSink) Escape(command []byte)  { s.escapes = append(s.escapes, command) }
func (s *recordingSink) CSI(command []byte, args []int) {
	s.csis = append(s.csis, csiEvent{command, args})
}
func (s *recordingSink) DSC(command []byte, args []int, payload []byte) {
	s.dscs = append(s.dscs, dscEvent{command, args, payload})
}
func (s *recordingSink) OSC(payload []byte) { s.oscs = append(s.oscs, payload) }

func feed(p *Parser, s string) []rune {
	var printable []rune
	for _, r := range s {
		if !p.Consume(r) {
			printable = append(printable, r)
		}
	}
	return printable
}

func TestConsumeFastPathSkipsPrintableText(t *testing.T) {
	sink := &recordingSink{}
	p := NewParser(sink)

	printable := feed(p, "hi")
	assert.Equal(t, []rune("hi"), printable)
	assert.Empty(t, sink.controls)
	assert.Empty(t, sink.escapes)
}

func TestControlCodesReachSink(t *testing.T) {
	sink := &recordingSink{}
	p := NewParser(sink)

	feed(p, "a\rb\nc\td")
	require.Equal(t, []byte{'\r', '\n', '\t'}, sink.controls)
}

func TestSimpleCSIWithTwoIntParams(t *testing.T) {
	sink := &recordingSink{}
	p := NewParser(sink)

	feed(p, "\x1b[31;1m")
	require.Len(t, sink.csis, 1)
	assert.Equal(t, []byte("m"), sink.csis[0].command)
	assert.Equal(t, []int{31, 1}, sink.csis[0].args)
}

func TestCSIEntrySemicolonIsAcceptedAsPrivateMarker(t *testing.T) {
	sink := &recordingSink{}
	p := NewParser(sink)

	// A leading ';' in CSI_ENTRY is admitted by the (0x3A, 0x40) range
	// check, exactly as it would be for a real private-marker byte like
	// '?'. This sequence still ends in a clean CSI callback, with ';' kept
	// as the first byte of the command.
	feed(p, "\x1b[;25h")
	require.Len(t, sink.csis, 1)
	assert.Equal(t, []byte(";h"), sink.csis[0].command)
	assert.Equal(t, []int{25}, sink.csis[0].args)
}

func TestOSCTerminatedByC1ST(t *testing.T) {
	sink := &recordingSink{}
	p := NewParser(sink)

	feed(p, "\x1b]0;title\u009c")
	require.Len(t, sink.oscs, 1)
	assert.Equal(t, "0;title", string(sink.oscs[0]))
}

func TestOSCNotTerminatedByBEL(t *testing.T) {
	sink := &recordingSink{}
	p := NewParser(sink)

	feed(p, "\x1b]0;title\a")
	// BEL (0x07) is a C0 control; the parser stays in OSC_STRING for any
	// byte below 0x20 that isn't otherwise special, so BEL alone never
	// closes an OSC string in this state machine. It is discarded, not
	// appended to the payload.
	assert.Empty(t, sink.oscs)
}

func TestOSCEscBackslashEmitsEarlyViaUniversalEscape(t *testing.T) {
	sink := &recordingSink{}
	p := NewParser(sink)

	// ESC always transitions to ESCAPE regardless of current state (the
	// universal byte table takes precedence over any state-specific
	// rule), so it exits OSC_STRING and emits the accumulated payload
	// before the trailing backslash is parsed as its own Escape event.
	feed(p, "\x1b]0;title\x1b\\")
	require.Len(t, sink.oscs, 1)
	assert.Equal(t, "0;title", string(sink.oscs[0]))
	require.Len(t, sink.escapes, 1)
	assert.Equal(t, []byte("\\"), sink.escapes[0])
}

func TestDCSPassthroughEmitsOnST(t *testing.T) {
	sink := &recordingSink{}
	p := NewParser(sink)

	feed(p, "\x1bP1;2$qpayload\u009c")
	require.Len(t, sink.dscs, 1)
	// The final byte ('q') belongs to the passthrough payload, not command:
	// it is appended on entry to DCS_PASSTHROUGH, exactly as a later
	// DCS_PASSTHROUGH byte would be.
	assert.Equal(t, []byte("$"), sink.dscs[0].command)
	assert.Equal(t, []int{1, 2}, sink.dscs[0].args)
	assert.Equal(t, "qpayload", string(sink.dscs[0].payload))
}

func TestMalformedCSIIsAbsorbedSilently(t *testing.T) {
	sink := &recordingSink{}
	p := NewParser(sink)

	// An intermediate byte (' ') followed by a second byte in the
	// 0x30-0x3F gap ('5') pushes CSI_INTERMEDIATE into CSI_IGNORE; the
	// rest of the sequence is swallowed until the final byte, with no
	// CSI callback at all.
	feed(p, "\x1b[ 5X")
	assert.Empty(t, sink.csis)
}
