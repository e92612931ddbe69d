package vt

import "go.uber.org/zap"

// ActionSink receives the decoded output of a Parser. A parser holds
// exactly one sink and never calls back into the parser from within a sink
// method — see Parser for the reentrancy rule.
type ActionSink interface {
	// Control handles a single C0/C1 control code (a byte below 0x20, or a
	// C1 code in 0x80-0x9F that does not open or end a sequence or string).
	Control(c byte)

	// Escape handles a complete escape sequence: command is the
	// intermediate bytes (if any) followed by the final byte, with the
	// leading ESC already stripped.
	Escape(command []byte)

	// CSI handles a complete Control Sequence Introducer: command is the
	// intermediate+final bytes with any private-marker byte retained as
	// its first element; args are the semicolon-separated numeric
	// parameters in order. An empty parameter adds no entry, so a sequence
	// with no digits has no args at all.
	CSI(command []byte, args []int)

	// DSC handles a complete Device Control String: command/args mirror
	// CSI's, payload is everything consumed in DCS_PASSTHROUGH.
	DSC(command []byte, args []int, payload []byte)

	// OSC handles a complete Operating System Command: payload is
	// everything between the introducer and the terminator.
	OSC(payload []byte)
}

// LoggingSink wraps another ActionSink, logging every event at debug level
// before forwarding it unchanged. It exists so that the "accepted and
// logged" behavior required of unhandled sequences (spec §4.5) lives in one
// place instead of being duplicated across every ActionSink implementation.
//
// This is composition, not inheritance: LoggingSink holds a sink, it is not
// a base a sink embeds, so a Terminal's own Control/CSI/etc. methods are
// never shadowed or bypassed by logging.
type LoggingSink struct {
	next ActionSink
	log  *zap.Logger
}

// NewLoggingSink returns a sink that logs to log before forwarding every
// event to next. A nil log disables logging entirely (forwarding is the
// only effect).
func NewLoggingSink(next ActionSink, log *zap.Logger) *LoggingSink {
	return &LoggingSink{next: next, log: log}
}

func (s *LoggingSink) Control(c byte) {
	if s.log != nil {
		s.log.Debug("control", zap.Uint8("byte", c))
	}
	s.next.Control(c)
}

func (s *LoggingSink) Escape(command []byte) {
	if s.log != nil {
		s.log.Debug("escape", zap.ByteString("command", command))
	}
	s.next.Escape(command)
}

func (s *LoggingSink) CSI(command []byte, args []int) {
	if s.log != nil {
		s.log.Debug("csi", zap.ByteString("command", command), zap.Ints("args", args))
	}
	s.next.CSI(command, args)
}

func (s *LoggingSink) DSC(command []byte, args []int, payload []byte) {
	if s.log != nil {
		s.log.Debug("dcs", zap.ByteString("command", command), zap.Ints("args", args), zap.ByteString("payload", payload))
	}
	s.next.DSC(command, args, payload)
}

func (s *LoggingSink) OSC(payload []byte) {
	if s.log != nil {
		s.log.Debug("osc", zap.ByteString("payload", payload))
	}
	s.next.OSC(payload)
}
