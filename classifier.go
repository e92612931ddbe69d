package vt

// isFastPathPrintable implements the RuneClassifier gate described in the
// design: the single branch that lets a text-heavy byte stream skip the FSM
// entirely. It must only return true in GROUND, and only for codepoints that
// can never start or continue a control sequence.
func isFastPathPrintable(state State, r rune) bool {
	if state != StateGround {
		return false
	}
	return (r >= 0x20 && r < 0x7F) || r >= 0xA0
}
