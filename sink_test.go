package vt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingSinkForwardsAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	term := NewTerminal(5, 1)
	logging := NewLoggingSink(term, log)

	sess := NewSession(term, logging)
	_, err := sess.Write([]byte("\x1b[1m"))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "csi", entries[0].Message)
	assert.True(t, term.pen.Attr.has(AttrBold))
}

func TestLoggingSinkWithNilLoggerStillForwards(t *testing.T) {
	term := NewTerminal(5, 1)
	logging := NewLoggingSink(term, nil)
	sess := NewSession(term, logging)

	_, err := sess.Write([]byte("\r"))
	require.NoError(t, err)
	assert.Equal(t, 0, term.Grid.X())
}
