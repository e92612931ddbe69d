package ptyio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryRingBuffer(t *testing.T) {
	t.Run("short write is stored in order", func(t *testing.T) {
		h := NewHistory(8)
		n, err := h.Write([]byte("abc"))
		assert.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []byte("\x00\x00\x00\x00\x00abc"), h.Bytes())
	})

	t.Run("write past capacity wraps and keeps only the tail", func(t *testing.T) {
		h := NewHistory(4)
		_, err := h.Write([]byte("abcdefgh"))
		assert.NoError(t, err)
		assert.Equal(t, []byte("efgh"), h.Bytes())
	})

	t.Run("oversized write fast-forwards to the final window", func(t *testing.T) {
		h := NewHistory(4)
		_, err := h.Write([]byte("0123456789abcdef"))
		assert.NoError(t, err)
		assert.Equal(t, []byte("cdef"), h.Bytes())
	})
}
