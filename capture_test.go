package adi2edi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureTakeOnce(t *testing.T) {
	s := newCaptureSet("CALL", "BAND")

	assert.False(t, s.takeIfReady("CALL"), "unseen tag must not be taken")

	s.markSeen("CALL")
	s.markSeen("CALL")
	assert.True(t, s.takeIfReady("CALL"))
	assert.False(t, s.takeIfReady("CALL"))

	// Seen again after consumption stays consumed
	s.markSeen("CALL")
	assert.False(t, s.takeIfReady("CALL"))

	assert.False(t, s.takeIfReady("MODE"), "tags outside the set are never ready")
}

func TestCaptureDeclareLength(t *testing.T) {
	s := newCaptureSet("CALL", "BAND")
	s.declareLength(9)
	assert.Zero(t, s.tags["CALL"].length, "length is only kept for seen tags")

	s.markSeen("CALL")
	s.declareLength(4)
	assert.Equal(t, 4, s.tags["CALL"].length)
	assert.Zero(t, s.tags["BAND"].length)

	s.takeIfReady("CALL")
	s.declareLength(7)
	assert.Equal(t, 4, s.tags["CALL"].length, "consumed tags keep their length")
}

func TestCaptureTakeOrder(t *testing.T) {
	s := newCaptureSet("A", "B", "C")
	s.markSeen("C")
	s.markSeen("A")
	assert.Equal(t, []string{"A", "C"}, s.take())
	assert.Empty(t, s.take())
}
