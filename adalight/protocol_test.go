package adalight

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffFrameHeader(t *testing.T) {
	for _, ledCount := range []int{1, 2, 10, 255, 256, 257, 4096, 65535, 65536} {
		frame := OffFrame(ledCount)
		require.Len(t, frame, 6+3*ledCount, "ledCount=%d", ledCount)

		assert.Equal(t, []byte("Ada"), frame[:3], "ledCount=%d", ledCount)

		hi := byte((ledCount - 1) >> 8)
		lo := byte((ledCount - 1) & 0xFF)
		assert.Equal(t, hi, frame[3], "hi byte, ledCount=%d", ledCount)
		assert.Equal(t, lo, frame[4], "lo byte, ledCount=%d", ledCount)
		assert.Equal(t, hi^lo^0x55, frame[5], "checksum, ledCount=%d", ledCount)
	}
}

func TestOffFramePayloadIsBlack(t *testing.T) {
	frame := OffFrame(300)
	for i, b := range frame[HeaderLen:] {
		if b != 0 {
			t.Fatalf("payload byte %d is 0x%02x, want 0x00", i, b)
		}
	}
}

func TestOffFrameSingleLed(t *testing.T) {
	want := []byte{0x41, 0x64, 0x61, 0x00, 0x00, 0x55, 0x00, 0x00, 0x00}
	assert.Equal(t, want, OffFrame(1))
}

func TestOffFrame256Leds(t *testing.T) {
	frame := OffFrame(256)
	assert.Len(t, frame, 774)
	assert.Equal(t, byte(0x00), frame[3])
	assert.Equal(t, byte(0xFF), frame[4])
	assert.Equal(t, byte(0xAA), frame[5])
}

func TestOffFrameDeterministic(t *testing.T) {
	if !bytes.Equal(OffFrame(42), OffFrame(42)) {
		t.Fatal("same count produced different frames")
	}
}

func TestFrameColors(t *testing.T) {
	colors := []Color{{R: 1, G: 2, B: 3}, {R: 250, G: 0, B: 128}}
	frame := Frame(colors)

	require.Len(t, frame, FrameLen(len(colors)))
	assert.Equal(t, OffFrame(len(colors))[:HeaderLen], frame[:HeaderLen],
		"color frame and off frame share the header for equal counts")
	assert.Equal(t, []byte{1, 2, 3, 250, 0, 128}, frame[HeaderLen:])
}

func TestFrameBlackEqualsOffFrame(t *testing.T) {
	colors := make([]Color, 7)
	for i := range colors {
		colors[i] = Black
	}
	assert.Equal(t, OffFrame(7), Frame(colors))
}
