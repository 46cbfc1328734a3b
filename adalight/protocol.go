package adalight

// Adalight framing, as expected by the usual Arduino sketches:
// a 3-byte magic, the LED count minus one split over two bytes,
// a checksum of those two bytes, then one RGB triplet per LED.
// The firmware validates the header before it reads any payload.

const (
	// HeaderLen is the number of bytes preceding the RGB payload.
	HeaderLen = 6
	// MaxLeds is the largest count the 16-bit header field can address.
	MaxLeds = 65536

	checksumSeed = 0x55
)

var magic = [3]byte{'A', 'd', 'a'}

// Color is one LED color, 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// Black turns a LED off.
var Black = Color{}

// FrameLen returns the size in bytes of a frame addressing ledCount LEDs.
func FrameLen(ledCount int) int {
	return HeaderLen + 3*ledCount
}

// OffFrame builds the frame that turns ledCount LEDs black.
// It is pure, same count always yields byte-identical output.
// Counts outside [1, MaxLeds] are the caller's to reject.
func OffFrame(ledCount int) []byte {
	frame := make([]byte, FrameLen(ledCount))
	header(frame, ledCount)
	return frame
}

// Frame builds the frame displaying one color per LED, in strip order.
func Frame(colors []Color) []byte {
	frame := make([]byte, FrameLen(len(colors)))
	header(frame, len(colors))
	for i, c := range colors {
		frame[HeaderLen+3*i] = c.R
		frame[HeaderLen+3*i+1] = c.G
		frame[HeaderLen+3*i+2] = c.B
	}
	return frame
}

func header(frame []byte, ledCount int) {
	copy(frame, magic[:])
	n := ledCount - 1
	hi := byte(n >> 8)
	lo := byte(n)
	frame[3] = hi
	frame[4] = lo
	frame[5] = hi ^ lo ^ checksumSeed
}
