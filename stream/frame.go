package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an LED strip.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a new Frame instance with every pixel off.
func NewFrame(numPixels int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, numPixels)
	return f
}

// Len is the number of pixels in the frame.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// MarshalBinary converts a Frame into a little-endian pixel count followed by
// three bytes per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (f.Len()*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(f.Len()))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
