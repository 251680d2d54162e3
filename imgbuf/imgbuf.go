// Package imgbuf holds the packed-pixel output buffer the renderer
// writes into, and the conversion to a standard image.RGBA for an
// external writer (e.g. image/png) to consume.
package imgbuf

import (
	"image"
)

// Buffer is a row-major packed-RGBA image: each element is
// 0xAABBGGRR (alpha in the top byte, red in the lowest), matching the
// renderer's little-endian pack.
type Buffer struct {
	Width, Height uint32
	Pixels        []uint32
}

// New allocates a zeroed buffer of width*height packed pixels.
func New(width, height uint32) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// At returns the packed pixel at (x, y).
func (b *Buffer) At(x, y uint32) uint32 {
	return b.Pixels[y*b.Width+x]
}

// Set stores the packed pixel at (x, y).
func (b *Buffer) Set(x, y uint32, packed uint32) {
	b.Pixels[y*b.Width+x] = packed
}

// ToRGBA unwraps the packed buffer into a standard library
// *image.RGBA, byte order R, G, B, A=255 per pixel, stride width*4 —
// the format an external PNG writer expects. Grounded on
// imagex.CloneAsRGBA's draw.Draw-based unwrap, adapted to read
// straight from the packed uint32 source instead of another
// image.Image.
func (b *Buffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(b.Width), int(b.Height)))

	for y := uint32(0); y < b.Height; y++ {
		row := img.Pix[y*uint32(img.Stride) : y*uint32(img.Stride)+b.Width*4]
		for x := uint32(0); x < b.Width; x++ {
			p := b.At(x, y)
			off := x * 4
			row[off+0] = byte(p)
			row[off+1] = byte(p >> 8)
			row[off+2] = byte(p >> 16)
			row[off+3] = byte(p >> 24)
		}
	}

	return img
}

// Clear fills the buffer with a single packed color. Useful in tests
// to prefill with a sentinel and check every pixel gets overwritten.
func (b *Buffer) Clear(packed uint32) {
	for i := range b.Pixels {
		b.Pixels[i] = packed
	}
}
