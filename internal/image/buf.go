// Package image provides the pixel buffer, codec and resampling used to
// build contact sheets.
//
// Every ImageBuf is 8-bit RGB without an alpha channel. Decoded images of
// any color model are normalized into that representation once, right
// after resampling, so everything downstream works on a single layout.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrTooLarge is returned when an image exceeds MaxPixels or does not
	// fit in a TIFF file.
	ErrTooLarge = errors.New("image: too large")
)

// BytesPerPixel is the storage size of one RGB8 pixel.
const BytesPerPixel = 3

// MaxPixels caps the pixel count of any buffer, resized image or canvas.
const MaxPixels = 1 << 28

// ImageBuf is a contiguous RGB8 pixel buffer.
//
// ImageBuf implements image.Image and draw.Image so it can be handed to
// encoders and to golang.org/x/image/draw directly.
//
// Thread safety: ImageBuf is safe for concurrent read access. Write
// operations (Set*, Fill, Paste into it) require external synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewImageBuf creates a new black image buffer with the given dimensions.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, width, height, MaxPixels)
	}

	stride := width * BytesPerPixel
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Size returns the image dimensions as a point.
func (b *ImageBuf) Size() image.Point {
	return image.Pt(b.width, b.height)
}

// Stride returns the number of bytes per row.
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.width*BytesPerPixel]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*BytesPerPixel
}

// GetRGB returns the color at (x, y).
// Returns (0,0,0) if coordinates are out of bounds.
func (b *ImageBuf) GetRGB(x, y int) (r, g, bl uint8) {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return 0, 0, 0
	}
	return b.data[offset], b.data[offset+1], b.data[offset+2]
}

// SetRGB sets the color at (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *ImageBuf) SetRGB(x, y int, r, g, bl uint8) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	b.data[offset] = r
	b.data[offset+1] = g
	b.data[offset+2] = bl
	return nil
}

// Fill sets every pixel to the given color.
func (b *ImageBuf) Fill(r, g, bl uint8) {
	first := b.RowBytes(0)
	for x := 0; x < len(first); x += BytesPerPixel {
		first[x] = r
		first[x+1] = g
		first[x+2] = bl
	}
	for y := 1; y < b.height; y++ {
		copy(b.RowBytes(y), first)
	}
}

// ColorModel implements the image.Image interface.
func (b *ImageBuf) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (b *ImageBuf) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements the image.Image interface. Pixels are always opaque.
func (b *ImageBuf) At(x, y int) color.Color {
	if b.PixelOffset(x, y) < 0 {
		return color.RGBA{}
	}
	r, g, bl := b.GetRGB(x, y)
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

// Set implements the draw.Image interface. Alpha is discarded from the
// non-premultiplied form of c.
func (b *ImageBuf) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	_ = b.SetRGB(x, y, n.R, n.G, n.B)
}
