package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	// Decoders registered with image.Decode.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
)

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("image: empty image")

// Decoder turns an encoded byte stream into a pixel buffer.
type Decoder interface {
	Decode(r io.Reader) (image.Image, error)
}

// TIFFCodec decodes JPEG, PNG and TIFF input and encodes 3-channel
// baseline TIFF output.
type TIFFCodec struct{}

// Decode decodes an image, auto-detecting the format.
func (TIFFCodec) Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return img, nil
}

// Encode writes m as an uncompressed RGB TIFF.
func (TIFFCodec) Encode(w io.Writer, m image.Image) error {
	buf, ok := m.(*ImageBuf)
	if !ok {
		var err error
		if buf, err = FromStdImage(m); err != nil {
			return err
		}
	}
	return EncodeTIFF(w, buf)
}

// FromStdImage creates an RGB8 ImageBuf from a standard library image.
// Alpha is discarded: the non-premultiplied color of each pixel is kept and
// nothing is composited against a background.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf, err := NewImageBuf(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := range height {
			srcRow := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			dstRow := buf.RowBytes(y)
			for x := range width {
				copy(dstRow[x*3:x*3+3], srcRow[x*4:x*4+3])
			}
		}

	case *image.RGBA:
		for y := range height {
			srcRow := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			dstRow := buf.RowBytes(y)
			for x := range width {
				s := srcRow[x*4 : x*4+4]
				d := dstRow[x*3 : x*3+3]
				switch a := uint16(s[3]); a {
				case 0xff:
					copy(d, s[:3])
				case 0:
					d[0], d[1], d[2] = 0, 0, 0
				default:
					d[0] = unpremul(s[0], a)
					d[1] = unpremul(s[1], a)
					d[2] = unpremul(s[2], a)
				}
			}
		}

	case *image.Gray:
		for y := range height {
			srcRow := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			dstRow := buf.RowBytes(y)
			for x := range width {
				v := srcRow[x]
				dstRow[x*3], dstRow[x*3+1], dstRow[x*3+2] = v, v, v
			}
		}

	default:
		for y := range height {
			dstRow := buf.RowBytes(y)
			for x := range width {
				c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				dstRow[x*3], dstRow[x*3+1], dstRow[x*3+2] = c.R, c.G, c.B
			}
		}
	}

	return buf, nil
}

// unpremul reverses alpha premultiplication for one 8-bit channel.
func unpremul(c uint8, a uint16) uint8 {
	v := (uint16(c)*0xff + a/2) / a
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}
