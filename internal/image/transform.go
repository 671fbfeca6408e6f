package image

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"golang.org/x/image/draw"
)

// ErrEmptySize is returned when scaling truncates a dimension to zero.
var ErrEmptySize = errors.New("image: scaled size is empty")

// ScaledSize returns floor(width*rate) x floor(height*rate).
// Each axis is truncated independently, so the aspect ratio may drift by
// up to one pixel.
func ScaledSize(width, height int, rate float64) (int, int) {
	return int(math.Floor(float64(width) * rate)), int(math.Floor(float64(height) * rate))
}

// Transform decodes r, scales it by rate and normalizes it to RGB8.
func Transform(r io.Reader, rate float64, dec Decoder) (*ImageBuf, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}
	return Resize(src, rate)
}

// Resize scales src by rate with the Catmull-Rom kernel and normalizes the
// result to RGB8. When the scaled size equals the source size the pixels
// are converted without resampling.
//
// It returns ErrEmptySize if an axis truncates to zero and ErrTooLarge if
// the result would exceed MaxPixels.
func Resize(src image.Image, rate float64) (*ImageBuf, error) {
	bounds := src.Bounds()

	// Checked in floating point: the product may not fit an int.
	fw := math.Floor(float64(bounds.Dx()) * rate)
	fh := math.Floor(float64(bounds.Dy()) * rate)
	if !(fw*fh <= MaxPixels) {
		return nil, fmt.Errorf("%w: %dx%d at rate %g", ErrTooLarge, bounds.Dx(), bounds.Dy(), rate)
	}

	w, h := ScaledSize(bounds.Dx(), bounds.Dy(), rate)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d at rate %g", ErrEmptySize, bounds.Dx(), bounds.Dy(), rate)
	}

	if w == bounds.Dx() && h == bounds.Dy() {
		return FromStdImage(src)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return FromStdImage(dst)
}
