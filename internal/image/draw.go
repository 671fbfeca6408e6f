package image

import "image"

// Paste copies src into dst with its top-left corner at at.
//
// The source is drawn at its native size. Any part that falls outside dst
// is clipped, and the copy is opaque: destination pixels under src are
// replaced, not blended.
func Paste(dst, src *ImageBuf, at image.Point) {
	r := src.Bounds().Add(at).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	sx := r.Min.X - at.X
	sy := r.Min.Y - at.Y
	n := r.Dx() * BytesPerPixel
	for y := r.Min.Y; y < r.Max.Y; y++ {
		d := dst.PixelOffset(r.Min.X, y)
		s := src.PixelOffset(sx, sy+y-r.Min.Y)
		copy(dst.data[d:d+n], src.data[s:s+n])
	}
}
