package image

import (
	"image"
	"testing"
)

func filled(w, h int, r, g, b uint8) *ImageBuf {
	buf, _ := NewImageBuf(w, h)
	buf.Fill(r, g, b)
	return buf
}

func TestPaste(t *testing.T) {
	dst := filled(10, 8, 255, 255, 255)
	src := filled(3, 2, 1, 2, 3)

	Paste(dst, src, image.Pt(4, 5))

	for y := range 8 {
		for x := range 10 {
			inside := x >= 4 && x < 7 && y >= 5 && y < 7
			r, g, b := dst.GetRGB(x, y)
			if inside && (r != 1 || g != 2 || b != 3) {
				t.Errorf("pixel (%d, %d) = (%d, %d, %d), want pasted (1, 2, 3)", x, y, r, g, b)
			}
			if !inside && (r != 255 || g != 255 || b != 255) {
				t.Errorf("pixel (%d, %d) = (%d, %d, %d), want untouched white", x, y, r, g, b)
			}
		}
	}
}

func TestPaste_Clipped(t *testing.T) {
	dst := filled(5, 5, 0, 0, 0)
	src := gradient(4, 4)

	Paste(dst, src, image.Pt(3, -2))

	// Source pixel (0, 2) lands on (3, 0); (1, 3) lands on (4, 1).
	wr, wg, wb := src.GetRGB(0, 2)
	if r, g, b := dst.GetRGB(3, 0); r != wr || g != wg || b != wb {
		t.Errorf("dst (3, 0) = (%d, %d, %d), want (%d, %d, %d)", r, g, b, wr, wg, wb)
	}
	wr, wg, wb = src.GetRGB(1, 3)
	if r, g, b := dst.GetRGB(4, 1); r != wr || g != wg || b != wb {
		t.Errorf("dst (4, 1) = (%d, %d, %d), want (%d, %d, %d)", r, g, b, wr, wg, wb)
	}
	if r, g, b := dst.GetRGB(3, 2); r != 0 || g != 0 || b != 0 {
		t.Errorf("dst (3, 2) = (%d, %d, %d), want untouched black", r, g, b)
	}
}

func TestPaste_FullyOutside(t *testing.T) {
	dst := filled(4, 4, 9, 9, 9)
	Paste(dst, filled(2, 2, 0, 0, 0), image.Pt(10, 10))

	for _, v := range dst.Data() {
		if v != 9 {
			t.Fatal("Paste outside bounds modified destination")
		}
	}
}
