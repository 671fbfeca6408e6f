package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestScaledSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		rate         float64
		wantW, wantH int
	}{
		{"identity", 640, 480, 1.0, 640, 480},
		{"half", 640, 480, 0.5, 320, 240},
		{"floor odd", 41, 21, 0.5, 20, 10},
		{"independent truncation", 100, 33, 0.3, 30, 9},
		{"upscale", 10, 7, 1.5, 15, 10},
		{"collapse to zero", 1, 50, 0.5, 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ScaledSize(tt.w, tt.h, tt.rate)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("ScaledSize(%d, %d, %g) = (%d, %d), want (%d, %d)",
					tt.w, tt.h, tt.rate, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestTransform_Resize(t *testing.T) {
	data := encodePNG(t, solid(41, 20, color.NRGBA{R: 10, G: 200, B: 90, A: 255}))

	buf, err := Transform(bytes.NewReader(data), 0.5, TIFFCodec{})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if buf.Width() != 20 || buf.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", buf.Width(), buf.Height())
	}

	r, g, b := buf.GetRGB(10, 5)
	if r != 10 || g != 200 || b != 90 {
		t.Errorf("center pixel = (%d, %d, %d), want (10, 200, 90)", r, g, b)
	}
}

func TestTransform_RateOneKeepsPixels(t *testing.T) {
	src := solid(7, 5, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetNRGBA(6, 4, color.NRGBA{R: 250, G: 251, B: 252, A: 255})

	buf, err := Transform(bytes.NewReader(encodePNG(t, src)), 1.0, TIFFCodec{})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if buf.Width() != 7 || buf.Height() != 5 {
		t.Fatalf("size = %dx%d, want 7x5", buf.Width(), buf.Height())
	}
	if r, g, b := buf.GetRGB(6, 4); r != 250 || g != 251 || b != 252 {
		t.Errorf("corner pixel = (%d, %d, %d), want (250, 251, 252)", r, g, b)
	}
}

func TestTransform_DiscardsAlpha(t *testing.T) {
	src := solid(4, 4, color.NRGBA{R: 30, G: 60, B: 90, A: 0})

	buf, err := Transform(bytes.NewReader(encodePNG(t, src)), 1.0, TIFFCodec{})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if r, g, b := buf.GetRGB(0, 0); r != 30 || g != 60 || b != 90 {
		t.Errorf("pixel = (%d, %d, %d), want (30, 60, 90)", r, g, b)
	}
}

func TestTransform_EmptySize(t *testing.T) {
	data := encodePNG(t, solid(1, 8, color.NRGBA{A: 255}))

	_, err := Transform(bytes.NewReader(data), 0.5, TIFFCodec{})
	if !errors.Is(err, ErrEmptySize) {
		t.Errorf("Transform() error = %v, want ErrEmptySize", err)
	}
}

func TestResize_TooLarge(t *testing.T) {
	src := solid(100, 100, color.NRGBA{A: 255})

	for _, rate := range []float64{1e6, 1e300, 1e308} {
		buf, err := Resize(src, rate)
		if !errors.Is(err, ErrTooLarge) {
			t.Errorf("Resize(rate=%g) error = %v, want ErrTooLarge", rate, err)
		}
		if buf != nil {
			t.Errorf("Resize(rate=%g) returned a buffer", rate)
		}
	}
}

func TestResize_AtPixelLimit(t *testing.T) {
	// 1x2 scaled by 2^14 is 16384x32768 = 2^29 pixels: just over the cap.
	src := solid(1, 2, color.NRGBA{A: 255})
	if _, err := Resize(src, 1<<14); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Resize() error = %v, want ErrTooLarge", err)
	}
}

func TestTransform_DecodeError(t *testing.T) {
	_, err := Transform(bytes.NewReader([]byte{0x89, 'P', 'N', 'G'}), 1.0, TIFFCodec{})
	if err == nil {
		t.Fatal("Transform(truncated) error = nil, want decode error")
	}
}
