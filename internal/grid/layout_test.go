package grid

import (
	"errors"
	"image"
	"testing"
)

func cellRect(l Layout, i int) image.Rectangle {
	p := l.Offset(i)
	return image.Rectangle{Min: p, Max: p.Add(l.Cell)}
}

func uniform(n, w, h int) []image.Point {
	sizes := make([]image.Point, n)
	for i := range sizes {
		sizes[i] = image.Pt(w, h)
	}
	return sizes
}

func TestCompute_ThreeImagesTwoColumns(t *testing.T) {
	l := Compute(uniform(3, 100, 100), 10, 2)

	if l.Canvas != image.Pt(230, 230) {
		t.Errorf("Canvas = %v, want (230,230)", l.Canvas)
	}
	if l.Rows != 2 {
		t.Errorf("Rows = %d, want 2", l.Rows)
	}

	want := []image.Point{{10, 10}, {120, 10}, {10, 120}}
	for i, p := range want {
		if got := l.Offset(i); got != p {
			t.Errorf("Offset(%d) = %v, want %v", i, got, p)
		}
	}
}

func TestCompute_SingleImage(t *testing.T) {
	l := Compute([]image.Point{{40, 30}}, 5, 3)

	// One row, three columns: the unused cells still count toward the width.
	if l.Canvas != image.Pt((40+5)*3+5, 30+5+5) {
		t.Errorf("Canvas = %v, want (140,40)", l.Canvas)
	}
	if got := l.Offset(0); got != image.Pt(5, 5) {
		t.Errorf("Offset(0) = %v, want (5,5)", got)
	}

	l = Compute([]image.Point{{40, 30}}, 5, 1)
	if l.Canvas != image.Pt(50, 40) {
		t.Errorf("Canvas (1 column) = %v, want (50,40)", l.Canvas)
	}
}

func TestCompute_CellIsMaxPerAxis(t *testing.T) {
	l := Compute([]image.Point{{40, 10}, {20, 50}, {30, 30}}, 0, 2)

	if l.Cell != image.Pt(40, 50) {
		t.Errorf("Cell = %v, want (40,50)", l.Cell)
	}
	if l.Canvas != image.Pt(80, 100) {
		t.Errorf("Canvas = %v, want (80,100)", l.Canvas)
	}
	if got := cellRect(l, 2); got != image.Rect(0, 50, 40, 100) {
		t.Errorf("cell 2 = %v, want (0,50)-(40,100)", got)
	}
}

func TestCompute_Formula(t *testing.T) {
	for n := 1; n <= 13; n++ {
		for columns := 1; columns <= 5; columns++ {
			for _, margin := range []int{0, 1, 7} {
				const w, h = 31, 17
				l := Compute(uniform(n, w, h), margin, columns)

				rows := (n + columns - 1) / columns
				wantCanvas := image.Pt((w+margin)*columns+margin, (h+margin)*rows+margin)
				if l.Canvas != wantCanvas {
					t.Fatalf("n=%d c=%d m=%d: Canvas = %v, want %v", n, columns, margin, l.Canvas, wantCanvas)
				}

				for i := range n {
					want := image.Pt(margin+(i%columns)*(w+margin), margin+(i/columns)*(h+margin))
					if got := l.Offset(i); got != want {
						t.Fatalf("n=%d c=%d m=%d: Offset(%d) = %v, want %v", n, columns, margin, i, got, want)
					}
					canvas := image.Rectangle{Max: l.Canvas}
					if !cellRect(l, i).In(canvas) {
						t.Fatalf("n=%d c=%d m=%d: cell %d = %v outside canvas %v", n, columns, margin, i, cellRect(l, i), canvas)
					}
					for j := range i {
						if cellRect(l, i).Overlaps(cellRect(l, j)) {
							t.Fatalf("n=%d c=%d m=%d: cells %d and %d overlap", n, columns, margin, i, j)
						}
					}
				}
			}
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name                   string
		count, margin, columns int
		want                   error
	}{
		{"ok", 3, 10, 2, nil},
		{"zero margin", 1, 0, 1, nil},
		{"no images", 0, 10, 2, ErrNoImages},
		{"zero columns", 3, 10, 0, ErrColumns},
		{"negative margin", 3, -1, 2, ErrMargin},
		{"max columns", 3, 0, MaxColumns, nil},
		{"too many columns", 3, 0, MaxColumns + 1, ErrColumns},
		{"max margin", 3, MaxMargin, 1, nil},
		{"margin too large", 3, MaxMargin + 1, 1, ErrMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.count, tt.margin, tt.columns); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
