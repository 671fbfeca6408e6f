// Package grid computes fixed-column contact sheet layouts.
//
// Every cell is sized to the largest image in the batch. Images are placed
// row-major at the top-left corner of their cell, so smaller images leave
// blank space to the right and below. Nothing is centered or scaled.
package grid

import (
	"errors"
	"image"
)

// Layout errors.
var (
	// ErrNoImages is returned when a layout is requested for zero images.
	ErrNoImages = errors.New("grid: no images")

	// ErrColumns is returned when the column count is outside [1, MaxColumns].
	ErrColumns = errors.New("grid: columns out of range")

	// ErrMargin is returned when the margin is outside [0, MaxMargin].
	ErrMargin = errors.New("grid: margin out of range")
)

// Upper bounds for Validate. With cells capped by the image package, they
// keep every canvas coordinate within int range.
const (
	MaxColumns = 1 << 16
	MaxMargin  = 1 << 16
)

// Layout is the geometry of one contact sheet.
type Layout struct {
	Margin  int
	Columns int
	Count   int

	// Cell is the uniform cell size: the maximum width and height of the input.
	Cell image.Point

	// Rows is ceil(Count / Columns).
	Rows int

	// Canvas is the full sheet size including margins on all four sides.
	Canvas image.Point
}

// Validate reports whether Compute's preconditions hold.
func Validate(count, margin, columns int) error {
	switch {
	case count < 1:
		return ErrNoImages
	case columns < 1 || columns > MaxColumns:
		return ErrColumns
	case margin < 0 || margin > MaxMargin:
		return ErrMargin
	}
	return nil
}

// Compute lays out images of the given sizes in columns columns separated
// by margin pixels. Callers must check Validate first; Compute itself has
// no failure path.
func Compute(sizes []image.Point, margin, columns int) Layout {
	var cell image.Point
	for _, s := range sizes {
		cell.X = max(cell.X, s.X)
		cell.Y = max(cell.Y, s.Y)
	}

	rows := (len(sizes) + columns - 1) / columns
	return Layout{
		Margin:  margin,
		Columns: columns,
		Count:   len(sizes),
		Cell:    cell,
		Rows:    rows,
		Canvas: image.Pt(
			(cell.X+margin)*columns+margin,
			(cell.Y+margin)*rows+margin,
		),
	}
}

// Offset returns the top-left corner of image i.
func (l Layout) Offset(i int) image.Point {
	row, col := i/l.Columns, i%l.Columns
	return image.Pt(
		l.Margin+col*(l.Cell.X+l.Margin),
		l.Margin+row*(l.Cell.Y+l.Margin),
	)
}
