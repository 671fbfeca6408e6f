package contactsheet

import (
	"fmt"
	"math"

	"github.com/gogpu/contactsheet/internal/grid"
)

// Defaults used when a Config field is not overridden.
const (
	DefaultMargin     = 10
	DefaultColumns    = 4
	DefaultResizeRate = 0.5
)

// Config controls contact sheet geometry.
type Config struct {
	// Margin is the gap in pixels around and between cells. Must be in
	// [0, 65536].
	Margin int

	// Columns is the number of images per row. Must be in [1, 65536].
	Columns int

	// ResizeRate scales both axes of every image before layout. Must be
	// finite and > 0.
	ResizeRate float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Margin:     DefaultMargin,
		Columns:    DefaultColumns,
		ResizeRate: DefaultResizeRate,
	}
}

// Validate returns a KindConfig error describing the first invalid field.
func (c Config) Validate() error {
	var err error
	switch {
	case c.Margin < 0 || c.Margin > grid.MaxMargin:
		err = fmt.Errorf("margin %d is outside [0, %d]", c.Margin, grid.MaxMargin)
	case c.Columns < 1 || c.Columns > grid.MaxColumns:
		err = fmt.Errorf("columns %d is outside [1, %d]", c.Columns, grid.MaxColumns)
	case !(c.ResizeRate > 0) || math.IsInf(c.ResizeRate, 0):
		err = fmt.Errorf("resize rate %g is not a positive finite number", c.ResizeRate)
	}
	return classify("validate config", KindConfig, "", err)
}
