// Package config holds the scene and window settings.
//
// Everything that used to be a magic number in the scene setup lives
// here so that spawning and fit logic can be driven from a plain struct
// in tests, without a window or a GPU.
package config

import (
	"fmt"
	"image/color"
)

// Config describes the canvas, the demo scene and the host window.
type Config struct {
	// CanvasWidth and CanvasHeight are the pixel dimensions of the
	// offscreen canvas everything low-resolution is drawn into.
	CanvasWidth  int
	CanvasHeight int

	// NumberRows and NumberCols size the digit grid.
	NumberRows int
	NumberCols int

	// NumberSpacing is the distance between neighbouring digits, in
	// canvas pixels.
	NumberSpacing float64

	// BinFills holds one fill fraction in [0, 1] per chart bin.
	BinFills []float64

	// WindowTitle is the host window caption.
	WindowTitle string

	// WindowScale multiplies the canvas size to produce the initial
	// window size.
	WindowScale int

	// CanvasClear is the background of the canvas pass, Letterbox the
	// background of the window pass around the scaled canvas.
	CanvasClear color.NRGBA
	Letterbox   color.NRGBA

	// Debug starts the HUD enabled.
	Debug bool
}

// Default returns the stock demo scene: a 512x256 canvas, a 50x50 digit
// grid and a five bin bar chart, shown in a window at twice the canvas
// size.
func Default() Config {
	return Config{
		CanvasWidth:   512,
		CanvasHeight:  256,
		NumberRows:    50,
		NumberCols:    50,
		NumberSpacing: 20,
		BinFills:      []float64{0.75, 0.45, 0.90, 0.30, 0.60},
		WindowTitle:   "Pixel Grid Snap",
		WindowScale:   2,
		CanvasClear:   color.NRGBA{0x80, 0x80, 0x80, 0xff},
		Letterbox:     color.NRGBA{0x20, 0x20, 0x28, 0xff},
	}
}

// Validate reports the first setting the renderer cannot work with.
func (c Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size %dx%d: dimensions must be positive", c.CanvasWidth, c.CanvasHeight)
	}
	if c.NumberRows < 0 || c.NumberCols < 0 {
		return fmt.Errorf("number grid %dx%d: counts must not be negative", c.NumberCols, c.NumberRows)
	}
	if c.NumberSpacing <= 0 {
		return fmt.Errorf("number spacing %v: must be positive", c.NumberSpacing)
	}
	for i, f := range c.BinFills {
		if f < 0 || f > 1 {
			return fmt.Errorf("bin %d fill %v: must be in [0, 1]", i, f)
		}
	}
	if c.WindowScale < 1 {
		return fmt.Errorf("window scale %d: must be at least 1", c.WindowScale)
	}
	return nil
}
