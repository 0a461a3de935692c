package renderer

import (
	"bufio"
	"fmt"
	"io"
)

// RGB is an 8-bit color triple
type RGB struct {
	R, G, B uint8
}

// Screen is a row-major buffer of quantized pixel colors
type Screen struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewScreen creates a black screen of the given size
func NewScreen(width, height int) *Screen {
	return &Screen{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// SetPixel writes the color for pixel (x, y)
func (s *Screen) SetPixel(x, y int, pixel RGB) {
	s.Pixels[y*s.Width+x] = pixel
}

// At returns the color of pixel (x, y)
func (s *Screen) At(x, y int) RGB {
	return s.Pixels[y*s.Width+x]
}

// WritePPM serializes the screen in the plain-text P3 format: a header with
// the format tag, dimensions and maximum channel value, then one "R G B"
// triple per pixel in row-major order
func (s *Screen) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", s.Width, s.Height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for _, pixel := range s.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", pixel.R, pixel.G, pixel.B); err != nil {
			return fmt.Errorf("writing ppm pixel: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing ppm output: %w", err)
	}
	return nil
}
