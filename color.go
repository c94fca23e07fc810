package serato

import "io"

// Color is a 24-bit RGB track or cue color.
//
// Serato tags carry colors in two representations: the bytes actually
// written to disk ("stored" form) and the value Serato's UI shows the user
// ("displayed" form). Every parsed Color in this package is kept in
// displayed form and converted back to stored form on write.
//
// ReadColor/WriteColor currently use the identity mapping between the two
// forms — stored and displayed bytes are the same three bytes, in R, G, B
// order (see DESIGN.md for why). This is a fixed bijection, trivially its
// own inverse.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// NewColor constructs a Color in displayed form from its components.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGB returns the displayed R, G, B components.
func (c Color) RGB() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// storedToDisplayed converts three on-disk bytes to displayed form.
func storedToDisplayed(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// toStored converts a displayed Color to the three on-disk bytes.
func (c Color) toStored() [3]byte {
	return [3]byte{c.R, c.G, c.B}
}

// ReadColor reads three stored-form bytes from r and returns the displayed
// Color.
func ReadColor(r io.Reader) (Color, error) {
	var buf [3]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Color{}, WrapParseError("ReadColor", err)
	}
	return storedToDisplayed(buf[0], buf[1], buf[2]), nil
}

// WriteColor writes c's stored-form bytes to w.
func WriteColor(w io.Writer, c Color) (int, error) {
	stored := c.toStored()
	n, err := w.Write(stored[:])
	if err != nil {
		return n, WrapIOError("WriteColor", err)
	}
	return n, nil
}
