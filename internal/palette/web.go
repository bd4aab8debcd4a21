package palette

import (
	"golang.org/x/image/colornames"

	"github.com/jmylchreest/swatch/internal/colour"
)

// NewWeb builds the SVG 1.1 / CSS named-colour palette. Names are lower
// case, as the CSS specification lists them.
func NewWeb() *Palette {
	entries := make([]Entry, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		entries = append(entries, Entry{Name: name, Colour: colour.ToRGB(colornames.Map[name])})
	}
	return New(Web, entries)
}
