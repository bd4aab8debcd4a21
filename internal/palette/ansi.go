package palette

import "github.com/jmylchreest/swatch/internal/colour"

// ansiColour is a standard terminal colour name and its typical RGB value.
type ansiColour struct {
	name    string
	rgb     colour.RGB
	aliases []string
}

// ansiColours holds the xterm basic 16 colours plus a few common extras.
// Terminals are free to remap these; the values are typical defaults.
var ansiColours = []ansiColour{
	// Normal colours (0-7).
	{name: "black", rgb: colour.RGB{R: 0, G: 0, B: 0}, aliases: []string{"color0"}},
	{name: "red", rgb: colour.RGB{R: 205, G: 49, B: 49}, aliases: []string{"color1"}},
	{name: "green", rgb: colour.RGB{R: 13, G: 188, B: 121}, aliases: []string{"color2"}},
	{name: "yellow", rgb: colour.RGB{R: 229, G: 229, B: 16}, aliases: []string{"color3"}},
	{name: "blue", rgb: colour.RGB{R: 36, G: 114, B: 200}, aliases: []string{"color4"}},
	{name: "magenta", rgb: colour.RGB{R: 188, G: 63, B: 188}, aliases: []string{"color5", "purple"}},
	{name: "cyan", rgb: colour.RGB{R: 17, G: 168, B: 205}, aliases: []string{"color6"}},
	{name: "white", rgb: colour.RGB{R: 229, G: 229, B: 229}, aliases: []string{"color7", "gray", "grey"}},

	// Bright colours (8-15).
	{name: "brightblack", rgb: colour.RGB{R: 102, G: 102, B: 102}, aliases: []string{"color8", "darkgray", "darkgrey"}},
	{name: "brightred", rgb: colour.RGB{R: 241, G: 76, B: 76}, aliases: []string{"color9"}},
	{name: "brightgreen", rgb: colour.RGB{R: 35, G: 209, B: 139}, aliases: []string{"color10"}},
	{name: "brightyellow", rgb: colour.RGB{R: 245, G: 245, B: 67}, aliases: []string{"color11"}},
	{name: "brightblue", rgb: colour.RGB{R: 59, G: 142, B: 234}, aliases: []string{"color12"}},
	{name: "brightmagenta", rgb: colour.RGB{R: 214, G: 112, B: 214}, aliases: []string{"color13", "brightpurple"}},
	{name: "brightcyan", rgb: colour.RGB{R: 41, G: 184, B: 219}, aliases: []string{"color14"}},
	{name: "brightwhite", rgb: colour.RGB{R: 255, G: 255, B: 255}, aliases: []string{"color15"}},

	// Additional common colour names.
	{name: "orange", rgb: colour.RGB{R: 255, G: 165, B: 0}},
	{name: "pink", rgb: colour.RGB{R: 255, G: 192, B: 203}},
	{name: "brown", rgb: colour.RGB{R: 165, G: 42, B: 42}},
	{name: "lime", rgb: colour.RGB{R: 0, G: 255, B: 0}},
	{name: "navy", rgb: colour.RGB{R: 0, G: 0, B: 128}, aliases: []string{"darkblue"}},
	{name: "teal", rgb: colour.RGB{R: 0, G: 128, B: 128}, aliases: []string{"darkcyan"}},
	{name: "maroon", rgb: colour.RGB{R: 128, G: 0, B: 0}, aliases: []string{"darkred"}},
	{name: "olive", rgb: colour.RGB{R: 128, G: 128, B: 0}, aliases: []string{"darkyellow"}},
	{name: "violet", rgb: colour.RGB{R: 238, G: 130, B: 238}},
	{name: "indigo", rgb: colour.RGB{R: 75, G: 0, B: 130}},
}

// NewANSI builds the terminal colour palette. Aliases become entries of
// their own so they complete and look up like any other name.
func NewANSI() *Palette {
	entries := make([]Entry, 0, len(ansiColours)*2)
	for _, ac := range ansiColours {
		entries = append(entries, Entry{Name: ac.name, Colour: ac.rgb})
		for _, alias := range ac.aliases {
			entries = append(entries, Entry{Name: alias, Colour: ac.rgb})
		}
	}
	return New(ANSI, entries)
}
