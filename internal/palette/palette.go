// Package palette provides named colour tables and name matching.
package palette

import (
	"errors"
	"fmt"
	"math"
	"path"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/jmylchreest/swatch/internal/colour"
)

// ErrUnknownPalette is returned by ByName for names it does not recognise.
var ErrUnknownPalette = errors.New("unknown palette")

// Palette names accepted by ByName.
const (
	X11  = "x11"
	Web  = "web"
	ANSI = "ansi"
)

// Available lists the built-in palettes in lookup order.
var Available = []string{X11, Web, ANSI}

// Entry is a single named colour.
type Entry struct {
	Name   string     `json:"name"`
	Colour colour.RGB `json:"rgb"`
}

// Hex returns the entry's colour as "#rrggbb".
func (e Entry) Hex() string {
	return e.Colour.Hex()
}

// Palette is an ordered set of named colours with case-insensitive lookup.
type Palette struct {
	name    string
	entries []Entry
	index   map[string]int
}

// New creates a palette from entries. When two entries normalise to the
// same name, the later one replaces the earlier in place.
func New(name string, entries []Entry) *Palette {
	p := &Palette{
		name:    name,
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		p.add(e)
	}
	return p
}

func (p *Palette) add(e Entry) {
	key := normalise(e.Name)
	if i, ok := p.index[key]; ok {
		p.entries[i] = e
		return
	}
	p.index[key] = len(p.entries)
	p.entries = append(p.entries, e)
}

// ByName builds one of the built-in palettes.
func ByName(name string) (*Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case X11, "":
		return NewX11(), nil
	case Web, "css", "svg":
		return NewWeb(), nil
	case ANSI:
		return NewANSI(), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPalette, name, strings.Join(Available, ", "))
	}
}

// Merge combines palettes into a new one named name. Entries from later
// palettes override earlier ones with the same name.
func Merge(name string, palettes ...*Palette) *Palette {
	merged := New(name, nil)
	for _, p := range palettes {
		if p == nil {
			continue
		}
		for _, e := range p.entries {
			merged.add(e)
		}
	}
	return merged
}

// Name returns the palette's name.
func (p *Palette) Name() string {
	return p.name
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the palette's entries in order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Names returns the colour names in palette order.
func (p *Palette) Names() []string {
	return lo.Map(p.entries, func(e Entry, _ int) string { return e.Name })
}

// Lookup finds a colour by name. Case, spaces, dashes and underscores
// are ignored, so "alice blue" finds "AliceBlue".
func (p *Palette) Lookup(name string) (Entry, bool) {
	i, ok := p.index[normalise(name)]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}

// Closest returns the entry nearest to c by weighted RGB distance.
// Returns false only for an empty palette.
func (p *Palette) Closest(c colour.RGB) (Entry, bool) {
	if len(p.entries) == 0 {
		return Entry{}, false
	}

	var closest Entry
	minDistance := math.MaxFloat64
	for _, e := range p.entries {
		if d := colour.Distance(c, e.Colour); d < minDistance {
			minDistance = d
			closest = e
		}
	}
	return closest, true
}

// Match returns the entries matching a partial word.
//
// An empty word matches everything. A word containing glob metacharacters
// (*, ? or [) is matched as a case-insensitive glob against whole names.
// Otherwise entries whose name starts with the word are returned in palette
// order; when nothing starts with the word, a fuzzy match is tried and
// results are ranked best first. A word made only of separators (spaces,
// dashes, underscores) names no colour and matches nothing.
func (p *Palette) Match(word string) []Entry {
	word = strings.Trim(strings.TrimSpace(word), `"'`)
	if word == "" {
		return p.Entries()
	}

	if strings.ContainsAny(word, "*?[") {
		return p.glob(word)
	}

	prefix := normalise(word)
	if prefix == "" {
		return nil
	}
	matches := lo.Filter(p.entries, func(e Entry, _ int) bool {
		return strings.HasPrefix(normalise(e.Name), prefix)
	})
	if len(matches) > 0 {
		return matches
	}

	return p.fuzzy(word)
}

func (p *Palette) glob(pattern string) []Entry {
	pattern = strings.ToLower(pattern)
	var out []Entry
	for _, e := range p.entries {
		ok, err := path.Match(pattern, strings.ToLower(e.Name))
		if err != nil {
			// Malformed pattern: nothing can match.
			return nil
		}
		if ok {
			out = append(out, e)
		}
	}
	return out
}

func (p *Palette) fuzzy(word string) []Entry {
	matches := fuzzy.FindFrom(word, entrySource(p.entries))
	return lo.Map(matches, func(m fuzzy.Match, _ int) Entry {
		return p.entries[m.Index]
	})
}

// entrySource exposes entry names to the fuzzy matcher.
type entrySource []Entry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }

// normalise lowercases a colour name and strips spaces, dashes and underscores.
func normalise(name string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.TrimSpace(name)))
}
