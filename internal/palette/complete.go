package palette

import (
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/completion"
)

// swatchWidth is the width of the colour block in candidate display text.
const swatchWidth = 2

// Complete implements completion.Completer. Candidates are the entries
// returned by Match for the request's word, in the same order.
func (p *Palette) Complete(req completion.Request) []completion.Candidate {
	matches := p.Match(req.Word)
	candidates := make([]completion.Candidate, 0, len(matches))
	for _, e := range matches {
		candidates = append(candidates, e.Candidate())
	}
	return candidates
}

// Candidate renders an entry as a completion candidate.
func (e Entry) Candidate() completion.Candidate {
	display := e.Name
	if block := colour.Swatch(e.Colour, swatchWidth); block != "" {
		display = block + " " + e.Name
	}
	return completion.Candidate{
		Value:   e.Name,
		Display: display,
		Tooltip: e.Hex() + " " + e.Colour.String(),
	}
}
