// Package completion provides argument completers and the registry that binds
// them to command parameters.
//
// A Completer turns a partial word into candidate values. Commands do not
// hold completers directly: they register a Factory against a parameter
// identifier, and a fresh Completer is created for every completion request.
package completion

import (
	"strings"
)

// Request describes a single completion request.
type Request struct {
	// Command is the full command path, e.g. "swatch text".
	Command string

	// Parameter is the identifier the completer was registered under.
	Parameter string

	// Word is the partial word under the cursor.
	Word string

	// Bound holds the arguments already present on the command line,
	// keyed by flag name. Positional arguments are joined under ArgsKey.
	Bound map[string]string
}

// ArgsKey is the Bound key holding positional arguments already given.
const ArgsKey = "args"

// Candidate is a single completion result.
type Candidate struct {
	// Value is inserted into the command line.
	Value string

	// Display is the list form shown when previewing candidates.
	// Falls back to Value when empty.
	Display string

	// Tooltip is a short description shown alongside the candidate.
	Tooltip string
}

// DisplayText returns Display, or Value when no display form was given.
func (c Candidate) DisplayText() string {
	if c.Display != "" {
		return c.Display
	}
	return c.Value
}

// shellForm renders the candidate the way cobra expects: "value\tdescription".
func (c Candidate) shellForm() string {
	if c.Tooltip == "" {
		return c.Value
	}
	// Tabs and newlines in the description would break the shell protocol.
	tooltip := strings.NewReplacer("\t", " ", "\n", " ").Replace(c.Tooltip)
	return c.Value + "\t" + tooltip
}

// Completer produces candidates for a partial word.
type Completer interface {
	Complete(req Request) []Candidate
}

// CompleterFunc adapts a plain function to the Completer interface.
type CompleterFunc func(req Request) []Candidate

// Complete calls f(req).
func (f CompleterFunc) Complete(req Request) []Candidate {
	return f(req)
}

// Factory creates a new Completer for one completion request.
type Factory func() Completer

// Static returns a factory for a fixed list of values, matched by
// case-insensitive prefix.
func Static(values ...string) Factory {
	return func() Completer {
		return CompleterFunc(func(req Request) []Candidate {
			word := strings.ToLower(req.Word)
			var out []Candidate
			for _, v := range values {
				if strings.HasPrefix(strings.ToLower(v), word) {
					out = append(out, Candidate{Value: v})
				}
			}
			return out
		})
	}
}
