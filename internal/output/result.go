package output

import "github.com/inductiveautomation/versioncmp/pkg/semantic"

// Comparison is the order of two versions.
type Comparison struct {
	Left   string `json:"left"`
	Right  string `json:"right"`
	Result int    `json:"result"`
}

// Symbol returns "<", "==" or ">".
func (c Comparison) Symbol() string {
	switch {
	case c.Result < 0:
		return "<"
	case c.Result > 0:
		return ">"
	default:
		return "=="
	}
}

func (c Comparison) String() string {
	return c.Left + " " + c.Symbol() + " " + c.Right
}

func (c Comparison) MarshalJSON() ([]byte, error) {
	type comparison Comparison

	return marshalJSON(struct {
		comparison

		Symbol string `json:"symbol"`
	}{comparison(c), c.Symbol()})
}

// Version is a version as it was given, with its parsed form when details
// were asked for.
type Version struct {
	Version   string `json:"version"`
	Canonical string `json:"canonical,omitempty"`
	Tokens    string `json:"tokens,omitempty"`
	Hash      uint64 `json:"hash,omitempty"`
}

// Result is everything a command has to report.
type Result struct {
	Versions    []Version    `json:"versions,omitempty"`
	Comparisons []Comparison `json:"comparisons,omitempty"`

	// Detailed is set when versions carry their parsed form.
	Detailed bool `json:"-"`
}

// Compare returns the Comparison of two parsed versions.
func Compare(a, b semantic.Version) Comparison {
	return Comparison{Left: a.String(), Right: b.String(), Result: a.Compare(b)}
}

// Describe returns the Version for v, with its parsed form if detailed is set.
func Describe(v semantic.Version, detailed bool) Version {
	if !detailed {
		return Version{Version: v.String()}
	}

	return Version{
		Version:   v.String(),
		Canonical: v.Canonical(),
		Tokens:    v.Tokens(),
		Hash:      v.Hash(),
	}
}
