// Package semantic orders version strings the way Maven orders artifact versions.
package semantic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrInvalidArgument is returned when a comparison is asked of a nil Version.
var ErrInvalidArgument = errors.New("invalid argument")

// Version is a parsed, immutable version string.
//
// The zero Version is equivalent to parsing "" (and so to parsing "0").
// Versions are safe to share and compare across goroutines.
type Version struct {
	raw   string
	items *listItem
}

// Parse parses str into a Version. Every string is accepted: delimiters with
// nothing between them count as 0, and numbers can be of any length.
func Parse(str string) Version {
	return Version{
		raw:   str,
		items: assemble(tokenize(strings.ToLower(str))),
	}
}

func (v Version) root() *listItem {
	if v.items == nil {
		return &listItem{}
	}

	return v.items
}

// Compare returns an integer representing the sort order of w relative to v.
//
// The result will be 0 if v == w, -1 if v < w, or +1 if v > w.
func (v Version) Compare(w Version) int {
	return compareItems(v.root(), w.root())
}

// CompareStr parses str and compares it to v, see Compare.
func (v Version) CompareStr(str string) int {
	return v.Compare(Parse(str))
}

// Equal reports whether v and w have the same order, e.g. "1.0" and "1-ga".
func (v Version) Equal(w Version) bool {
	return v.Compare(w) == 0
}

// Hash returns a hash of the parsed form of v. Equal versions hash the same,
// and so do only versions with the same parsed form.
func (v Version) Hash() uint64 {
	d := xxhash.New()
	v.root().hashInto(d)

	return d.Sum64()
}

// Canonical renders the normalised form of v, e.g. "1-alpha-1" for "1.0a1".
//
// Parsing the canonical form gives back an equal Version, but the canonical
// form is not necessarily the string v was parsed from.
func (v Version) Canonical() string {
	return v.root().String()
}

// Tokens renders the parsed items of v as nested lists, e.g.
// "[1, [alpha, [1]]]" for "1.0a1", which is mostly useful for debugging.
func (v Version) Tokens() string {
	return v.root().tokens()
}

// String returns the string v was parsed from.
func (v Version) String() string {
	return v.raw
}

// Compare is like Version.Compare for references, and fails with
// ErrInvalidArgument rather than guessing an order when either is nil.
func Compare(a, b *Version) (int, error) {
	if a == nil {
		return 0, fmt.Errorf("%w: cannot compare a nil version", ErrInvalidArgument)
	}
	if b == nil {
		return 0, fmt.Errorf("%w: cannot compare %q to a nil version", ErrInvalidArgument, a.raw)
	}

	return a.Compare(*b), nil
}
