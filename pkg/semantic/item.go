package semantic

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"
)

type itemKind int

const (
	intKind itemKind = iota
	longKind
	bigIntKind
	stringKind
	listKind
)

// item is one node of a parsed version: a number, a qualifier or a list.
//
// The set of implementations is closed to this package; code that has to
// treat each one differently switches over kind().
type item interface {
	kind() itemKind
	// isNull reports whether the item is the identity for its kind, making it
	// removable when it trails a list.
	isNull() bool
	String() string
}

const (
	maxIntItemLength  = 9  // always below 2^31
	maxLongItemLength = 18 // always below 2^63
)

// intItem holds numbers with at most 9 digits.
type intItem int32

func (intItem) kind() itemKind { return intKind }
func (i intItem) isNull() bool { return i == 0 }
func (i intItem) String() string { return strconv.FormatInt(int64(i), 10) }

// longItem holds numbers with 10 to 18 digits.
type longItem int64

func (longItem) kind() itemKind { return longKind }
func (l longItem) isNull() bool { return l == 0 }
func (l longItem) String() string { return strconv.FormatInt(int64(l), 10) }

// bigIntItem holds numbers with more than 18 digits.
type bigIntItem struct {
	value *big.Int
}

func (bigIntItem) kind() itemKind { return bigIntKind }
func (b bigIntItem) isNull() bool { return b.value.Sign() == 0 }
func (b bigIntItem) String() string { return b.value.String() }

// stringItem is a qualifier, already lowercased and run through the aliases.
type stringItem string

func (stringItem) kind() itemKind { return stringKind }
func (s stringItem) isNull() bool { return qualifierRank(string(s)) == releaseRank }
func (s stringItem) String() string { return string(s) }

var (
	// qualifiers lists the well-known qualifiers from oldest to newest; the
	// empty qualifier marks the release itself.
	qualifiers = []string{"alpha", "beta", "milestone", "rc", "snapshot", "", "sp"}

	qualifierAliases = map[string]string{
		"ga":      "",
		"final":   "",
		"release": "",
		"cr":      "rc",
	}

	// shorthands only apply to single letters directly followed by a number,
	// as in "1a1" or "1.0m3".
	shorthands = map[string]string{
		"a": "alpha",
		"b": "beta",
		"m": "milestone",
		"r": "rc",
	}

	releaseRank = qualifierRank("")
)

// qualifierRank returns the position of a known qualifier, or len(qualifiers)
// for anything else; unknown qualifiers all share that rank and are then
// ordered lexically.
func qualifierRank(qualifier string) int {
	if i := slices.Index(qualifiers, qualifier); i >= 0 {
		return i
	}

	return len(qualifiers)
}

func newStringItem(raw string, followedByDigit bool) stringItem {
	value := raw

	if followedByDigit && len(raw) == 1 {
		if expanded, ok := shorthands[raw]; ok {
			value = expanded
		}
	}

	if alias, ok := qualifierAliases[value]; ok {
		value = alias
	}

	return stringItem(value)
}

func stripLeadingZeros(digits string) string {
	digits = strings.TrimLeft(digits, "0")

	if digits == "" {
		return "0"
	}

	return digits
}

func newNumericItem(digits string) item {
	digits = stripLeadingZeros(digits)

	switch {
	case len(digits) <= maxIntItemLength:
		i, err := strconv.ParseInt(digits, 10, 32)
		if err != nil {
			panic(fmt.Sprintf("failed to convert %s to an int item: %v", digits, err))
		}

		return intItem(i)
	case len(digits) <= maxLongItemLength:
		l, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			panic(fmt.Sprintf("failed to convert %s to a long item: %v", digits, err))
		}

		return longItem(l)
	default:
		b, ok := new(big.Int).SetString(digits, 10)
		if !ok {
			panic(fmt.Sprintf("failed to convert %s to a big integer item", digits))
		}

		return bigIntItem{value: b}
	}
}

// newItem builds the item for a single run produced by tokenize.
func newItem(tok token) item {
	//nolint:exhaustive // sub-lists are built by the assembler, not here
	switch tok.kind {
	case tokenNumber:
		return newNumericItem(tok.text)
	case tokenEmpty:
		return intItem(0)
	case tokenQualifier:
		return newStringItem(tok.text, tok.followedByDigit)
	}

	panic(fmt.Sprintf("token kind %d does not describe an item", tok.kind))
}
