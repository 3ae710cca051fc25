package semantic

import (
	"cmp"
	"fmt"
	"strings"
)

// compareItems orders a relative to b, returning -1, 0 or +1.
//
// A nil b stands for the padding past the end of the shorter of two lists:
// null items equal it, qualifiers are ordered against the release rank, and
// anything else is greater.
//
// Across kinds the order is numbers > lists > qualifiers, which gives
// "1.1 > 1-1 > 1-sp". Numbers in different buckets are ordered by bucket,
// which agrees with their value since leading zeros are already gone.
func compareItems(a, b item) int {
	switch a.kind() {
	case intKind:
		return compareNumber(a, b, func(w item) int { return cmp.Compare(a.(intItem), w.(intItem)) })
	case longKind:
		return compareNumber(a, b, func(w item) int { return cmp.Compare(a.(longItem), w.(longItem)) })
	case bigIntKind:
		return compareNumber(a, b, func(w item) int { return a.(bigIntItem).value.Cmp(w.(bigIntItem).value) })
	case stringKind:
		return compareQualifier(a.(stringItem), b)
	case listKind:
		return compareList(a.(*listItem), b)
	}

	panic(fmt.Sprintf("invalid item kind: %d", a.kind()))
}

// compareNumber handles every numeric bucket; sameBucket is only called when
// b is in the same bucket as a.
func compareNumber(a, b item, sameBucket func(item) int) int {
	if b == nil {
		if a.isNull() {
			return 0 // 1.0 == 1
		}

		return +1 // 1.1 > 1
	}

	switch b.kind() {
	case intKind, longKind, bigIntKind:
		if a.kind() == b.kind() {
			return sameBucket(b)
		}

		return cmp.Compare(a.kind(), b.kind())
	case stringKind:
		return +1 // 1.1 > 1-sp
	case listKind:
		return +1 // 1.1 > 1-1
	}

	panic(fmt.Sprintf("invalid item kind: %d", b.kind()))
}

func compareQualifier(a stringItem, b item) int {
	if b == nil {
		// 1-rc < 1, 1-sp > 1
		return cmp.Compare(qualifierRank(string(a)), releaseRank)
	}

	switch b.kind() {
	case intKind, longKind, bigIntKind:
		return -1 // 1-sp < 1.1
	case stringKind:
		return compareQualifiers(string(a), string(b.(stringItem)))
	case listKind:
		return -1 // 1-sp < 1-1
	}

	panic(fmt.Sprintf("invalid item kind: %d", b.kind()))
}

func compareQualifiers(a, b string) int {
	ra, rb := qualifierRank(a), qualifierRank(b)

	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	// only unknown qualifiers can share a rank without being equal
	return strings.Compare(a, b)
}

func compareList(a *listItem, b item) int {
	if b == nil {
		// the whole list is compared to nothing, not just its first item,
		// otherwise "1-0.alpha" would equal "1"
		for _, it := range a.items {
			if c := compareItems(it, nil); c != 0 {
				return c
			}
		}

		return 0
	}

	switch b.kind() {
	case intKind, longKind, bigIntKind:
		return -1 // 1-1 < 1.0.x
	case stringKind:
		return +1 // 1-1 > 1-sp
	case listKind:
		other := b.(*listItem)

		for i := range max(len(a.items), len(other.items)) {
			var c int

			switch {
			case i >= len(a.items):
				// a ran out first: compare the other way round and flip
				c = -compareItems(other.items[i], nil)
			case i >= len(other.items):
				c = compareItems(a.items[i], nil)
			default:
				c = compareItems(a.items[i], other.items[i])
			}

			if c != 0 {
				return c
			}
		}

		return 0
	}

	panic(fmt.Sprintf("invalid item kind: %d", b.kind()))
}
