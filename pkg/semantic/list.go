package semantic

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// listItem is either a whole version or one of its '-' separated sub-versions.
//
// A sub-list is only ever opened as the last item of the list before it, so a
// parsed version is a chain: each list holds at most one sub-list, at its end.
type listItem struct {
	items []item
}

func (*listItem) kind() itemKind { return listKind }
func (l *listItem) isNull() bool { return len(l.items) == 0 }

// normalize removes trailing null items ("0", "", empty lists). Non-empty
// sub-lists are kept and skipped over, so "1.0.0-a" loses both zeros in front
// of its "-a" and ends up equal to "1-a".
func (l *listItem) normalize() {
	for i := len(l.items) - 1; i >= 0; i-- {
		last := l.items[i]

		if last.isNull() {
			l.items = slices.Delete(l.items, i, i+1)

			continue
		}

		if last.kind() != listKind {
			break
		}
	}
}

// assemble turns tokens into a tree of lists, using a stack of the lists that
// are still open. Lists are normalised innermost first once the input ends.
func assemble(tokens []token) *listItem {
	root := &listItem{}
	stack := []*listItem{root}
	current := root

	for _, tok := range tokens {
		if tok.kind == tokenSublist {
			sub := &listItem{}
			current.items = append(current.items, sub)
			stack = append(stack, sub)
			current = sub

			continue
		}

		current.items = append(current.items, newItem(tok))
	}

	for len(stack) > 0 {
		stack[len(stack)-1].normalize()
		stack = stack[:len(stack)-1]
	}

	return root
}

// String renders the list in canonical form: items are joined by '.', and
// sub-lists by '-'.
//
// A qualifier that normalised to the empty string only survives when other
// items follow it; it is written as "ga" so that it reads back as the same
// item rather than as an implicit 0.
func (l *listItem) String() string {
	var sb strings.Builder

	for i, it := range l.items {
		if it.kind() == listKind {
			// also written when the sub-list is the first item, which only
			// happens for inputs like "1--1"
			sb.WriteByte('-')
		} else if i > 0 {
			sb.WriteByte('.')
		}

		if it.kind() == stringKind && it.isNull() {
			sb.WriteString("ga")
		} else {
			sb.WriteString(it.String())
		}
	}

	return sb.String()
}

// tokens renders the list as a bracketed tree, e.g. "[1, [alpha, [1]]]".
func (l *listItem) tokens() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for i, it := range l.items {
		if i > 0 {
			sb.WriteString(", ")
		}

		if sub, ok := it.(*listItem); ok {
			sb.WriteString(sub.tokens())
		} else {
			sb.WriteString(it.String())
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// hashInto writes a prefix-free encoding of the list to d: its length, then
// each item tagged with its kind, with numbers and qualifiers length-prefixed.
// Unlike tokens, no qualifier can be mistaken for list punctuation.
func (l *listItem) hashInto(d *xxhash.Digest) {
	var buf [binary.MaxVarintLen64]byte

	_, _ = d.Write(binary.AppendUvarint(buf[:0], uint64(len(l.items))))

	for _, it := range l.items {
		_, _ = d.Write([]byte{byte(it.kind())})

		if sub, ok := it.(*listItem); ok {
			sub.hashInto(d)

			continue
		}

		s := it.String()
		_, _ = d.Write(binary.AppendUvarint(buf[:0], uint64(len(s))))
		_, _ = d.WriteString(s)
	}
}
