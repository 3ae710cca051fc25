package semantic

type tokenKind int

const (
	// tokenNumber is a run of ASCII digits.
	tokenNumber tokenKind = iota
	// tokenQualifier is a run of anything that is not a digit or a delimiter.
	tokenQualifier
	// tokenEmpty is a delimiter with nothing before it, which stands for 0.
	tokenEmpty
	// tokenSublist opens a new nested list; everything after it belongs there.
	tokenSublist
)

type token struct {
	kind tokenKind
	text string

	// followedByDigit is set on qualifiers that were closed by the start of a
	// digit run rather than by a delimiter or the end of the input, e.g. the
	// "a" in "1a1".
	followedByDigit bool
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// tokenize splits an already lowercased version into runs.
//
// Both '.' and '-' close the current run, with '-' also opening a sub-list.
// A switch between digits and non-digits closes the run too, and opens a
// sub-list exactly as if a '-' had been there, so "1a" and "1-a" match.
func tokenize(str string) []token {
	tokens := make([]token, 0, len(str)/2+1)

	run := func(digits bool, text string, followedByDigit bool) token {
		if digits {
			return token{kind: tokenNumber, text: text}
		}

		return token{kind: tokenQualifier, text: text, followedByDigit: followedByDigit}
	}

	inDigits := false
	start := 0

	for i := range len(str) {
		c := str[i]

		switch {
		case c == '.' || c == '-':
			if i == start {
				tokens = append(tokens, token{kind: tokenEmpty})
			} else {
				tokens = append(tokens, run(inDigits, str[start:i], false))
			}
			start = i + 1

			if c == '-' {
				tokens = append(tokens, token{kind: tokenSublist})
			}
		case isDigit(c):
			if !inDigits && i > start {
				tokens = append(tokens, run(false, str[start:i], true), token{kind: tokenSublist})
				start = i
			}
			inDigits = true
		default:
			if inDigits && i > start {
				tokens = append(tokens, run(true, str[start:i], false), token{kind: tokenSublist})
				start = i
			}
			inDigits = false
		}
	}

	if len(str) > start {
		tokens = append(tokens, run(inDigits, str[start:], false))
	}

	return tokens
}
