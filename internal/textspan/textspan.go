// Package textspan locates delimiter runs inside a single line of text.
package textspan

import (
	"errors"
	"regexp"
)

// ErrNoMatch reports that a pattern does not occur in the searched text.
// Callers treat it as "boundary reached", not as a failure.
var ErrNoMatch = errors.New("no pattern match found")

// Span is a half-open [Start, End) byte range into the searched text.
type Span struct {
	Start int
	End   int
}

// Find returns the span of the first match of pat in text. With fromRight
// set it returns the span of the last match instead, found by enumerating
// all forward matches and taking the final one, so pattern semantics are
// identical in both directions.
func Find(text string, pat *regexp.Regexp, fromRight bool) (Span, error) {
	if !fromRight {
		loc := pat.FindStringIndex(text)
		if loc == nil {
			return Span{}, ErrNoMatch
		}
		return Span{Start: loc[0], End: loc[1]}, nil
	}

	locs := pat.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return Span{}, ErrNoMatch
	}
	last := locs[len(locs)-1]
	return Span{Start: last[0], End: last[1]}, nil
}
