// Package matcher implements the deterministic candidate-matching engine:
// it tokenizes a job description and a batch of resumes, extracts the job's
// skill vocabulary, scores each resume by skill coverage, lists the skills
// each resume is missing, and ranks the candidates.
package matcher

import (
	"strings"
	"unicode"
)

// compoundSkills are skill names the generic splitter would destroy. They
// are matched before the alphanumeric scan so tokens like "c++" survive
// normalization intact. Longest names are matched first so "asp.net" is not
// swallowed by ".net".
var compoundSkills = []string{
	"objective-c",
	"scikit-learn",
	"asp.net",
	"node.js",
	"react.js",
	"next.js",
	"vue.js",
	"ci/cd",
	".net",
	"c++",
	"c#",
	"f#",
}

// Tokenize lower-cases text and splits it into an ordered stream of tokens.
// Runs of non-alphanumeric characters delimit tokens, except for the
// compound skill names above, which are emitted whole. Tokens shorter than
// two characters and purely numeric tokens are dropped as noise.
// Duplicates are preserved in order of appearance.
func Tokenize(text string) []string {
	runes := []rune(strings.ToLower(text))

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			if tok := current.String(); keepToken(tok) {
				tokens = append(tokens, tok)
			}
			current.Reset()
		}
	}

	for i := 0; i < len(runes); {
		if compound, n := matchCompound(runes, i); n > 0 {
			flush()
			tokens = append(tokens, compound)
			i += n
			continue
		}
		r := runes[i]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else {
			flush()
		}
		i++
	}
	flush()

	return tokens
}

// TokenSet returns the deduplicated set of tokens in text.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}

// matchCompound reports whether a compound skill starts at runes[i] on a
// token boundary. It returns the matched name and its length in runes.
func matchCompound(runes []rune, i int) (string, int) {
	if i > 0 && isWordRune(runes[i-1]) && isWordRune(runes[i]) {
		// Inside an alphanumeric run; "net" in "internet" is not ".net".
		return "", 0
	}
	for _, compound := range compoundSkills {
		cr := []rune(compound)
		if i+len(cr) > len(runes) {
			continue
		}
		if string(runes[i:i+len(cr)]) != compound {
			continue
		}
		if end := i + len(cr); end < len(runes) && isWordRune(runes[end]) {
			continue
		}
		return compound, len(cr)
	}
	return "", 0
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func keepToken(tok string) bool {
	if len([]rune(tok)) < 2 {
		return false
	}
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
