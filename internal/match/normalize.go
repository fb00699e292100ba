package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize projects s onto its comparison form:
// 1. Case-fold to lower.
// 2. Strip accents (é -> e).
// 3. Drop every rune that is not a letter or digit.
//
// The result is deterministic and Normalize(Normalize(s)) == Normalize(s).
// Dropping a separator can leave runes that compose (Hangul jamo), so the
// filtered result is composed again.
func Normalize(s string) string {
	folded := foldAccents(strings.ToLower(s))

	var result strings.Builder

	result.Grow(len(folded))

	for _, r := range folded {
		if isAlnum(r) {
			result.WriteRune(r)
		}
	}

	return norm.NFC.String(result.String())
}

// NormalizeDocument normalizes free text for keyword extraction.
// Unlike Normalize it keeps word boundaries: tokens are separated by single
// spaces, and the characters that carry meaning in technology names survive
// ("+" and "#" anywhere, "." and "-" inside a token, a leading "." before a
// letter). Examples:
//   - "Node.js, C++ and C#." -> "node.js c++ and c#"
//   - "Experience with .NET / CI-CD" -> "experience with .net ci-cd"
func NormalizeDocument(s string) string {
	return strings.Join(Tokens(s), " ")
}

// Tokens splits free text into normalized tokens, see NormalizeDocument.
func Tokens(s string) []string {
	if s == "" {
		return nil
	}

	folded := foldAccents(strings.ToLower(s))

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() == 0 {
			return
		}

		tok := trimToken(current.String())
		current.Reset()

		if hasAlnum(tok) {
			tokens = append(tokens, tok)
		}
	}

	for _, r := range folded {
		if isTokenRune(r) {
			current.WriteRune(r)

			continue
		}

		flush()
	}

	flush()

	return tokens
}

// Words splits a name on whitespace and hyphens and normalizes each word,
// dropping words that normalize to nothing.
// Example: "Tata Consultancy-Services Ltd." -> ["tata", "consultancy", "services", "ltd"].
func Words(name string) []string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})

	words := make([]string, 0, len(fields))

	for _, f := range fields {
		if w := Normalize(f); w != "" {
			words = append(words, w)
		}
	}

	return words
}

// foldAccents removes combining marks after canonical decomposition.
// The transformer chain is stateful, so a new one is built per call.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return result
}

// trimToken strips punctuation that is only meaningful inside a token:
// trailing dots/hyphens (sentence ends), leading hyphens, and leading dots
// that are not followed by a letter.
func trimToken(tok string) string {
	for {
		before := tok

		tok = strings.TrimRight(tok, ".-")
		tok = strings.TrimLeft(tok, "-")

		if strings.HasPrefix(tok, ".") {
			rest := []rune(tok[1:])
			if len(rest) == 0 || !unicode.IsLetter(rest[0]) {
				tok = tok[1:]
			}
		}

		if tok == before {
			return tok
		}
	}
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isTokenRune(r rune) bool {
	return isAlnum(r) || r == '+' || r == '#' || r == '.' || r == '-'
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if isAlnum(r) {
			return true
		}
	}

	return false
}
