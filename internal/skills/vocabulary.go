package skills

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"jobmatch/internal/match"
)

// Category groups skill terms for priority ranking.
type Category string

// Categories used by the bundled tables. Any other value is accepted and
// ranked with weight 0 unless the weight table names it.
const (
	CategoryLanguage  Category = "language"
	CategoryFramework Category = "framework"
	CategoryCloud     Category = "cloud"
	CategoryDatabase  Category = "database"
	CategoryDevOps    Category = "devops"
	CategoryTool      Category = "tool"
	CategoryPractice  Category = "practice"
	CategorySoft      Category = "soft"
)

// Term is one entry of the controlled vocabulary.
type Term struct {
	// Name is the canonical display form ("Node.js").
	Name string `json:"name" yaml:"name"`
	// Category is an optional grouping used for ranking.
	Category Category `json:"category,omitempty" yaml:"category,omitempty"`
	// Aliases are additional spellings ("nodejs", "node js").
	// The name itself is always recognized.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Vocabulary errors.
var (
	ErrEmptyTerm     = errors.New("skill term has no name")
	ErrDuplicateTerm = errors.New("duplicate skill term")
	ErrSharedVariant = errors.New("spelling claimed by two skill terms")
)

// pattern is one spelling of a term as a token sequence.
type pattern struct {
	tokens []string
	chars  int
	term   int
}

// Vocabulary is a compiled, immutable set of skill terms.
// It is safe for concurrent use.
type Vocabulary struct {
	terms []Term
	// byFirst indexes patterns by their first token, longest first.
	byFirst map[string][]pattern
}

// NewVocabulary compiles the terms. Every spelling (name and aliases) is
// split with match.Tokens, so it matches documents normalized the same way.
// Term names must be unique as token sequences ("Node.js" and "node.js" are
// the same term, "C++" and "C#" are not) and a spelling may belong to one
// term only.
func NewVocabulary(terms []Term) (*Vocabulary, error) {
	v := &Vocabulary{
		terms:   make([]Term, 0, len(terms)),
		byFirst: make(map[string][]pattern),
	}

	names := make(map[string]string, len(terms))
	owners := make(map[string]string)

	for _, t := range terms {
		name := strings.TrimSpace(t.Name)

		key := termKey(name)
		if key == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyTerm, t.Name)
		}

		if prev, ok := names[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateTerm, prev, name)
		}

		names[key] = name

		idx := len(v.terms)
		v.terms = append(v.terms, Term{
			Name:     name,
			Category: Category(strings.ToLower(strings.TrimSpace(string(t.Category)))),
			Aliases:  append([]string(nil), t.Aliases...),
		})

		for _, spelling := range append([]string{name}, t.Aliases...) {
			tokens := match.Tokens(spelling)
			if len(tokens) == 0 {
				continue
			}

			joined := strings.Join(tokens, " ")
			if owner, ok := owners[joined]; ok {
				if owner == name {
					continue
				}

				return nil, fmt.Errorf("%w: %q used by %q and %q", ErrSharedVariant, spelling, owner, name)
			}

			owners[joined] = name
			v.byFirst[tokens[0]] = append(v.byFirst[tokens[0]], pattern{
				tokens: tokens,
				chars:  len(joined),
				term:   idx,
			})
		}
	}

	for first := range v.byFirst {
		sortLongestFirst(v.byFirst[first])
	}

	return v, nil
}

// MustVocabulary is like NewVocabulary but panics on error.
// It is meant for tests and package-level tables known to be valid.
func MustVocabulary(terms []Term) *Vocabulary {
	v, err := NewVocabulary(terms)
	if err != nil {
		panic(err)
	}

	return v
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}

	return len(v.terms)
}

// Terms returns a copy of the terms in declaration order.
func (v *Vocabulary) Terms() []Term {
	if v == nil {
		return nil
	}

	out := make([]Term, len(v.terms))
	copy(out, v.terms)

	return out
}

// Extract finds the vocabulary terms in text.
//
// Matching is whole-token: "java" never matches inside "javascript". At each
// token position the longest spelling wins (most tokens, then most
// characters) and its tokens are consumed, so "AWS Lambda" yields the Lambda
// term only, not also AWS.
//
// A hyphenated token is tried whole first ("ci-cd"). When nothing matches
// there, its hyphen-separated parts are scanned the same way, so
// "Python-based" yields Python. Those hits take the token's position.
func (v *Vocabulary) Extract(text string) KeywordSet {
	set := newKeywordSet()
	if v == nil || len(v.terms) == 0 {
		return set
	}

	tokens := match.Tokens(text)

	for i := 0; i < len(tokens); {
		if n := v.scanAt(&set, tokens, i, i); n > 0 {
			i += n

			continue
		}

		if strings.Contains(tokens[i], "-") {
			parts := hyphenParts(tokens[i])
			for j := 0; j < len(parts); {
				if n := v.scanAt(&set, parts, j, i); n > 0 {
					j += n
				} else {
					j++
				}
			}
		}

		i++
	}

	return set
}

// scanAt records the longest pattern starting at tokens[i] under position
// pos and returns how many tokens it consumed, 0 when nothing matches.
func (v *Vocabulary) scanAt(set *KeywordSet, tokens []string, i, pos int) int {
	p, ok := v.longestAt(tokens, i)
	if !ok {
		return 0
	}

	t := v.terms[p.term]
	set.add(t.Name, t.Category, pos)

	return len(p.tokens)
}

// hyphenParts splits a token on "-" and trims the dots a part may be left
// with ("node.js-based" -> ["node.js", "based"]).
func hyphenParts(tok string) []string {
	parts := make([]string, 0, 2)

	for _, part := range strings.Split(tok, "-") {
		part = strings.TrimRight(part, ".")
		if part != "" {
			parts = append(parts, part)
		}
	}

	return parts
}

func (v *Vocabulary) longestAt(tokens []string, i int) (pattern, bool) {
	for _, p := range v.byFirst[tokens[i]] {
		if i+len(p.tokens) > len(tokens) {
			continue
		}

		if equalTokens(tokens[i:i+len(p.tokens)], p.tokens) {
			return p, true
		}
	}

	return pattern{}, false
}

// termKey is the identity of a term name: its tokens joined by spaces.
func termKey(name string) string {
	return strings.Join(match.Tokens(name), " ")
}

func equalTokens(a, b []string) bool {
	for k := range b {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}

// sortLongestFirst orders patterns by token count, then character count,
// then declaration order, all so that the longest spelling is tried first.
func sortLongestFirst(ps []pattern) {
	sort.SliceStable(ps, func(i, j int) bool {
		if len(ps[i].tokens) != len(ps[j].tokens) {
			return len(ps[i].tokens) > len(ps[j].tokens)
		}

		if ps[i].chars != ps[j].chars {
			return ps[i].chars > ps[j].chars
		}

		return ps[i].term < ps[j].term
	})
}
