package match

import (
	"strings"
	"unicode/utf8"
)

// NameMatcherConfig configures the thresholds of the fuzzy name rules.
type NameMatcherConfig struct {
	// MinContainmentLen is the minimum normalized length (runes) both names
	// need before the containment rule applies.
	// Default: 3
	MinContainmentLen int `yaml:"min_containment_len"`
	// MaxDistance is the largest accepted Levenshtein distance.
	// Default: 2
	MaxDistance int `yaml:"max_distance"`
	// MaxLengthDelta bounds the length difference for the edit-distance rule;
	// the difference must be strictly smaller.
	// Default: 3
	MaxLengthDelta int `yaml:"max_length_delta"`
	// MinFuzzyInputLen is the minimum normalized input length (runes) for the
	// edit-distance rule. Short strings are too easy to confuse.
	// Default: 4
	MinFuzzyInputLen int `yaml:"min_fuzzy_input_len"`
}

// DefaultNameMatcherConfig returns the thresholds used by the import flow.
func DefaultNameMatcherConfig() NameMatcherConfig {
	return NameMatcherConfig{
		MinContainmentLen: 3,
		MaxDistance:       2,
		MaxLengthDelta:    3,
		MinFuzzyInputLen:  4,
	}
}

// NameMatcher decides whether a typed name refers to a known entity.
// It is immutable after construction and safe for concurrent use.
type NameMatcher struct {
	aliases AliasTable
	config  NameMatcherConfig
}

// NewNameMatcher creates a matcher over the given alias table.
// Non-positive thresholds fall back to their defaults.
func NewNameMatcher(aliases AliasTable, config NameMatcherConfig) *NameMatcher {
	def := DefaultNameMatcherConfig()

	if config.MinContainmentLen <= 0 {
		config.MinContainmentLen = def.MinContainmentLen
	}

	if config.MaxDistance <= 0 {
		config.MaxDistance = def.MaxDistance
	}

	if config.MaxLengthDelta <= 0 {
		config.MaxLengthDelta = def.MaxLengthDelta
	}

	if config.MinFuzzyInputLen <= 0 {
		config.MinFuzzyInputLen = def.MinFuzzyInputLen
	}

	return &NameMatcher{aliases: aliases, config: config}
}

// Config returns the effective thresholds.
func (m *NameMatcher) Config() NameMatcherConfig {
	return m.config
}

// NameMatch describes the outcome of a lookup.
type NameMatch struct {
	// Entity is a copy of the matched candidate, nil when nothing matched.
	Entity *Entity `json:"entity,omitempty"`
	// Index is the position of the candidate in the input slice, -1 when nothing matched.
	Index int `json:"index"`
	// Rule is the rule that fired.
	Rule Rule `json:"rule"`
	// MatchedName is the normalized candidate name (canonical or alias) that matched.
	MatchedName string `json:"matched_name,omitempty"`
	// Distance is the edit distance for RuleEditDistance, 0 otherwise.
	Distance int `json:"distance,omitempty"`
}

// Found reports whether a candidate matched.
func (m NameMatch) Found() bool {
	return m.Entity != nil
}

// Find returns the first candidate the typed name refers to.
// The second result is false when there is no match, which is a normal outcome.
func (m *NameMatcher) Find(input string, candidates []Entity) (*Entity, bool) {
	res := m.FindMatch(input, candidates)

	return res.Entity, res.Found()
}

// FindMatch evaluates the name rules against each candidate in order and
// returns the first candidate satisfying any rule. For a single candidate the
// rules are tried in order: exact, acronym, containment, alias, edit distance.
// Candidates failing Validate are skipped.
func (m *NameMatcher) FindMatch(input string, candidates []Entity) NameMatch {
	noMatch := NameMatch{Index: -1}

	q := newQuery(input)
	if q.norm == "" || len(candidates) == 0 {
		return noMatch
	}

	for i := range candidates {
		cand := candidates[i]
		if cand.Validate() != nil {
			continue
		}

		rule, name, dist := m.matchEntity(q, cand)
		if rule == RuleNone {
			continue
		}

		cand.Aliases = append([]string(nil), cand.Aliases...)

		return NameMatch{
			Entity:      &cand,
			Index:       i,
			Rule:        rule,
			MatchedName: name,
			Distance:    dist,
		}
	}

	return noMatch
}

// Match reports which rule, if any, links the two names.
func (m *NameMatcher) Match(a, b string) Rule {
	q := newQuery(a)
	if q.norm == "" {
		return RuleNone
	}

	rule, _, _ := m.matchEntity(q, Entity{Name: b})

	return rule
}

// query caches the derived forms of the typed name.
type query struct {
	norm    string
	acronym string
	length  int
}

func newQuery(input string) query {
	norm := Normalize(strings.TrimSpace(input))

	return query{
		norm:    norm,
		acronym: Acronym(input),
		length:  utf8.RuneCountInString(norm),
	}
}

// candidateName pairs a raw candidate name with its normalized form.
type candidateName struct {
	raw  string
	norm string
}

func (m *NameMatcher) matchEntity(q query, e Entity) (Rule, string, int) {
	names := e.names()

	for _, n := range names {
		if q.norm == n.norm {
			return RuleExact, n.norm, 0
		}
	}

	for _, n := range names {
		if q.acronym != "" && q.acronym == n.norm {
			return RuleAcronym, n.norm, 0
		}

		if acr := Acronym(n.raw); acr != "" && q.norm == acr {
			return RuleAcronym, n.norm, 0
		}
	}

	for _, n := range names {
		if m.contains(q.norm, n.norm) {
			return RuleContainment, n.norm, 0
		}
	}

	for _, n := range names {
		if m.aliases.Related(q.norm, n.norm) {
			return RuleAlias, n.norm, 0
		}
	}

	if q.length < m.config.MinFuzzyInputLen {
		return RuleNone, "", 0
	}

	for _, n := range names {
		delta := q.length - utf8.RuneCountInString(n.norm)
		if delta < 0 {
			delta = -delta
		}

		if delta >= m.config.MaxLengthDelta {
			continue
		}

		if d := Levenshtein(q.norm, n.norm); d <= m.config.MaxDistance {
			return RuleEditDistance, n.norm, d
		}
	}

	return RuleNone, "", 0
}

// contains is symmetric: the order of a and b does not change the outcome.
func (m *NameMatcher) contains(a, b string) bool {
	if utf8.RuneCountInString(a) < m.config.MinContainmentLen ||
		utf8.RuneCountInString(b) < m.config.MinContainmentLen {
		return false
	}

	return strings.Contains(a, b) || strings.Contains(b, a)
}
