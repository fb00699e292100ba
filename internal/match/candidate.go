package match

import (
	"sort"
)

// Candidate is a known entity scored against a typed name.
type Candidate struct {
	Entity Entity `json:"entity"`
	// Index is the position of the entity in the slice passed to Suggest.
	Index int `json:"index"`

	// Score is the best normalized Levenshtein similarity (0-1) over the
	// entity's canonical name and aliases.
	Score float64 `json:"score"`
	// Rule is the name rule that links the typed name to this entity, if any.
	Rule Rule `json:"rule"`

	// Metadata for debugging/explanation
	NormalizedInput string `json:"normalized_input"`
	NormalizedName  string `json:"normalized_name"`
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Suggest ranks the known entities by similarity to the typed name, for
// "did you mean" prompts when Find returned nothing or when a user wants
// to review alternatives. Entities failing Validate are skipped.
// n <= 0 returns every candidate.
func (m *NameMatcher) Suggest(input string, entities []Entity, n int) CandidateList {
	q := newQuery(input)
	if q.norm == "" {
		return nil
	}

	var candidates CandidateList

	for i := range entities {
		e := entities[i]
		if e.Validate() != nil {
			continue
		}

		best := candidateName{}
		bestScore := -1.0

		for _, name := range e.names() {
			if score := LevenshteinNormalized(q.norm, name.norm); score > bestScore {
				best, bestScore = name, score
			}
		}

		rule, _, _ := m.matchEntity(q, e)

		candidates = append(candidates, Candidate{
			Entity:          e,
			Index:           i,
			Score:           bestScore,
			Rule:            rule,
			NormalizedInput: q.norm,
			NormalizedName:  best.norm,
		})
	}

	// Sort by score (descending), then by name for determinism
	sort.Sort(candidates)

	if n > 0 {
		return candidates.Top(n)
	}

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Candidates a name rule accepts come first, then higher scores, then
// alphabetical by name, then input order.
func (c CandidateList) Less(i, j int) bool {
	mi, mj := c[i].Rule != RuleNone, c[j].Rule != RuleNone
	if mi != mj {
		return mi
	}

	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	if c[i].Entity.Name != c[j].Entity.Name {
		return c[i].Entity.Name < c[j].Entity.Name
	}

	return c[i].Index < c[j].Index
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	diff := c[0].Score - c[1].Score

	return diff < threshold
}

// AboveThreshold returns candidates with a score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Suggestion thresholds used by the CLI and import flow.
const (
	// DefaultSuggestScore is the minimum similarity worth showing to a user.
	DefaultSuggestScore = 0.6
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)
