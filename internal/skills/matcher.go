package skills

import "math"

// MatchResult is the comparison of a resume with a job description.
//
// ExistingSkills and MissingSkills partition the job description skills:
// each one appears in exactly one of them. Slices are never nil.
type MatchResult struct {
	// MatchScore is 100 * |existing| / |job skills|, rounded to one decimal,
	// or 0 when the job description has no recognized skill.
	MatchScore float64 `json:"match_score"`
	// ExistingSkills are job skills the resume has, in job order.
	ExistingSkills []Keyword `json:"existing_skills"`
	// MissingSkills are job skills the resume lacks, in job order.
	MissingSkills []Keyword `json:"missing_skills"`
	// ExtraSkills are resume skills the job does not ask for, in resume order.
	ExtraSkills []Keyword `json:"extra_skills"`
	// PriorityMissingSkills are MissingSkills ordered by the matcher's Ranker.
	PriorityMissingSkills []Keyword `json:"priority_missing_skills"`
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithRanker sets the ranker for PriorityMissingSkills. A nil ranker keeps
// job description order.
func WithRanker(r Ranker) Option {
	return func(m *Matcher) {
		if r == nil {
			r = JobOrder
		}

		m.ranker = r
	}
}

// Matcher compares documents against one vocabulary. It holds no mutable
// state and is safe for concurrent use.
type Matcher struct {
	vocab  *Vocabulary
	ranker Ranker
}

// NewMatcher creates a matcher. A nil vocabulary recognizes nothing.
// The default ranker is DefaultCategoryWeights.
func NewMatcher(vocab *Vocabulary, opts ...Option) *Matcher {
	if vocab == nil {
		vocab = &Vocabulary{}
	}

	m := &Matcher{
		vocab:  vocab,
		ranker: DefaultCategoryWeights(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Vocabulary returns the matcher's vocabulary.
func (m *Matcher) Vocabulary() *Vocabulary {
	return m.vocab
}

// Extract returns the vocabulary terms found in text.
func (m *Matcher) Extract(text string) KeywordSet {
	return m.vocab.Extract(text)
}

// Compute extracts skills from both documents and compares them.
func (m *Matcher) Compute(resume, jd string) MatchResult {
	return m.CompareSets(m.Extract(resume), m.Extract(jd))
}

// CompareSets compares pre-extracted skill sets. Use it to score one resume
// against many job descriptions without extracting the resume again.
func (m *Matcher) CompareSets(resume, jd KeywordSet) MatchResult {
	res := MatchResult{
		ExistingSkills: make([]Keyword, 0, jd.Len()),
		MissingSkills:  make([]Keyword, 0, jd.Len()),
		ExtraSkills:    make([]Keyword, 0),
	}

	for _, kw := range jd.items {
		if resume.Contains(kw.Name) {
			res.ExistingSkills = append(res.ExistingSkills, kw)
		} else {
			res.MissingSkills = append(res.MissingSkills, kw)
		}
	}

	for _, kw := range resume.items {
		if !jd.Contains(kw.Name) {
			res.ExtraSkills = append(res.ExtraSkills, kw)
		}
	}

	res.MatchScore = score(len(res.ExistingSkills), jd.Len())
	res.PriorityMissingSkills = m.rank(res.MissingSkills)

	return res
}

func (m *Matcher) rank(missing []Keyword) []Keyword {
	ranked := m.ranker.Rank(missing)
	if ranked == nil {
		return make([]Keyword, 0)
	}

	return ranked
}

func score(existing, total int) float64 {
	if total == 0 {
		return 0
	}

	raw := 100 * float64(existing) / float64(total)

	return math.Round(raw*10) / 10
}
