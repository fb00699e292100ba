package skills

import "sort"

// Ranker orders missing skills by importance. Implementations must return a
// permutation of the input and must not modify it.
type Ranker interface {
	Rank(missing []Keyword) []Keyword
}

// RankerFunc adapts a function to Ranker.
type RankerFunc func(missing []Keyword) []Keyword

// Rank calls f.
func (f RankerFunc) Rank(missing []Keyword) []Keyword {
	return f(missing)
}

// JobOrder keeps missing skills in the order the job description first
// mentions them.
var JobOrder Ranker = RankerFunc(func(missing []Keyword) []Keyword {
	out := make([]Keyword, len(missing))
	copy(out, missing)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})

	return out
})

// CategoryWeights ranks missing skills by category weight, highest first.
// Ties, including categories absent from the map, keep job description
// order.
type CategoryWeights map[Category]int

// DefaultCategoryWeights returns the weights used when the tables do not
// declare any.
func DefaultCategoryWeights() CategoryWeights {
	return CategoryWeights{
		CategoryLanguage:  100,
		CategoryFramework: 90,
		CategoryCloud:     80,
		CategoryDatabase:  70,
		CategoryDevOps:    60,
		CategoryTool:      40,
		CategoryPractice:  30,
		CategorySoft:      20,
	}
}

// Rank implements Ranker.
func (w CategoryWeights) Rank(missing []Keyword) []Keyword {
	out := make([]Keyword, len(missing))
	copy(out, missing)
	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := w[out[i].Category], w[out[j].Category]
		if wi != wj {
			return wi > wj
		}

		return out[i].Position < out[j].Position
	})

	return out
}
