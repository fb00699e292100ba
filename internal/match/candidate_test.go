package match

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	m := newTestMatcher()

	entities := []Entity{
		{Name: "Apple"},
		{Name: "Micron Technology"},
		{Name: ""},
		{Name: "Microsoft"},
	}

	candidates := m.Suggest("Microsft", entities, 0)

	// Should have 3 candidates (invalid entity filtered out)
	require.Len(t, candidates, 3)

	best := candidates.Best()
	require.NotNil(t, best)
	assert.Equal(t, "Microsoft", best.Entity.Name)
	assert.Equal(t, 3, best.Index)
	assert.Equal(t, RuleEditDistance, best.Rule)
	assert.InDelta(t, 1.0-1.0/9.0, best.Score, 0.001)
	assert.Equal(t, "microsft", best.NormalizedInput)
	assert.Equal(t, "microsoft", best.NormalizedName)

	for i := 1; i < len(candidates); i++ {
		assert.Equal(t, RuleNone, candidates[i].Rule)
		assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}

	top := m.Suggest("Microsft", entities, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "Microsoft", top[0].Entity.Name)

	assert.Nil(t, m.Suggest("", entities, 3))
	assert.Empty(t, m.Suggest("Microsft", nil, 3))
}

func TestSuggest_UsesBestAlias(t *testing.T) {
	m := newTestMatcher()

	candidates := m.Suggest("facebok", []Entity{{Name: "Meta Platforms", Aliases: []string{"Facebook"}}}, 0)
	require.Len(t, candidates, 1)
	assert.Equal(t, "facebook", candidates[0].NormalizedName)
	assert.Equal(t, RuleEditDistance, candidates[0].Rule)
}

func TestCandidateList_Sorting(t *testing.T) {
	candidates := CandidateList{
		{Entity: Entity{Name: "FieldA"}, Score: 0.5},
		{Entity: Entity{Name: "FieldC"}, Score: 0.9},
		{Entity: Entity{Name: "FieldD"}, Score: 0.7},
		{Entity: Entity{Name: "FieldB"}, Score: 0.7}, // Same score as FieldD
		{Entity: Entity{Name: "FieldE"}, Score: 0.1, Rule: RuleAlias},
	}

	sort.Sort(candidates)

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Entity.Name)
	}

	assert.Equal(t, []string{"FieldE", "FieldC", "FieldB", "FieldD", "FieldA"}, names)
}

func TestCandidateList_Top(t *testing.T) {
	candidates := CandidateList{
		{Entity: Entity{Name: "A"}, Score: 0.9},
		{Entity: Entity{Name: "B"}, Score: 0.8},
		{Entity: Entity{Name: "C"}, Score: 0.7},
	}

	top2 := candidates.Top(2)
	if len(top2) != 2 {
		t.Errorf("Expected 2 candidates, got %d", len(top2))
	}

	// Request more than available
	top10 := candidates.Top(10)
	if len(top10) != 3 {
		t.Errorf("Expected 3 candidates (all), got %d", len(top10))
	}
}

func TestCandidateList_Best_Empty(t *testing.T) {
	var candidates CandidateList
	assert.Nil(t, candidates.Best())
}

func TestCandidateList_IsAmbiguous(t *testing.T) {
	tests := []struct {
		name       string
		candidates CandidateList
		threshold  float64
		expected   bool
	}{
		{
			name:       "single candidate",
			candidates: CandidateList{{Score: 0.9}},
			threshold:  0.1,
			expected:   false,
		},
		{
			name:       "clear winner",
			candidates: CandidateList{{Score: 0.9}, {Score: 0.5}},
			threshold:  0.1,
			expected:   false,
		},
		{
			name:       "close scores",
			candidates: CandidateList{{Score: 0.9}, {Score: 0.85}},
			threshold:  0.1,
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.candidates.IsAmbiguous(tt.threshold))
		})
	}
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	candidates := CandidateList{
		{Entity: Entity{Name: "A"}, Score: 0.9},
		{Entity: Entity{Name: "B"}, Score: 0.6},
		{Entity: Entity{Name: "C"}, Score: 0.3},
	}

	above := candidates.AboveThreshold(DefaultSuggestScore)
	require.Len(t, above, 2)
	assert.Equal(t, "B", above[1].Entity.Name)
}
