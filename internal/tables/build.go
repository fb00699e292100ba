package tables

import (
	"fmt"

	"jobmatch/internal/match"
	"jobmatch/internal/skills"
)

// Tables are the compiled matcher inputs.
type Tables struct {
	Vocabulary     *skills.Vocabulary
	Weights        skills.CategoryWeights
	CompanyAliases match.AliasTable
}

// Build validates f and compiles it. Validation errors are folded into the
// returned error; warnings and infos are ignored here, use Validate to see
// them.
func Build(f *File) (*Tables, error) {
	if err := Validate(f).Error(); err != nil {
		return nil, fmt.Errorf("invalid tables: %w", err)
	}

	terms := make([]skills.Term, 0, len(f.Skills))
	for _, s := range f.Skills {
		terms = append(terms, skills.Term{
			Name:     s.Name,
			Category: skills.Category(s.Category),
			Aliases:  s.Aliases,
		})
	}

	vocab, err := skills.NewVocabulary(terms)
	if err != nil {
		return nil, fmt.Errorf("compile vocabulary: %w", err)
	}

	aliases := make(map[string][]string, len(f.Companies.Aliases))
	for k, v := range f.Companies.Aliases {
		aliases[k] = v
	}

	return &Tables{
		Vocabulary:     vocab,
		Weights:        weights(f),
		CompanyAliases: match.NewAliasTable(aliases),
	}, nil
}

// BuildDefault compiles the embedded default tables.
func BuildDefault() (*Tables, error) {
	f, err := Default()
	if err != nil {
		return nil, err
	}

	return Build(f)
}

func weights(f *File) skills.CategoryWeights {
	if len(f.Categories) == 0 {
		return skills.DefaultCategoryWeights()
	}

	w := make(skills.CategoryWeights, len(f.Categories))
	for _, c := range f.Categories {
		w[skills.Category(c.Name)] = c.Weight
	}

	return w
}

// SkillMatcher returns a skill matcher ranking missing skills by the
// table weights.
func (t *Tables) SkillMatcher() *skills.Matcher {
	return skills.NewMatcher(t.Vocabulary, skills.WithRanker(t.Weights))
}

// NameMatcher returns a company name matcher using the table aliases.
func (t *Tables) NameMatcher(config match.NameMatcherConfig) *match.NameMatcher {
	return match.NewNameMatcher(t.CompanyAliases, config)
}
