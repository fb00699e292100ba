package tables

import (
	"fmt"
	"slices"
	"strings"

	"jobmatch/internal/diagnostic"
	"jobmatch/internal/match"
	"jobmatch/internal/skills"
)

// Table sections used in diagnostics.
const (
	SectionVersion    = "version"
	SectionCategories = "categories"
	SectionSkills     = "skills"
	SectionCompanies  = "companies"
)

// Validate checks a tables file for structural problems.
// It never stops at the first problem: every finding is reported.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("tables_is_nil", "tables file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("version %q is not supported (want %q)", f.Version, CurrentVersion), SectionVersion, f.Version)
	}

	known := validateCategories(res, f)
	used := validateSkills(res, f, known)
	validateCompanies(res, f.Companies)

	for _, c := range f.Categories {
		if c.Name != "" && used[c.Name] == 0 {
			res.AddInfo("unused_category", "category has no skills", SectionCategories, c.Name)
		}
	}

	return res
}

// validateCategories checks declared categories and returns the set of
// names skills may refer to: the declared ones, or the built-in ones when
// none are declared.
func validateCategories(res *diagnostic.Diagnostics, f *File) []string {
	if len(f.Categories) == 0 {
		return builtinCategories()
	}

	known := make([]string, 0, len(f.Categories))

	for i, c := range f.Categories {
		if c.Name == "" {
			res.AddError("empty_category_name", "category must have a name", SectionCategories, fmt.Sprintf("#%d", i))
			continue
		}

		if slices.Contains(known, c.Name) {
			res.AddError("duplicate_category", fmt.Sprintf("duplicate category %q", c.Name), SectionCategories, c.Name)
			continue
		}

		if c.Weight < 0 {
			res.AddWarning("negative_weight", "negative weight ranks below categories without a weight", SectionCategories, c.Name)
		}

		known = append(known, c.Name)
	}

	return known
}

// validateSkills checks names, categories and spellings, and returns how
// many skills use each category.
func validateSkills(res *diagnostic.Diagnostics, f *File, known []string) map[string]int {
	used := make(map[string]int)
	names := make(map[string]string)
	// owners maps a tokenized spelling to the skill that claims it.
	owners := make(map[string]string)

	for i, s := range f.Skills {
		key := strings.Join(match.Tokens(s.Name), " ")
		if key == "" {
			res.AddError("empty_skill_name", "skill must have a name", SectionSkills, fmt.Sprintf("#%d", i))
			continue
		}

		if prev, ok := names[key]; ok {
			res.AddError("duplicate_skill", fmt.Sprintf("duplicate skill %q (same as %q)", s.Name, prev), SectionSkills, s.Name)
			continue
		}

		names[key] = s.Name

		if s.Category != "" {
			if slices.Contains(known, s.Category) {
				used[s.Category]++
			} else {
				res.Errors = append(res.Errors, diagnostic.Diagnostic{
					Severity:    diagnostic.DiagnosticError,
					Code:        "unknown_category",
					Message:     fmt.Sprintf("unknown category %q", s.Category),
					Section:     SectionSkills,
					Entry:       s.Name,
					Suggestions: suggestCategories(s.Category, known),
				})
			}
		}

		validateSpellings(res, s, owners)
	}

	return used
}

func validateSpellings(res *diagnostic.Diagnostics, s SkillDef, owners map[string]string) {
	for j, spelling := range append([]string{s.Name}, s.Aliases...) {
		tokens := match.Tokens(spelling)
		if len(tokens) == 0 {
			res.AddError("empty_alias", fmt.Sprintf("alias %q has no letters or digits", spelling), SectionSkills, s.Name)
			continue
		}

		joined := strings.Join(tokens, " ")

		owner, ok := owners[joined]

		switch {
		case !ok:
			owners[joined] = s.Name
		case owner == s.Name && j > 0:
			res.AddWarning("duplicate_alias", fmt.Sprintf("alias %q repeats another spelling", spelling), SectionSkills, s.Name)
		case owner != s.Name:
			res.AddError("shared_alias",
				fmt.Sprintf("spelling %q is already used by %q", spelling, owner), SectionSkills, s.Name)
		}
	}
}

func validateCompanies(res *diagnostic.Diagnostics, c Companies) {
	for _, key := range c.AliasKeys() {
		norm := match.Normalize(key)
		if norm == "" {
			res.AddError("empty_alias", fmt.Sprintf("alias key %q has no letters or digits", key), SectionCompanies, key)
			continue
		}

		if c.Aliases[key].IsEmpty() {
			res.AddError("empty_alias", "alias key has no targets", SectionCompanies, key)
			continue
		}

		for _, target := range c.Aliases[key] {
			switch match.Normalize(target) {
			case "":
				res.AddError("empty_alias", fmt.Sprintf("alias target %q has no letters or digits", target), SectionCompanies, key)
			case norm:
				res.AddWarning("self_alias", fmt.Sprintf("alias target %q is the key itself", target), SectionCompanies, key)
			}
		}
	}
}

// suggestCategories returns the known categories that look like a typo
// of name, closest first.
func suggestCategories(name string, known []string) []string {
	type scored struct {
		name  string
		score float64
	}

	var candidates []scored

	for _, k := range known {
		if s := match.Similarity(name, k); s >= match.DefaultSuggestScore {
			candidates = append(candidates, scored{k, s})
		}
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.name)
	}

	return out
}

func builtinCategories() []string {
	weights := skills.DefaultCategoryWeights()

	names := make([]string, 0, len(weights))
	for c := range weights {
		names = append(names, string(c))
	}

	slices.Sort(names)

	return names
}
