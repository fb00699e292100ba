package tables

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/match"
	"jobmatch/internal/skills"
)

func TestParse(t *testing.T) {
	yaml := `
categories:
  - name: Language
    weight: 10
  - name: cloud
    weight: 5
skills:
  - name: " Go "
    category: language
    aliases: golang
  - name: Lambda
    category: CLOUD
    aliases: [aws lambda, lambda functions]
  - name: Git
companies:
  aliases:
    cts: [Cognizant, Cognizant Technology Solutions]
    ibm: International Business Machines
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	assert.Equal(t, []string{"language", "cloud"}, f.CategoryNames())
	require.Len(t, f.Skills, 3)

	assert.Equal(t, "Go", f.Skills[0].Name)
	assert.Equal(t, StringOrArray{"golang"}, f.Skills[0].Aliases)
	assert.Equal(t, "cloud", f.Skills[1].Category)
	assert.Equal(t, "aws lambda", f.Skills[1].Aliases.First())
	assert.True(t, f.Skills[2].Aliases.IsEmpty())

	assert.Equal(t, []string{"cts", "ibm"}, f.Companies.AliasKeys())
	assert.True(t, f.Companies.Aliases["cts"].Contains("Cognizant"))
	assert.Equal(t, StringOrArray{"International Business Machines"}, f.Companies.Aliases["ibm"])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"unsupported version", "version: \"2\"\nskills: []\n", ErrUnsupportedVersion},
		{"malformed yaml", "skills: [\n", nil},
		{"aliases must be string or list", "skills:\n  - name: Go\n    aliases: {a: b}\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, f)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestMarshal_RoundTripsThroughFile(t *testing.T) {
	f := &File{
		Version:    CurrentVersion,
		Categories: []CategoryDef{{Name: "language", Weight: 100}},
		Skills: []SkillDef{
			{Name: "Go", Category: "language", Aliases: StringOrArray{"golang"}},
			{Name: "Rust", Category: "language", Aliases: StringOrArray{"rustlang", "rust-lang"}},
		},
		Companies: Companies{Aliases: map[string]StringOrArray{"ibm": {"International Business Machines"}}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), "aliases: golang\n")

	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, WriteFile(f, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		file      *File
		wantCodes []string
	}{
		{
			name:      "nil file",
			file:      nil,
			wantCodes: []string{"tables_is_nil"},
		},
		{
			name:      "built-in categories",
			file:      &File{Version: "1", Skills: []SkillDef{{Name: "Go", Category: "language"}}},
			wantCodes: []string{},
		},
		{
			name:      "wrong version",
			file:      &File{Version: "0"},
			wantCodes: []string{"unsupported_version"},
		},
		{
			name: "category problems",
			file: &File{
				Version:    "1",
				Categories: []CategoryDef{{Name: ""}, {Name: "lang", Weight: -1}, {Name: "lang"}, {Name: "soft"}},
				Skills:     []SkillDef{{Name: "Go", Category: "lang"}},
			},
			wantCodes: []string{"empty_category_name", "duplicate_category", "negative_weight", "unused_category"},
		},
		{
			name: "skill problems",
			file: &File{
				Version: "1",
				Skills: []SkillDef{
					{Name: " "},
					{Name: "Go", Aliases: StringOrArray{"golang", "GoLang", "!!"}},
					{Name: "go"},
					{Name: "Golang Tools", Aliases: StringOrArray{"golang"}},
					{Name: "Rust", Category: "langauge"},
				},
			},
			wantCodes: []string{"empty_skill_name", "empty_alias", "duplicate_skill", "shared_alias", "unknown_category", "duplicate_alias"},
		},
		{
			name: "company alias problems",
			file: &File{
				Version: "1",
				Companies: Companies{Aliases: map[string]StringOrArray{
					"--":  {"Acme"},
					"ibm": {"IBM", ""},
					"tcs": {},
				}},
			},
			wantCodes: []string{"empty_alias", "empty_alias", "empty_alias", "self_alias"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.file)
			assert.Equal(t, tt.wantCodes, append([]string{}, res.Codes()...))
		})
	}
}

func TestValidate_UnknownCategorySuggestion(t *testing.T) {
	res := Validate(&File{Version: "1", Skills: []SkillDef{{Name: "Rust", Category: "langauge"}}})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"language"}, res.Errors[0].Suggestions)
	assert.Equal(t, SectionSkills, res.Errors[0].Section)
	assert.Equal(t, "Rust", res.Errors[0].Entry)
}

func TestDefault(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	res := Validate(f)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Infos)

	// Each call parses a fresh copy.
	f.Skills = nil
	again, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, again.Skills)

	same, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, again, same)
}

func TestBuild(t *testing.T) {
	f := &File{
		Version:    "1",
		Categories: []CategoryDef{{Name: "language", Weight: 3}, {Name: "tool", Weight: 7}},
		Skills: []SkillDef{
			{Name: "Go", Category: "language", Aliases: StringOrArray{"golang"}},
			{Name: "Git", Category: "tool"},
		},
		Companies: Companies{Aliases: map[string]StringOrArray{"cts": {"Cognizant"}}},
	}

	tb, err := Build(f)
	require.NoError(t, err)

	assert.Equal(t, 2, tb.Vocabulary.Len())
	assert.Equal(t, skills.CategoryWeights{"language": 3, "tool": 7}, tb.Weights)
	assert.True(t, tb.CompanyAliases.Related("cts", "cognizant"))

	res := tb.SkillMatcher().Compute("", "golang and git")
	assert.Equal(t, []string{"Go", "Git"}, skills.Names(res.MissingSkills))
	assert.Equal(t, []string{"Git", "Go"}, skills.Names(res.PriorityMissingSkills))

	e, ok := tb.NameMatcher(match.DefaultNameMatcherConfig()).Find("Cognizant", []match.Entity{{Name: "CTS"}})
	require.True(t, ok)
	assert.Equal(t, "CTS", e.Name)
}

func TestBuild_Invalid(t *testing.T) {
	_, err := Build(&File{Version: "1", Skills: []SkillDef{{Name: "Go"}, {Name: "GO"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate_skill")
}

func TestBuildDefault_Extract(t *testing.T) {
	tb, err := BuildDefault()
	require.NoError(t, err)

	m := tb.SkillMatcher()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"hyphen suffix", "Python-based services", []string{"Python"}},
		{"hyphen suffix after cloud", "AWS-hosted infra", []string{"AWS"}},
		{"hyphen list", "Docker-compose, Kubernetes-native", []string{"Docker", "Kubernetes"}},
		{"hyphen phrase", "React-native app", []string{"React Native"}},
		{"hyphen spelling", "CI-CD pipelines", []string{"CI/CD"}},
		{"rest needs api", "RESTful Go services", []string{"REST API", "Go"}},
		{"node and express are words", "a node in the graph, express delivery", nil},
		// Go is the language's usual spelling, so the verb matches too.
		{"go as a verb", "We go fast and rest well", []string{"Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Extract(tt.text).Names()
			if tt.want == nil {
				assert.Empty(t, got)

				return
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildDefault_Matchers(t *testing.T) {
	tb, err := BuildDefault()
	require.NoError(t, err)

	res := tb.SkillMatcher().Compute(
		"JavaScript, React, Node.js, AWS EC2, PostgreSQL",
		"Looking for React, TypeScript, Node.js, AWS Lambda, MongoDB",
	)

	assert.Equal(t, []string{"React", "Node.js"}, skills.Names(res.ExistingSkills))
	assert.Equal(t, []string{"TypeScript", "Lambda", "MongoDB"}, skills.Names(res.MissingSkills))
	assert.InDelta(t, 40.0, res.MatchScore, 0.001)

	m := tb.NameMatcher(match.DefaultNameMatcherConfig())

	e, ok := m.Find("TCS", []match.Entity{{Name: "Tata Consultancy Services"}})
	require.True(t, ok)
	assert.Equal(t, "Tata Consultancy Services", e.Name)

	rule := m.FindMatch("Cognizant", []match.Entity{{Name: "CTS"}}).Rule
	assert.Equal(t, match.RuleAlias, rule)
}
