package tables

import (
	"errors"
	"slices"
)

// CurrentVersion is the only table schema version understood by this package.
const CurrentVersion = "1"

// ErrUnsupportedVersion is returned for table files with an unknown version.
var ErrUnsupportedVersion = errors.New("unsupported tables version")

// File represents the root of a YAML matching tables file.
type File struct {
	// Version of the tables schema.
	Version string `yaml:"version,omitempty"`

	// Categories declares the skill categories and their ranking weights.
	// When empty, the built-in categories and weights are used.
	Categories []CategoryDef `yaml:"categories,omitempty"`

	// Skills is the controlled vocabulary.
	Skills []SkillDef `yaml:"skills"`

	// Companies holds company name tables.
	Companies Companies `yaml:"companies,omitempty"`
}

// CategoryDef declares one skill category.
type CategoryDef struct {
	// Name of the category (e.g., "language").
	Name string `yaml:"name"`
	// Weight ranks missing skills of this category; higher comes first.
	Weight int `yaml:"weight"`
}

// SkillDef declares one vocabulary term.
type SkillDef struct {
	// Name is the canonical display form (e.g., "Node.js").
	Name string `yaml:"name"`
	// Category is optional; it must be a declared category when set.
	Category string `yaml:"category,omitempty"`
	// Aliases are other spellings of the same skill.
	Aliases StringOrArray `yaml:"aliases,omitempty"`
}

// Companies holds the company alias table.
type Companies struct {
	// Aliases maps an abbreviation to the names it may stand for.
	Aliases map[string]StringOrArray `yaml:"aliases,omitempty"`
}

// StringOrArray is a list of strings that can be written in YAML as a
// single string or as a sequence.
type StringOrArray []string

// CategoryNames returns the declared category names in order.
func (f *File) CategoryNames() []string {
	names := make([]string, 0, len(f.Categories))
	for _, c := range f.Categories {
		names = append(names, c.Name)
	}

	return names
}

// AliasKeys returns the company alias keys sorted.
func (c Companies) AliasKeys() []string {
	keys := make([]string, 0, len(c.Aliases))
	for k := range c.Aliases {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
