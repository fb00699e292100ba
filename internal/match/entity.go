package match

import (
	"errors"
	"strings"
)

// ErrEmptyEntityName is returned by Entity.Validate for blank names.
var ErrEmptyEntityName = errors.New("entity name is empty")

// Entity is a known company (or other named record) a typed name can be
// matched against. Callers own the list; the matcher never mutates it.
type Entity struct {
	// ID is the caller's identifier (database key, slug). Optional.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// Name is the canonical display name. Required.
	Name string `json:"name" yaml:"name"`
	// Aliases are alternative spellings known for this entity
	// (former names, ticker symbols). Optional.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Validate checks the entity at the matcher boundary.
func (e Entity) Validate() error {
	if Normalize(e.Name) == "" {
		return ErrEmptyEntityName
	}

	return nil
}

// names returns the canonical name followed by the aliases, paired with
// their normalized forms, skipping blanks and duplicates.
func (e Entity) names() []candidateName {
	out := make([]candidateName, 0, 1+len(e.Aliases))
	seen := make(map[string]struct{}, 1+len(e.Aliases))

	for _, raw := range append([]string{e.Name}, e.Aliases...) {
		n := Normalize(raw)
		if n == "" {
			continue
		}

		if _, ok := seen[n]; ok {
			continue
		}

		seen[n] = struct{}{}
		out = append(out, candidateName{raw: raw, norm: n})
	}

	return out
}

// String returns the display name.
func (e Entity) String() string {
	return strings.TrimSpace(e.Name)
}
