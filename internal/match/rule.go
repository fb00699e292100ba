package match

import "strings"

//go:generate go tool stringer -type=Rule -trimprefix=Rule -output=rule_string.go

// Rule identifies which name-matching rule produced a match.
// Rules are evaluated in declaration order; the first one that fires wins.
type Rule int

const (
	// RuleNone means no rule matched.
	RuleNone Rule = iota
	// RuleExact means the normalized names are equal.
	RuleExact
	// RuleAcronym means one name is the acronym of the other.
	RuleAcronym
	// RuleContainment means one normalized name contains the other.
	RuleContainment
	// RuleAlias means the alias table links the two names.
	RuleAlias
	// RuleEditDistance means the names are within the bounded edit distance.
	RuleEditDistance
)

// MarshalText renders the rule as a lowercase word for JSON/YAML output.
func (r Rule) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(r.String())), nil
}
