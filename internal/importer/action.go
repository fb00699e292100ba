package importer

import "strings"

//go:generate go tool stringer -type=Action -trimprefix=Action -output=action_string.go

// Action is what the importer did with one input name.
type Action int

const (
	// ActionSkipped means the input was blank after normalization.
	ActionSkipped Action = iota
	// ActionMatched means the input resolved to a known company.
	ActionMatched
	// ActionCreated means a new company was stored.
	ActionCreated
	// ActionStaged means a new company would be stored (dry run).
	ActionStaged
)

// MarshalText renders the action as a lowercase word for JSON output.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(a.String())), nil
}
