package match

import (
	"sort"
	"strings"
)

// Acronym builds the abbreviation of a multi-word name from the first letter
// of each space or hyphen separated word.
// Single-word names have no acronym and return "".
// Examples:
//   - "Tata Consultancy Services" -> "tcs"
//   - "Hewlett-Packard" -> "hp"
//   - "Microsoft" -> ""
func Acronym(name string) string {
	words := Words(name)
	if len(words) < 2 {
		return ""
	}

	var result strings.Builder

	for _, w := range words {
		for _, r := range w {
			result.WriteRune(r)

			break
		}
	}

	return result.String()
}

// AliasTable maps common abbreviations to the normalized full names they may
// refer to (e.g. "cts" -> ["cognizanttechnologysolutions", "cognizant"]).
// It is immutable once built and safe for concurrent use.
type AliasTable struct {
	// groups maps a normalized key to the set of its normalized targets.
	groups map[string]map[string]struct{}
	// owners maps a normalized target to the keys listing it.
	owners map[string][]string
}

// NewAliasTable builds an alias table, normalizing keys and targets.
// Entries whose key or target normalizes to "" are dropped; targets equal to
// their own key are ignored.
func NewAliasTable(entries map[string][]string) AliasTable {
	t := AliasTable{
		groups: make(map[string]map[string]struct{}, len(entries)),
		owners: make(map[string][]string),
	}

	for rawKey, rawTargets := range entries {
		key := Normalize(rawKey)
		if key == "" {
			continue
		}

		group, ok := t.groups[key]
		if !ok {
			group = make(map[string]struct{}, len(rawTargets))
			t.groups[key] = group
		}

		for _, rawTarget := range rawTargets {
			target := Normalize(rawTarget)
			if target == "" || target == key {
				continue
			}

			if _, dup := group[target]; dup {
				continue
			}

			group[target] = struct{}{}
			t.owners[target] = append(t.owners[target], key)
		}
	}

	for target := range t.owners {
		sort.Strings(t.owners[target])
	}

	return t
}

// Len returns the number of abbreviation keys.
func (t AliasTable) Len() int {
	return len(t.groups)
}

// Targets returns the sorted normalized names listed under key.
func (t AliasTable) Targets(key string) []string {
	group := t.groups[Normalize(key)]
	if len(group) == 0 {
		return nil
	}

	out := make([]string, 0, len(group))
	for target := range group {
		out = append(out, target)
	}

	sort.Strings(out)

	return out
}

// Related reports whether two already-normalized names belong to the same
// alias group. The lookup is bidirectional:
//   - a is a key whose targets contain b;
//   - b is a key whose targets contain a;
//   - a and b are both targets of the same key.
func (t AliasTable) Related(a, b string) bool {
	if a == "" || b == "" || len(t.groups) == 0 {
		return false
	}

	if t.lists(a, b) || t.lists(b, a) {
		return true
	}

	for _, key := range t.owners[a] {
		if _, ok := t.groups[key][b]; ok {
			return true
		}
	}

	return false
}

func (t AliasTable) lists(key, target string) bool {
	group, ok := t.groups[key]
	if !ok {
		return false
	}

	_, ok = group[target]

	return ok
}
