// Package match provides name normalization, Levenshtein distance calculation,
// acronym and alias helpers, and the fuzzy company-name matcher used to catch
// near-duplicate entities during data entry and bulk import.
//
// Key functions:
//   - Normalize: lowercase, alphanumeric-only projection used for comparisons
//   - NormalizeDocument: token-preserving normalization for free text
//   - Levenshtein: computes edit distance between strings
//   - Acronym, AliasTable: abbreviation helpers
//   - NameMatcher.Find: decides whether a typed name refers to a known entity
//   - NameMatcher.Suggest: ranks known entities by similarity
package match
