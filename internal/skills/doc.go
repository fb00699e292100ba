// Package skills extracts recognized skill terms from free text against a
// controlled vocabulary and compares a resume with a job description.
//
// Key types:
//   - Vocabulary: compiled skill terms, longest-match-first extraction
//   - KeywordSet: skills found in one document, in first-occurrence order
//   - Matcher: computes MatchResult (score, existing/missing/extra skills)
//   - Ranker, CategoryWeights: order missing skills by importance
//
// Everything here is pure computation: no I/O, no shared mutable state.
package skills
