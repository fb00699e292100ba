// Package diagnostic provides structured errors, warnings and infos for
// matching table validation.
//
// Each diagnostic carries a stable code (for example "duplicate_skill" or
// "unknown_category"), the table section it relates to and the offending
// entry, so the CLI can print them and tests can assert on codes.
package diagnostic
