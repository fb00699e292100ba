// Package registry stores the known companies and their alias hints in
// SQLite. It is the source of candidate entities for the fuzzy name
// matcher; the matcher itself never touches storage.
package registry
