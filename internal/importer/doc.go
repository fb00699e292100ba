// Package importer de-duplicates typed company names against the registry
// during bulk import: each name either resolves to a known company or
// becomes a new one.
package importer
