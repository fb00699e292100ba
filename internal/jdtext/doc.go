// Package jdtext turns job description sources (HTML pages, markdown
// snapshots, pasted text) into plain text lines for skill extraction.
package jdtext
