package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"jobmatch/internal/common"
)

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Section is the table section ("skills", "categories", "companies").
	Section string
	// Entry identifies the offending entry within the section (if any).
	Entry string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, section, entry string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, section, entry))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, section, entry string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, section, entry))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, section, entry string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, section, entry))
}

func newDiagnostic(severity DiagnosticSeverity, code, message, section, entry string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Section:  section,
		Entry:    entry,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns every diagnostic, errors first, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Codes returns the codes of all diagnostics in All order.
func (d *Diagnostics) Codes() []string {
	all := d.All()

	codes := make([]string, len(all))
	for i, diag := range all {
		codes[i] = diag.Code
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Section != "" {
		prefix = append(prefix, "["+d.Section+"]")
	}

	if d.Entry != "" {
		prefix = append(prefix, d.Entry)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
