package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"objc-codegen/internal/common"
)

// Diagnostics holds all diagnostics collected while building one file.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypeName identifies the generated type this relates to (if any).
	TypeName string
	// Attribute identifies which attribute this relates to (if any).
	Attribute string
	// Plugin is the name of the plugin that reported it. Filled in by the host.
	Plugin string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
// The zero value is DiagnosticError, so a diagnostic built without a
// severity counts as an error.
type DiagnosticSeverity int

const (
	DiagnosticError DiagnosticSeverity = iota
	DiagnosticWarning
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// NewError returns an error diagnostic.
func NewError(code, message, typeName, attribute string) Diagnostic {
	return Diagnostic{
		Severity:  DiagnosticError,
		Code:      code,
		Message:   message,
		TypeName:  typeName,
		Attribute: attribute,
	}
}

// Add files diag under its severity. Anything that is not a warning is
// filed as an error.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == DiagnosticWarning {
		d.Warnings = append(d.Warnings, diag)
		return
	}

	d.Errors = append(d.Errors, diag)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// IsValid returns true if there are no diagnostics at all. A warning
// returned from a validation hook still blocks the file.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0 && len(d.Warnings) == 0
}

// Error returns a combined error from all diagnostics, errors first, or nil
// if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	for _, w := range d.Warnings {
		parts = append(parts, w.Severity.String()+" "+w.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Plugin != "" {
		prefix = append(prefix, "("+d.Plugin+")")
	}

	if d.TypeName != "" {
		prefix = append(prefix, "["+d.TypeName+"]")
	}

	if d.Attribute != "" {
		prefix = append(prefix, d.Attribute)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
