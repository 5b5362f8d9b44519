package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Sink receives conversion messages. Implementations must not panic.
type Sink interface {
	Log(message string)
	Warn(message string)
}

// Diagnostics holds all messages reported during a conversion.
// It implements Sink; a zero value is ready to use.
type Diagnostics struct {
	Entries []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is an optional identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
}

// Severity represents the severity level of a diagnostic.
type Severity int

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
)

// Log records an informational message.
func (d *Diagnostics) Log(message string) {
	d.AddInfo("", message)
}

// Warn records a warning.
func (d *Diagnostics) Warn(message string) {
	d.AddWarning("", message)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string) {
	d.Entries = append(d.Entries, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string) {
	d.Entries = append(d.Entries, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
	})
}

// Warnings returns the warning messages in the order they were reported.
func (d *Diagnostics) Warnings() []string {
	var out []string

	for _, e := range d.Entries {
		if e.Severity == SeverityWarning {
			out = append(out, e.Message)
		}
	}

	return out
}

// Infos returns the informational messages in the order they were reported.
func (d *Diagnostics) Infos() []string {
	var out []string

	for _, e := range d.Entries {
		if e.Severity == SeverityInfo {
			out = append(out, e.Message)
		}
	}

	return out
}

// HasWarnings returns true if any warning was reported.
func (d *Diagnostics) HasWarnings() bool {
	for _, e := range d.Entries {
		if e.Severity == SeverityWarning {
			return true
		}
	}

	return false
}

// Merge appends the entries of another Diagnostics instance to this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Entries = append(d.Entries, other.Entries...)
}

// Reset drops every collected entry.
func (d *Diagnostics) Reset() {
	d.Entries = nil
}

// Error returns a combined error from all warnings, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasWarnings() {
		return nil
	}

	var parts []string

	for _, e := range d.Entries {
		if e.Severity == SeverityWarning {
			parts = append(parts, e.String())
		}
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	return d.Severity.String() + ": " + msg
}

// Discard is a Sink dropping every message.
var Discard Sink = discard{}

type discard struct{}

func (discard) Log(string)  {}
func (discard) Warn(string) {}

// Tee returns a Sink forwarding every message to all the given sinks.
func Tee(sinks ...Sink) Sink {
	var out tee

	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}

	return out
}

type tee []Sink

func (t tee) Log(message string) {
	for _, s := range t {
		s.Log(message)
	}
}

func (t tee) Warn(message string) {
	for _, s := range t {
		s.Warn(message)
	}
}

// OrDiscard returns s, or Discard when s is nil.
func OrDiscard(s Sink) Sink {
	if s == nil {
		return Discard
	}

	return s
}
