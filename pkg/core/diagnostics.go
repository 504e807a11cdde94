package core

import "fmt"

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is a non-fatal finding produced during correction. The
// engine accumulates diagnostics in order instead of writing to a log
// sink; presentation is the caller's concern.
type Diagnostic struct {
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// diagnostics collects findings in the order they occur.
type diagnostics struct {
	list []Diagnostic
}

func (d *diagnostics) warnf(format string, args ...interface{}) {
	d.list = append(d.list, Diagnostic{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (d *diagnostics) infof(format string, args ...interface{}) {
	d.list = append(d.list, Diagnostic{
		Severity: SeverityInfo,
		Message:  fmt.Sprintf(format, args...),
	})
}
