package config

import (
	"fmt"
	"strings"
)

// Severity ranks a Finding.
type Severity int

const (
	// SeverityNotice marks data that was dropped while normalizing.
	SeverityNotice Severity = iota
	// SeverityWarning marks declarations that were ignored, such as a bad
	// extends target.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "notice"
}

// MarshalText renders the severity by name in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name written by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "notice":
		*s = SeverityNotice
	case "warning":
		*s = SeverityWarning
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// Finding is one thing the loader dropped or ignored.
type Finding struct {
	Tool     string   `json:"tool"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Issues   []string `json:"issues,omitempty"`
}

func (f Finding) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", f.Tool, f.Message)
	for _, issue := range f.Issues {
		sb.WriteString("\n    ")
		sb.WriteString(issue)
	}
	return sb.String()
}

// Report collects findings in the order they were made.
type Report struct {
	Findings []Finding `json:"findings"`
}

func (r *Report) notice(tool, message string, issues ...string) {
	r.Findings = append(r.Findings, Finding{Tool: tool, Severity: SeverityNotice, Message: message, Issues: issues})
}

func (r *Report) warn(tool, message string, issues ...string) {
	r.Findings = append(r.Findings, Finding{Tool: tool, Severity: SeverityWarning, Message: message, Issues: issues})
}

// Merge appends other's findings to r.
func (r *Report) Merge(other Report) {
	r.Findings = append(r.Findings, other.Findings...)
}

// Notices returns the notice findings.
func (r Report) Notices() []Finding {
	return r.filter(SeverityNotice)
}

// Warnings returns the warning findings.
func (r Report) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

// HasWarnings reports whether any warning was recorded.
func (r Report) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

func (r Report) filter(severity Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == severity {
			out = append(out, f)
		}
	}
	return out
}
