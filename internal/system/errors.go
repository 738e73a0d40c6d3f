package system

import (
	"fmt"

	"github.com/ZebulonRouseFrantzich/loadenv/internal/report"
)

// UnknownSystemError indicates neither the hostname nor the build name
// identified a supported system.
type UnknownSystemError struct {
	Hostname string
	Filename string
}

func (e *UnknownSystemError) Error() string {
	return fmt.Sprintf("no system found for hostname '%s' or the build name", e.Hostname)
}

func (e *UnknownSystemError) Diagnostic() report.Message {
	return report.Message{
		Kind: report.KindError,
		Text: fmt.Sprintf(
			"Unable to find valid system name in the build name or for the hostname '%s'\n in '%s'.",
			e.Hostname, e.Filename),
	}
}

// MismatchError indicates the hostname resolved to one system while the
// build name named another, and --force was not given.
type MismatchError struct {
	Hostname        string
	HostSystem      string
	RequestedSystem string
	Filename        string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("hostname '%s' matched system '%s' but build name specified '%s'",
		e.Hostname, e.HostSystem, e.RequestedSystem)
}

func (e *MismatchError) Diagnostic() report.Message {
	return report.Message{
		Kind: report.KindError,
		Text: fmt.Sprintf(
			"Hostname '%s' matched to system '%s'\n in '%s', but you specified '%s' in the build name.\nIf you want to force the use of '%s', add the --force flag.",
			e.Hostname, e.HostSystem, e.Filename, e.RequestedSystem, e.RequestedSystem),
	}
}

// AmbiguousSystemError indicates the build name contains the names of
// more than one supported system.
type AmbiguousSystemError struct {
	Matches []string
}

func (e *AmbiguousSystemError) Error() string {
	return fmt.Sprintf("build name matches multiple systems: %v", e.Matches)
}

func (e *AmbiguousSystemError) Diagnostic() report.Message {
	return report.ForList(report.KindError,
		"Cannot specify more than one system name in the build name\nYou specified",
		e.Matches)
}

// BadPatternError indicates a hostname key in the supported-systems
// file is not a valid regular expression.
type BadPatternError struct {
	Filename string
	System   string
	Pattern  string
	Cause    error
}

func (e *BadPatternError) Error() string {
	return fmt.Sprintf("invalid hostname pattern '%s' for system '%s' in '%s': %v",
		e.Pattern, e.System, e.Filename, e.Cause)
}

func (e *BadPatternError) Unwrap() error {
	return e.Cause
}

func (e *BadPatternError) Diagnostic() report.Message {
	return report.Message{
		Kind: report.KindError,
		Text: fmt.Sprintf("Invalid hostname pattern '%s' for system '%s'\nin '%s'.",
			e.Pattern, e.System, e.Filename),
	}
}
