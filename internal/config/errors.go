package config

import (
	"fmt"

	"github.com/ZebulonRouseFrantzich/loadenv/internal/report"
)

// LoadError indicates a configuration file could not be read or parsed.
type LoadError struct {
	Filename string
	Cause    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load configuration .ini file '%s': %v", e.Filename, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Diagnostic renders the fatal message callers rely on when a
// configuration file is missing or malformed.
func (e *LoadError) Diagnostic() report.Message {
	return report.Message{
		Kind: report.KindError,
		Text: fmt.Sprintf("Unable to load configuration .ini file '%s'.", e.Filename),
	}
}

// UnknownSectionError indicates a requested section is missing from a
// successfully loaded file.
type UnknownSectionError struct {
	Filename string
	Section  string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section '%s' in '%s'", e.Section, e.Filename)
}

func (e *UnknownSectionError) Diagnostic() report.Message {
	return report.Message{
		Kind: report.KindError,
		Text: fmt.Sprintf("Unable to find section '%s' in '%s'.", e.Section, e.Filename),
	}
}
