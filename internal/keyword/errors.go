package keyword

import (
	"fmt"
	"strings"

	"github.com/ZebulonRouseFrantzich/loadenv/internal/report"
)

// AliasIntegrityError indicates the alias listing for a system violates
// one of the alias invariants: duplicate aliases, an alias equal to an
// entry name, or an alias containing whitespace. All offenders are
// aggregated before the error is built.
type AliasIntegrityError struct {
	System    string
	Message   string
	Offenders []string
}

func (e *AliasIntegrityError) Error() string {
	return fmt.Sprintf("alias integrity violation for '%s': %s %v",
		e.System, e.Message, e.Offenders)
}

func (e *AliasIntegrityError) Diagnostic() report.Message {
	return report.ForList(report.KindError, e.Message, e.Offenders)
}

func duplicateAliasError(system string, offenders []string) *AliasIntegrityError {
	return &AliasIntegrityError{
		System:    system,
		Message:   fmt.Sprintf("Aliases for '%s' contains duplicates:", system),
		Offenders: offenders,
	}
}

func aliasMatchesEntryNameError(system string, offenders []string) *AliasIntegrityError {
	return &AliasIntegrityError{
		System: system,
		Message: fmt.Sprintf(
			"Alias found for '%s' that matches an environment name:", system),
		Offenders: offenders,
	}
}

func aliasWhitespaceError(system string, offenders []string) *AliasIntegrityError {
	message := "The following alias contains whitespace:"
	if len(offenders) > 1 {
		message = "The following aliases contain whitespace:"
	}
	return &AliasIntegrityError{
		System:    system,
		Message:   message,
		Offenders: offenders,
	}
}

// NotFoundError indicates the build name matched no entry name and no
// alias for the system.
type NotFoundError struct {
	System    string
	BuildName string
	Extras    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no environment name or alias for '%s' found in build name '%s'",
		e.System, e.BuildName)
}

func (e *NotFoundError) Diagnostic() report.Message {
	return report.Message{
		Kind: report.KindError,
		Text: fmt.Sprintf(
			"Unable to find alias or environment name for system '%s' in\nkeyword string '%s'.",
			e.System, e.BuildName),
		Extras: e.Extras,
	}
}

// UnsupportedVersionError indicates the build name requests a
// package/version combination no supported environment offers.
type UnsupportedVersionError struct {
	System     string
	Components []string
	Extras     string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported component versions for '%s': %v",
		e.System, e.Components)
}

func (e *UnsupportedVersionError) Diagnostic() report.Message {
	quoted := make([]string, len(e.Components))
	for i, c := range e.Components {
		quoted[i] = "'" + c + "'"
	}

	var text string
	if len(quoted) == 1 {
		text = quoted[0] + " is not supported."
	} else {
		text = strings.Join(quoted[:len(quoted)-1], ", ") + " and " +
			quoted[len(quoted)-1] + " are not supported together."
	}
	return report.Message{Kind: report.KindError, Text: text, Extras: e.Extras}
}

// UnsupportedNodeTypeError indicates the build name requests a node
// type the matched environment's variants do not offer. CUDA reports
// whether the matched environment is CUDA-based, where node types do
// not apply at all.
type UnsupportedNodeTypeError struct {
	System    string
	Requested string
	Supported []string
	Base      string
	CUDA      bool
	Extras    string
}

func (e *UnsupportedNodeTypeError) Error() string {
	if e.CUDA {
		return fmt.Sprintf("node type '%s' requested for CUDA environment on '%s'",
			e.Requested, e.System)
	}
	return fmt.Sprintf("unsupported node type '%s' for '%s'", e.Requested, e.Base)
}

func (e *UnsupportedNodeTypeError) Diagnostic() report.Message {
	if e.CUDA {
		return report.Message{
			Kind:   report.KindError,
			Text:   "The 'serial' and 'openmp' node types are not applicable to CUDA environments.",
			Extras: e.Extras,
		}
	}

	quoted := make([]string, len(e.Supported))
	for i, nt := range e.Supported {
		quoted[i] = "'" + nt + "'"
	}
	var offered string
	if len(quoted) == 1 {
		offered = fmt.Sprintf("the %s node type is", quoted[0])
	} else {
		offered = fmt.Sprintf("the %s node types are", strings.Join(quoted, " and "))
	}
	return report.Message{
		Kind: report.KindError,
		Text: fmt.Sprintf(
			"'%s' was specified in the build name, but only %s supported for '%s'.",
			e.Requested, offered, e.Base),
		Extras: e.Extras,
	}
}

// UnknownAliasError indicates a matched alias could not be traced back
// to an owning entry name. Given the AliasIndex invariants this should
// be unreachable; it signals a defect, not user error.
type UnknownAliasError struct {
	System string
	Alias  string
}

func (e *UnknownAliasError) Error() string {
	return fmt.Sprintf("alias '%s' missing from alias index for '%s'", e.Alias, e.System)
}

func (e *UnknownAliasError) Diagnostic() report.Message {
	return report.Message{
		Kind: report.KindError,
		Text: fmt.Sprintf("Unable to find alias '%s' in aliases for '%s'.",
			e.Alias, e.System),
	}
}
