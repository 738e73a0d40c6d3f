// Package report renders the bordered diagnostic blocks that loadenv
// prints for fatal conditions.
//
// Every fatal message uses the same frame: a top and bottom rule of '='
// characters as wide as the longest body line, with each body line
// prefixed by '|'. Downstream tooling greps these blocks for specific
// substrings, so the layout is a contract, not a cosmetic choice.
package report

import "strings"

// Message kinds. Anything goes, but these cover every message loadenv
// produces today.
const (
	KindError   = "ERROR"
	KindWarning = "WARNING"
	KindInfo    = "INFO"
)

// Message is a renderable diagnostic block.
type Message struct {
	// Kind is the tag shown on the first line (ERROR, WARNING, ...).
	// Empty defaults to ERROR.
	Kind string

	// Text is the primary message. It may span multiple lines;
	// continuation lines are aligned under the first line's text.
	Text string

	// Extras is an optional section appended after the message,
	// typically a listing of supported names. Rendered verbatim, one
	// body line per input line.
	Extras string
}

// Diagnostic is implemented by errors that carry a renderable fatal
// message. The CLI boundary renders the message and terminates; nothing
// else in the codebase prints these blocks.
type Diagnostic interface {
	Diagnostic() Message
}

// ForList builds a Message whose extras enumerate items one per line,
// each prefixed with "- ".
func ForList(kind, text string, items []string) Message {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	return Message{Kind: kind, Text: text, Extras: b.String()}
}

// String renders the bordered block, including the trailing newline.
func (m Message) String() string {
	kind := m.Kind
	if kind == "" {
		kind = KindError
	}

	var body []string
	indent := strings.Repeat(" ", len(kind)+3)
	for i, line := range splitLines(m.Text) {
		if i == 0 {
			body = append(body, "|   "+kind+":  "+line)
		} else {
			body = append(body, "|   "+indent+line)
		}
	}
	for _, line := range splitLines(m.Extras) {
		body = append(body, "|   "+line)
	}

	width := 0
	for i, line := range body {
		body[i] = strings.TrimRight(line, " ")
		if len(body[i]) > width {
			width = len(body[i])
		}
	}

	rule := strings.Repeat("=", width)
	return rule + "\n" + strings.Join(body, "\n") + "\n" + rule + "\n"
}

// splitLines splits s into lines, dropping a single trailing newline so
// that "a\nb\n" yields ["a", "b"]. An empty string yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
