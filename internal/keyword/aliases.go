package keyword

import (
	"strings"
	"unicode"

	"github.com/ZebulonRouseFrantzich/loadenv/internal/config"
)

// AliasIndex maps alias strings to the entry name that owns them,
// derived from one system's section of the supported-envs file.
// Immutable once built.
type AliasIndex struct {
	system  string
	entries []string            // normalized entry names, configuration order
	aliases []string            // normalized aliases, first-seen order
	owner   map[string]string   // alias -> owning entry name
	byEntry map[string][]string // entry name -> its aliases, listing order
}

// BuildAliasIndex extracts and validates the aliases in sec. Each
// non-blank, non-comment line of an entry's value block is one alias.
// Underscores are normalized to hyphens in both entry names and
// aliases.
//
// Three invariants are enforced, each aggregating every offender
// before failing:
//
//   - no alias may appear more than once across the section,
//   - no alias may equal an entry name in the section,
//   - no alias may contain whitespace (checked before normalization).
func BuildAliasIndex(system string, sec *config.Section) (*AliasIndex, error) {
	idx := &AliasIndex{
		system:  system,
		owner:   make(map[string]string),
		byEntry: make(map[string][]string),
	}

	var whitespace []string
	for _, key := range sec.Keys() {
		entry := normalize(key)
		idx.entries = append(idx.entries, entry)

		for _, line := range strings.Split(sec.Value(key), "\n") {
			raw := strings.TrimSpace(stripInlineComment(line))
			if raw == "" {
				continue
			}
			if strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
				whitespace = append(whitespace, raw)
				continue
			}
			alias := normalize(raw)
			idx.aliases = append(idx.aliases, alias)
			if _, taken := idx.owner[alias]; !taken {
				idx.owner[alias] = entry
			}
			idx.byEntry[entry] = append(idx.byEntry[entry], alias)
		}
	}

	if len(whitespace) > 0 {
		return nil, aliasWhitespaceError(system, whitespace)
	}
	if dups := duplicates(idx.aliases); len(dups) > 0 {
		return nil, duplicateAliasError(system, dups)
	}
	if hits := intersection(idx.aliases, idx.entries); len(hits) > 0 {
		return nil, aliasMatchesEntryNameError(system, hits)
	}
	return idx, nil
}

// System returns the system the index was built for.
func (idx *AliasIndex) System() string {
	return idx.system
}

// EntryNames returns the normalized entry names in configuration order.
func (idx *AliasIndex) EntryNames() []string {
	return append([]string(nil), idx.entries...)
}

// Aliases returns all normalized aliases in first-seen order.
func (idx *AliasIndex) Aliases() []string {
	return append([]string(nil), idx.aliases...)
}

// Owner returns the entry name an alias belongs to.
func (idx *AliasIndex) Owner(alias string) (string, bool) {
	entry, ok := idx.owner[alias]
	return entry, ok
}

// AliasesFor returns the aliases listed under entry, in listing order.
func (idx *AliasIndex) AliasesFor(entry string) []string {
	return append([]string(nil), idx.byEntry[entry]...)
}

// normalize replaces underscores with hyphens. Build names, entry
// names, and aliases are all compared in this normalized form.
func normalize(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// stripInlineComment removes everything from the first unescaped '#'
// to the end of the line, then unescapes any remaining "\#".
func stripInlineComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == '#' && (i == 0 || line[i-1] != '\\') {
			line = line[:i]
			break
		}
	}
	return strings.ReplaceAll(line, `\#`, "#")
}

// duplicates returns each value occurring more than once in list,
// once per value, in first-seen order.
func duplicates(list []string) []string {
	counts := make(map[string]int, len(list))
	for _, v := range list {
		counts[v]++
	}
	var dups []string
	seen := make(map[string]bool)
	for _, v := range list {
		if counts[v] > 1 && !seen[v] {
			dups = append(dups, v)
			seen[v] = true
		}
	}
	return dups
}

// intersection returns the members of list that also occur in other,
// preserving list order.
func intersection(list, other []string) []string {
	in := make(map[string]bool, len(other))
	for _, v := range other {
		in[v] = true
	}
	var hits []string
	for _, v := range list {
		if in[v] {
			hits = append(hits, v)
		}
	}
	return hits
}
