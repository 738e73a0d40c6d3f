package system

import (
	"context"
	"regexp"
	"strings"

	"github.com/ZebulonRouseFrantzich/loadenv/internal/config"
)

// FromHostname matches hostname against the regular-expression keys of
// each section of the supported-systems store, in file order, and
// returns the first section name with a matching key. The second
// result is false when nothing matches.
//
// Keys are treated as regular expressions after inline comments are
// stripped; a key that fails to compile is a configuration error.
func FromHostname(hostname string, store *config.Store) (string, bool, error) {
	for _, name := range store.SectionNames() {
		sec, err := store.Section(name)
		if err != nil {
			return "", false, err
		}
		for _, key := range sec.Keys() {
			pattern := strings.TrimSpace(stripComment(key))
			if pattern == "" {
				continue
			}
			re, err := regexp.Compile(pattern)
			if err != nil {
				return "", false, &BadPatternError{
					Filename: store.Filename(),
					System:   name,
					Pattern:  pattern,
					Cause:    err,
				}
			}
			if re.MatchString(hostname) {
				return name, true, nil
			}
		}
	}
	return "", false, nil
}

// FromBuildName finds any section name of the supported-systems store
// that occurs as a substring of buildName. No match returns ("",
// false, nil); more than one match is fatal, since the requested
// system would be ambiguous.
func FromBuildName(buildName string, store *config.Store) (string, bool, error) {
	var matches []string
	for _, name := range store.SectionNames() {
		if strings.Contains(buildName, name) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return "", false, nil
	case 1:
		return matches[0], true, nil
	default:
		return "", false, &AmbiguousSystemError{Matches: matches}
	}
}

// Determine resolves the target system from the hostname and the build
// name together:
//
//   - only the hostname matches: use it.
//   - only the build name names a system: use it.
//   - both agree: use it.
//   - both disagree: fatal unless force is set, in which case the
//     build name wins.
//   - neither: fatal.
func Determine(ctx context.Context, det Detector, store *config.Store, buildName string, force bool) (string, error) {
	hostname, err := det.Hostname(ctx)
	if err != nil {
		return "", err
	}

	fromHost, hostOK, err := FromHostname(hostname, store)
	if err != nil {
		return "", err
	}
	fromBuild, buildOK, err := FromBuildName(buildName, store)
	if err != nil {
		return "", err
	}

	if !hostOK && !buildOK {
		return "", &UnknownSystemError{Hostname: hostname, Filename: store.Filename()}
	}
	if !buildOK {
		return fromHost, nil
	}
	if hostOK && fromHost != fromBuild && !force {
		return "", &MismatchError{
			Hostname:        hostname,
			HostSystem:      fromHost,
			RequestedSystem: fromBuild,
			Filename:        store.Filename(),
		}
	}
	return fromBuild, nil
}

// stripComment removes everything from the first '#' to the end of the
// key. Hostname patterns never contain a literal '#'.
func stripComment(key string) string {
	if i := strings.IndexByte(key, '#'); i >= 0 {
		return key[:i]
	}
	return key
}
