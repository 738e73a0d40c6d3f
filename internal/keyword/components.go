package keyword

import "strings"

// Node-type tokens. Environments either end in one of these or, for
// CUDA-based environments, carry none at all.
const (
	nodeTypeSerial = "serial"
	nodeTypeOpenMP = "openmp"
)

// component is one versioned package token of an entry name or build
// name, e.g. {family: "intel", version: "19.0.4"} or {family: "hsw"}.
type component struct {
	family  string
	version string
}

func (c component) String() string {
	if c.version == "" {
		return c.family
	}
	return c.family + "-" + c.version
}

// isVersionToken reports whether a dash-delimited token is a version,
// i.e. a non-empty sequence of digits and dots starting with a digit.
func isVersionToken(tok string) bool {
	if tok == "" || tok[0] < '0' || tok[0] > '9' {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] != '.' && (tok[i] < '0' || tok[i] > '9') {
			return false
		}
	}
	return true
}

// parseComponents decomposes a hyphen-delimited name into components.
// A version token attaches to the family token before it, so
// "intel-19.0.4-mpich-7.7.6-hsw-openmp" yields intel-19.0.4,
// mpich-7.7.6, hsw, and openmp.
func parseComponents(name string) []component {
	var comps []component
	for _, tok := range strings.Split(name, "-") {
		if tok == "" {
			continue
		}
		if isVersionToken(tok) && len(comps) > 0 && comps[len(comps)-1].version == "" {
			comps[len(comps)-1].version = tok
			continue
		}
		if !isVersionToken(tok) {
			comps = append(comps, component{family: tok})
		}
	}
	return comps
}

// findFamily locates family as a whole token of s (bounded by string
// edges or hyphens) and returns the version token that immediately
// follows it, if any. The second result reports whether the family was
// found at all.
func findFamily(s, family string) (version string, found bool) {
	for start := 0; start < len(s); {
		i := strings.Index(s[start:], family)
		if i < 0 {
			return "", false
		}
		i += start
		end := i + len(family)

		boundedLeft := i == 0 || s[i-1] == '-'
		boundedRight := end == len(s) || s[end] == '-'
		if !boundedLeft || !boundedRight {
			start = i + 1
			continue
		}

		if end < len(s) {
			rest := s[end+1:]
			tok := rest
			if j := strings.IndexByte(rest, '-'); j >= 0 {
				tok = rest[:j]
			}
			if isVersionToken(tok) {
				return tok, true
			}
		}
		return "", true
	}
	return "", false
}

// extractComponents pulls from buildName the components whose families
// appear in matchedEntry, in the entry's component order. Tokens of the
// build name that are not families of the matched entry (build-type
// qualifiers, embedded system names, and so on) are ignored.
func extractComponents(matchedEntry, buildName string) []component {
	var comps []component
	for _, ec := range parseComponents(matchedEntry) {
		version, found := findFamily(buildName, ec.family)
		if !found {
			continue
		}
		comps = append(comps, component{family: ec.family, version: version})
	}
	return comps
}

// versionSatisfies reports whether a candidate version is satisfied by
// an entry's version for the same family. An omitted candidate version
// matches anything. A stated candidate version matches when its
// dot-separated segments are a prefix of the entry's segments, so
// "19" matches "19.0.4" but "7.2" does not match "7.7.15". A stated
// version never matches a version-less entry component.
func versionSatisfies(entryVersion, candidateVersion string) bool {
	if candidateVersion == "" {
		return true
	}
	if entryVersion == "" {
		return false
	}
	want := strings.Split(candidateVersion, ".")
	have := strings.Split(entryVersion, ".")
	if len(want) > len(have) {
		return false
	}
	for i := range want {
		if want[i] != have[i] {
			return false
		}
	}
	return true
}

// entrySupports reports whether entry offers every component in comps
// simultaneously.
func entrySupports(entry string, comps []component) bool {
	entryComps := parseComponents(entry)
	for _, c := range comps {
		ok := false
		for _, ec := range entryComps {
			if ec.family == c.family && versionSatisfies(ec.version, c.version) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// checkVersions is validation pass one: every versioned component the
// build name states must be offered, in combination, by at least one of
// the system's supported entries. The search spans the full entry list,
// not just the matched entry, so a build name may legitimately pin a
// different variant's versions. On failure every versioned component is
// reported together.
func checkVersions(idx *AliasIndex, matchedEntry, buildName, extras string) error {
	var versioned []component
	for _, c := range extractComponents(matchedEntry, buildName) {
		if c.version != "" {
			versioned = append(versioned, c)
		}
	}
	if len(versioned) == 0 {
		return nil
	}

	for _, entry := range idx.entries {
		if entrySupports(entry, versioned) {
			return nil
		}
	}

	names := make([]string, len(versioned))
	for i, c := range versioned {
		names[i] = c.String()
	}
	return &UnsupportedVersionError{
		System:     idx.system,
		Components: names,
		Extras:     extras,
	}
}

// checkNodeType is validation pass two: a serial/openmp token in the
// build name must be offered by the matched entry's family of variants
// (entries identical up to the trailing node-type token). CUDA-based
// environments offer no node-type distinction at all, so requesting
// one is itself the unsupported condition.
func checkNodeType(idx *AliasIndex, matchedEntry, buildName, extras string) error {
	requested := requestedNodeTypes(buildName)
	if len(requested) == 0 {
		return nil
	}

	if isCUDA(matchedEntry) {
		return &UnsupportedNodeTypeError{
			System:    idx.system,
			Requested: requested[0],
			CUDA:      true,
			Extras:    extras,
		}
	}

	base := stripNodeType(matchedEntry)
	var supported []string
	for _, entry := range idx.entries {
		if stripNodeType(entry) != base {
			continue
		}
		if nt := nodeTypeOf(entry); nt != "" && !contains(supported, nt) {
			supported = append(supported, nt)
		}
	}

	for _, nt := range requested {
		if !contains(supported, nt) {
			return &UnsupportedNodeTypeError{
				System:    idx.system,
				Requested: nt,
				Supported: supported,
				Base:      base,
				Extras:    extras,
			}
		}
	}
	return nil
}

// requestedNodeTypes returns the node-type tokens present in the build
// name, serial before openmp.
func requestedNodeTypes(buildName string) []string {
	var requested []string
	for _, nt := range []string{nodeTypeSerial, nodeTypeOpenMP} {
		if _, found := findFamily(buildName, nt); found {
			requested = append(requested, nt)
		}
	}
	return requested
}

// nodeTypeOf returns the entry's trailing node-type token, or "".
func nodeTypeOf(entry string) string {
	for _, nt := range []string{nodeTypeSerial, nodeTypeOpenMP} {
		if entry == nt || strings.HasSuffix(entry, "-"+nt) {
			return nt
		}
	}
	return ""
}

// stripNodeType removes the trailing node-type token from an entry
// name, yielding the base shared by the entry's variants.
func stripNodeType(entry string) string {
	if nt := nodeTypeOf(entry); nt != "" {
		return strings.TrimSuffix(strings.TrimSuffix(entry, nt), "-")
	}
	return entry
}

// isCUDA reports whether the entry is a CUDA-based environment.
func isCUDA(entry string) bool {
	for _, c := range parseComponents(entry) {
		if c.family == "cuda" {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
