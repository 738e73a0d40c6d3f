// Package keyword resolves a user-supplied build name into a fully
// qualified environment name.
//
// A build name is a short keyword string such as "intel-19-openmp".
// Resolution matches it against the entry names and aliases that the
// supported-envs configuration lists for one system, then validates
// the version and node-type components it mentions against the full
// set of environments supported on that system. The result is
// "{system}-{entry-name}".
//
// Matching order is a documented contract, pinned by tests:
//
//  1. Entry names are tried before aliases. If any entry name matches,
//     aliases are never consulted.
//  2. Within each list, longer strings are tried before shorter ones,
//     so "intel-19" wins over "intel". Equal lengths keep their
//     configuration order.
//  3. A string matches when it occurs as a substring of the build name
//     after underscores are normalized to hyphens.
//
// Nothing here terminates the process. Every fatal condition is a
// typed error carrying a report.Diagnostic; the CLI boundary decides
// how to print it and exit.
package keyword
