package keyword

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/ZebulonRouseFrantzich/loadenv/internal/config"
)

// Resolver turns one build name into a qualified environment name for
// one system. Construction loads the system's section and validates
// its aliases; the qualified name itself is computed on first call to
// QualifiedEnvName and memoized. Resolver instances are independent
// and safe to discard after use.
type Resolver struct {
	buildName string // normalized
	system    string
	filename  string
	index     *AliasIndex

	qualified string
	resolved  bool
}

// NewResolver builds a Resolver over an already-loaded supported-envs
// store. Alias integrity violations surface here, before any matching
// is attempted.
func NewResolver(buildName, system string, store *config.Store) (*Resolver, error) {
	sec, err := store.Section(system)
	if err != nil {
		return nil, err
	}
	idx, err := BuildAliasIndex(system, sec)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		buildName: normalize(buildName),
		system:    system,
		filename:  store.Filename(),
		index:     idx,
	}, nil
}

// NewResolverFromFile is a convenience wrapper that loads the
// supported-envs file at path first.
func NewResolverFromFile(buildName, system, path string) (*Resolver, error) {
	store, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return NewResolver(buildName, system, store)
}

// BuildName returns the normalized build name under resolution.
func (r *Resolver) BuildName() string {
	return r.buildName
}

// EnvNames returns the system's entry names in configuration order.
func (r *Resolver) EnvNames() []string {
	return r.index.EntryNames()
}

// Aliases returns the system's aliases in configuration order.
func (r *Resolver) Aliases() []string {
	return r.index.Aliases()
}

// EnvNameForAlias returns the entry name owning alias.
func (r *Resolver) EnvNameForAlias(alias string) (string, error) {
	entry, ok := r.index.Owner(alias)
	if !ok {
		return "", &UnknownAliasError{System: r.system, Alias: alias}
	}
	return entry, nil
}

// QualifiedEnvName resolves the build name to "{system}-{entry-name}".
// The result is computed once and cached; repeated calls return the
// cached value without re-running validation.
func (r *Resolver) QualifiedEnvName() (string, error) {
	if r.resolved {
		return r.qualified, nil
	}

	matched, viaAlias, err := r.matchEntryName()
	if err != nil {
		return "", err
	}
	if viaAlias != "" {
		slog.Info("matched alias in build name",
			"alias", viaAlias, "build_name", r.buildName, "env_name", matched)
	} else {
		slog.Info("matched environment name in build name",
			"env_name", matched, "build_name", r.buildName)
	}

	extras := r.SupportedEnvsListing()
	if err := checkVersions(r.index, matched, r.buildName, extras); err != nil {
		return "", err
	}
	if err := checkNodeType(r.index, matched, r.buildName, extras); err != nil {
		return "", err
	}

	r.qualified = r.system + "-" + matched
	r.resolved = true
	return r.qualified, nil
}

// matchEntryName finds the entry name the build name refers to, either
// directly or through an alias. Entry names take precedence: when any
// entry name matches, aliases are never consulted.
func (r *Resolver) matchEntryName() (entry, viaAlias string, err error) {
	if name, ok := matchLongest(r.buildName, r.index.EntryNames()); ok {
		return name, "", nil
	}

	alias, ok := matchLongest(r.buildName, r.index.Aliases())
	if !ok {
		return "", "", &NotFoundError{
			System:    r.system,
			BuildName: r.buildName,
			Extras:    r.SupportedEnvsListing(),
		}
	}

	entry, err = r.EnvNameForAlias(alias)
	if err != nil {
		return "", "", err
	}
	return entry, alias, nil
}

// SupportedEnvsListing renders the supported-environments help text
// appended to diagnostics: every entry name for the system with its
// aliases, both sorted alphabetically.
func (r *Resolver) SupportedEnvsListing() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("- Supported Environments for '" + r.system + "':\n")

	names := r.index.EntryNames()
	sort.Strings(names)
	for _, name := range names {
		b.WriteString("  - " + name + "\n")
		aliases := r.index.AliasesFor(name)
		sort.Strings(aliases)
		if len(aliases) > 0 {
			b.WriteString("    * Aliases:\n")
		}
		for _, alias := range aliases {
			b.WriteString("      - " + alias + "\n")
		}
	}

	b.WriteString("\nSee " + r.filename + " for details.")
	return b.String()
}
