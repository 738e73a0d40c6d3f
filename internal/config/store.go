package config

import (
	"gopkg.in/ini.v1"
)

// Store is a read-only view of one loaded .ini file. Immutable after
// Load returns.
type Store struct {
	filename string
	sections []*Section
	byName   map[string]*Section
}

// Section holds one named section's entries in file order.
type Section struct {
	name   string
	keys   []string
	values map[string]string
}

// Load reads and parses the .ini file at path.
func Load(path string) (*Store, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		AllowBooleanKeys:           true,
		SpaceBeforeInlineComment:   true,
	}, path)
	if err != nil {
		return nil, &LoadError{Filename: path, Cause: err}
	}

	store := &Store{
		filename: path,
		byName:   make(map[string]*Section),
	}
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		section := &Section{
			name:   sec.Name(),
			values: make(map[string]string),
		}
		for _, key := range sec.KeyStrings() {
			section.keys = append(section.keys, key)
			section.values[key] = sec.Key(key).Value()
		}
		store.sections = append(store.sections, section)
		store.byName[section.name] = section
	}
	return store, nil
}

// Filename returns the path the store was loaded from.
func (s *Store) Filename() string {
	return s.filename
}

// SectionNames returns all section names in file order.
func (s *Store) SectionNames() []string {
	names := make([]string, len(s.sections))
	for i, sec := range s.sections {
		names[i] = sec.name
	}
	return names
}

// Section returns the named section.
func (s *Store) Section(name string) (*Section, error) {
	sec, ok := s.byName[name]
	if !ok {
		return nil, &UnknownSectionError{Filename: s.filename, Section: name}
	}
	return sec, nil
}

// HasSection reports whether the named section exists.
func (s *Store) HasSection(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Name returns the section's name.
func (s *Section) Name() string {
	return s.name
}

// Keys returns the section's keys in file order.
func (s *Section) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Values returns the section's value blocks in key order. A key with no
// value contributes an empty string.
func (s *Section) Values() []string {
	values := make([]string, len(s.keys))
	for i, key := range s.keys {
		values[i] = s.values[key]
	}
	return values
}

// Value returns the value block for key, or an empty string when the
// key does not exist.
func (s *Section) Value(key string) string {
	return s.values[key]
}

// HasKey reports whether key exists in the section.
func (s *Section) HasKey(key string) bool {
	_, ok := s.values[key]
	return ok
}
