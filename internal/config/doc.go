// Package config provides read-only access to loadenv's .ini
// configuration files as ordered sections of ordered key/value pairs.
//
// The files use Python configparser conventions: section headers in
// square brackets, keys optionally followed by ':' or '=', and
// indented continuation lines forming multi-line value blocks. Parsing
// is delegated to gopkg.in/ini.v1; this package only pins the access
// contract the rest of loadenv relies on:
//
//   - Section order and key order match the file, always.
//   - A key with no value yields an empty value block.
//   - An unreadable or unparseable file fails with a LoadError that
//     carries the offending filename.
//
// Callers must never assume map iteration order anywhere; the ordered
// accessors on Store and Section are the only way through.
package config
