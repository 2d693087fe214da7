// Package preset supplies the catalog of named encoding presets and their
// persistence.
//
// Built-in presets are code-defined and returned in stable display order;
// applying one overwrites both settings bags wholesale, which is the intended
// "reset to exactly this preset" semantic. Custom presets round-trip through
// single-preset JSON files with no salvage: a malformed custom preset file is
// a hard error, unlike project files. Validation delegates to the compat
// oracle and collects warnings instead of failing.
package preset
