// Package project persists the user's full working configuration (chosen
// operation, input/output files, and both settings bags) as a versioned JSON
// file.
//
// Loading is deliberately forgiving. A file that no longer decodes strictly
// (older schema, future fields, a hand-edited value of the wrong type) is
// rebuilt from defaults plus whatever fields can be salvaged, field by field,
// from the untyped document. Only a file that is not JSON at all fails to
// load. This trades strictness for availability so that already-deployed
// project files keep opening across releases; keep the recognized-field lists
// in salvage.go in sync with the settings structs when fields are added.
package project
