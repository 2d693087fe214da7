// Package settings defines the typed encoding option model: the closed set of
// supported operations, the video and audio settings bags, and their defaults.
//
// Settings values are plain data. Every field of a settings bag produced by
// DefaultVideoSettings or DefaultAudioSettings is populated with a usable
// value ("auto" or an equivalent sentinel where the encoder should decide),
// so downstream code never needs to null-check individual options. Validation
// is deliberately absent here; the compat package owns codec and container
// legality.
package settings
