// Package config owns the world height configuration shared by the editor and
// the host process.
//
// The configuration is stored as hand-editable JSON in
// ~/.worldheight/increased-world-height.json (see ResolvePath for the
// environment overrides). Every value read from disk or passed to a setter is
// clamped into its allowed range; the floor is locked at -64 and cannot be
// changed. Store methods are safe for concurrent use and never fail in a way
// that leaves the store without a usable configuration.
package config
