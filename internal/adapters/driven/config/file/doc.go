// Package file provides a TOML-backed implementation of the config
// store port. Configuration lives in a single user-editable file and is
// read once at startup; services receive resolved values at
// construction time.
package file
