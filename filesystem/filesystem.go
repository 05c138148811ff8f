// Package filesystem routes every disk access through a swappable afero backend.
//
// Production code runs against the real OS filesystem. Tests call SetMemMapFs
// once in init and everything above this package stays oblivious.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// Set swaps in an arbitrary afero backend. Tests use this to exercise
// failure modes, e.g. wrapping the active backend in a read-only layer.
func Set(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	Set(afero.NewOsFs())
}

// SetMemMapFs swaps in a volatile in-memory backend for unit tests.
func SetMemMapFs() {
	Set(afero.NewMemMapFs())
}
