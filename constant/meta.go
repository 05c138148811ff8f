// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Fullbr115 is the canonical application identifier used for filesystem paths and CLI branding.
	Fullbr115 = "fullbr115"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent identifies this client on requests to the fullbr115 server.
	UserAgent = Fullbr115 + "/" + Version

	// Repository is the GitHub repository the version checker polls for releases.
	Repository = "wangjh9712/fullbr115"

	// TMDBBase is the public TMDB site root used when opening a title in the browser.
	TMDBBase = "https://www.themoviedb.org"
)

// Build metadata, overridden at link time by the release pipeline.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
