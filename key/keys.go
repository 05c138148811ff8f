// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 16

// Server Connection - these keys locate the fullbr115 backend this client talks to.
const (
	ServerURL = "server.url"
)

// Resource Discovery - these keys set the default filters applied to resource listings.
const (
	ResourcesSourceType    = "resources.source_type"
	ResourcesRequireZh     = "resources.require_zh"
	ResourcesMinResolution = "resources.min_resolution"
)

// 115 Drive Interaction - these keys govern save-to-cloud and passcode handling.
const (
	DriveFolderTemplate    = "drive.iso_folder_template"
	DriveRememberPasscodes = "drive.remember_passcodes"
)

// Discovery Catalog - these keys tune the discover/search browsing defaults.
const (
	DiscoverSortBy   = "discover.sort_by"
	DiscoverMinVotes = "discover.min_votes"
)

// Search Interaction - these keys define the UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of CLI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern general command behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliWrapWidth    = "cli.wrap_width"
)
