package constant

import _ "embed"

// AsciiArtLogo is the banner printed by the root command, loaded at compile time.
//
//go:embed ascii.txt
var AsciiArtLogo string
