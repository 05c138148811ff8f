// Package icon renders the status and entry symbols used across command output.
//
// Every symbol is defined in five variants (emoji, nerd-font glyphs, plain
// ASCII, kaomoji and Unicode squares); the active variant is chosen through
// configuration.
package icon

import (
	"github.com/spf13/viper"

	"github.com/wangjh9712/fullbr115/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the identifiers accepted by the icons variant setting.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef holds one symbol in every supported variant.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders the given icon in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
