// Package cmd implements the command-line interface for fullbr115.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/viper"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/color"
	"github.com/wangjh9712/fullbr115/icon"
	"github.com/wangjh9712/fullbr115/key"
	"github.com/wangjh9712/fullbr115/media"
	"github.com/wangjh9712/fullbr115/style"
	"github.com/wangjh9712/fullbr115/util"
)

// printJSON writes v to stdout as indented JSON, keeping CJK text readable.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// wrapWidth resolves the column prose is wrapped at: the configured value,
// or the terminal width capped for readability when unset.
func wrapWidth() int {
	if width := viper.GetInt(key.CliWrapWidth); width > 0 {
		return width
	}

	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		return 80
	}

	return util.Min(width, 100)
}

// wrap reflows long prose such as overviews to the output width.
func wrap(text string) string {
	return wordwrap.String(text, wrapWidth())
}

// metaLine renders one catalog row for search and discover output.
func metaLine(index int, m *media.Meta) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%2d. %s", index+1, style.Bold(m.Title))

	if year := m.Year(); year != "" {
		b.WriteString(style.Faint(" (" + year + ")"))
	}

	if m.VoteAverage > 0 {
		b.WriteString(style.Fg(color.Yellow)(fmt.Sprintf(" ★%.1f", m.VoteAverage)))
	}

	b.WriteString(style.Faint(fmt.Sprintf("  %s/%d", m.Type, m.TMDBID)))

	return b.String()
}

// resultFooter summarizes a catalog page.
func resultFooter(result *media.SearchResult) string {
	return style.Faint(fmt.Sprintf(
		"page %d of %s",
		result.Page,
		util.Quantify(result.TotalResults, "result", "results"),
	))
}

// linkTag renders the resource link type as a colored badge.
func linkTag(linkType string) string {
	switch linkType {
	case media.Link115:
		return style.Tag(style.Base, style.Sapphire)("115")
	case media.LinkMagnet:
		return style.Tag(style.Base, style.Mauve)("magnet")
	case media.LinkEd2k:
		return style.Tag(style.Base, style.Peach)("ed2k")
	default:
		return style.Tag(style.Base, style.Surface)(linkType)
	}
}

// resourceLine renders one resource row for the list views.
func resourceLine(index int, r *media.Resource) string {
	parts := []string{fmt.Sprintf("%2d.", index+1), linkTag(r.LinkType), style.Bold(r.Title)}

	if size := r.Size.Human(); size != "" {
		parts = append(parts, style.Fg(color.Cyan)(size))
	}

	for _, attr := range []string{r.Resolution, r.Quality, r.Source} {
		if attr != "" {
			parts = append(parts, style.Faint(attr))
		}
	}

	if r.HasChineseSubtitle {
		parts = append(parts, style.Fg(color.Green)("中字"))
	}

	if r.CoverageTag != "" {
		parts = append(parts, style.Fg(style.WarningColor)(r.CoverageTag))
	}

	return strings.Join(parts, " ")
}

// printResources writes a resource list with a trailing count, or a friendly
// notice when there is nothing to show.
func printResources(resources []*media.Resource) {
	if len(resources) == 0 {
		fmt.Printf("%s no resources found\n", icon.Get(icon.Search))
		return
	}

	for i, r := range resources {
		fmt.Println(resourceLine(i, r))
	}

	fmt.Println(style.Faint(util.Quantify(len(resources), "resource", "resources")))
}

// entryIcon picks the listing icon for a share or drive entry.
func entryIcon(f *api.ShareFile) string {
	switch {
	case f.IsISO():
		return icon.Get(icon.Disc)
	case f.IsDir:
		return icon.Get(icon.Folder)
	default:
		return icon.Get(icon.File)
	}
}

// entryLine renders one share or drive entry with its size column.
func entryLine(f *api.ShareFile) string {
	name := f.Name
	if f.IsDir {
		name = style.Bold(name)
	}

	return fmt.Sprintf("%s %s  %s", entryIcon(f), name, style.Faint(f.Size.Human()))
}
