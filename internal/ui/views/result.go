package views

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"searchpanel/internal/domain"
)

const (
	folderGlyph = "▣"
	fileGlyph   = "≡"
	videoGlyph  = "▶"
	presenceDot = "●"
	cursorMark  = "›"
	ellipsis    = "…"
)

// RowHeight is the number of terminal lines a result occupies
const RowHeight = 2

// ResultRenderer handles rendering of search result rows
type ResultRenderer struct {
	styles    *Styles
	highlight bool
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles, highlight bool) *ResultRenderer {
	return &ResultRenderer{
		styles:    styles,
		highlight: highlight,
	}
}

// RenderResult renders a result as RowHeight lines no wider than width
func (r *ResultRenderer) RenderResult(result domain.SearchResult, isSelected bool, query string, width int) []string {
	marker := " "
	if isSelected {
		marker = r.styles.Prompt.Render(cursorMark)
	}

	icon := r.icon(result)
	badge := r.badge(result)

	// marker, space, icon, space, name, [space, badge]
	nameWidth := width - 2 - lipgloss.Width(icon) - 1
	if badge != "" {
		nameWidth -= lipgloss.Width(badge) + 1
	}
	name := truncate(result.Name, nameWidth)

	nameStyle := lipgloss.NewStyle()
	if isSelected {
		nameStyle = r.styles.SelectionBg.Bold(true)
	}
	if r.highlight && query != "" {
		name = highlightMatch(name, query, r.styles.Highlight, nameStyle)
	} else {
		name = nameStyle.Render(name)
	}

	title := marker + " " + icon + " " + name
	if badge != "" {
		title += " " + badge
	}

	indent := strings.Repeat(" ", 2+lipgloss.Width(icon)+1)
	details := truncate(Details(result), width-len(indent))

	return []string{title, indent + r.styles.Dim.Render(details)}
}

// icon returns the leading glyph of a row
func (r *ResultRenderer) icon(result domain.SearchResult) string {
	switch item := result.Item.(type) {
	case domain.Person:
		avatar := r.styles.Avatar.Render(Initials(result.Name))
		if item.Active {
			return avatar + r.styles.Presence.Render(presenceDot)
		}
		return avatar + " "
	case domain.Folder:
		return r.styles.Glyph.Render(folderGlyph)
	case domain.Video:
		return r.styles.Glyph.Render(videoGlyph)
	default:
		return r.styles.Glyph.Render(fileGlyph)
	}
}

// badge returns the file count badge of a folder
func (r *ResultRenderer) badge(result domain.SearchResult) string {
	folder, ok := result.Item.(domain.Folder)
	if !ok || folder.FileCount <= 0 {
		return ""
	}
	return r.styles.Badge.Render(fmt.Sprintf("%d Files", folder.FileCount))
}

// Details returns the plain second line of a row
func Details(result domain.SearchResult) string {
	switch item := result.Item.(type) {
	case domain.Person:
		return item.Subtitle
	case domain.Folder:
		return fmt.Sprintf("in %s • Edited %s", item.Location, item.Timestamp)
	case domain.File:
		return fmt.Sprintf("in %s • Edited %s", item.Location, item.Timestamp)
	case domain.Video:
		return fmt.Sprintf("in %s • Added %s", item.Location, item.Timestamp)
	}
	return ""
}

// Initials returns the upper-cased first rune of each word of name
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		first := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(first))
	}
	return b.String()
}

// truncate cuts s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// highlightMatch highlights the first case-insensitive occurrence of query in text
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	runes := []rune(text)
	needle := foldRunes(query)

	index := indexFold(runes, needle)
	if index == -1 {
		return normalStyle.Render(text)
	}

	// Split the text into parts
	before := string(runes[:index])
	match := string(runes[index : index+len(needle)])
	after := string(runes[index+len(needle):])

	// Render with appropriate styles
	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// foldRunes lower-cases s rune by rune, so the result has one rune per input rune
func foldRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// indexFold finds needle (already folded) in haystack by rune position
func indexFold(haystack, needle []rune) int {
	if len(needle) == 0 {
		return -1
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j, n := range needle {
			if unicode.ToLower(haystack[i+j]) != n {
				continue outer
			}
		}
		return i
	}
	return -1
}
