package ui

import (
	"fmt"
	"io"
	"strings"

	bubblekey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"

	"searchpanel/internal/ui/input/types"
)

// helpSection is a titled group of bindings in the help page
type helpSection struct {
	title    string
	bindings []helpEntry
}

type helpEntry struct {
	keys string
	desc string
}

func binding(b bubblekey.Binding, desc string) helpEntry {
	return helpEntry{keys: strings.Join(b.Keys(), ", "), desc: desc}
}

func helpSections() []helpSection {
	k := types.Keys
	return []helpSection{
		{"Query", []helpEntry{
			{"any text", "Type to filter results by name"},
			binding(k.Clear, "Clear the query"),
			binding(k.Up, "Move up"),
			binding(k.Down, "Move down"),
			binding(k.PageUp, "Page up"),
			binding(k.PageDown, "Page down"),
			binding(k.Home, "First result"),
			binding(k.End, "Last result"),
		}},
		{"Tabs", []helpEntry{
			binding(k.NextTab, "Next tab"),
			binding(k.PrevTab, "Previous tab"),
			binding(k.TabAll, "All"),
			binding(k.TabFiles, "Files"),
			binding(k.TabPeople, "People"),
		}},
		{"Settings", []helpEntry{
			binding(k.Settings, "Open or close the settings popover"),
			binding(k.SettingsUp, "Previous toggle"),
			binding(k.SettingsDown, "Next toggle"),
			binding(k.Toggle, "Toggle the focused row"),
			binding(k.ToggleFiles, "Toggle files"),
			binding(k.TogglePeople, "Toggle people"),
			{"any other key", "Close the popover"},
		}},
		{"Mouse", []helpEntry{
			{"click", "Select a tab, Clear, the gear, a toggle or a result"},
			{"click outside", "Close the popover"},
			{"wheel", "Scroll results"},
		}},
		{"Other", []helpEntry{
			binding(k.Help, "Show this help"),
			binding(k.Quit, "Quit"),
			binding(k.ForceQuit, "Quit from any mode"),
		}},
	}
}

// HelpMarkdown returns the key reference as markdown
func HelpMarkdown() string {
	var b strings.Builder
	b.WriteString("# searchpanel help\n\n")
	b.WriteString("Chats and lists are not available yet; their toggles do nothing.\n")
	for _, section := range helpSections() {
		fmt.Fprintf(&b, "\n## %s\n\n", section.title)
		b.WriteString("| Key | Action |\n|---|---|\n")
		for _, e := range section.bindings {
			fmt.Fprintf(&b, "| `%s` | %s |\n", e.keys, e.desc)
		}
	}
	return b.String()
}

// RenderHelp renders the help markdown for a terminal of the given width
func RenderHelp(width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create help renderer: %w", err)
	}
	out, err := r.Render(HelpMarkdown())
	if err != nil {
		return "", fmt.Errorf("failed to render help: %w", err)
	}
	return out, nil
}

// pagerCommand shows content in the ov pager. ov opens the terminal itself,
// so the standard streams handed over by bubbletea are ignored.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// Run takes over the terminal until the pager exits
func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showHelp returns a command that suspends the program and pages the help
func showHelp(width int) tea.Cmd {
	content, err := RenderHelp(width)
	if err != nil {
		return func() tea.Msg { return helpPagerMsg{err: err} }
	}
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
