package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/kvdoc/internal/tui/components"
)

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding
	Filter        key.Binding
	AddType       key.Binding
	AddPair       key.Binding
	Batch         key.Binding
	Sort          key.Binding
	Save          key.Binding
	Load          key.Binding
	Info          key.Binding
	Notifications key.Binding
	Dismiss       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous type")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next type")),
		ScrollUp:      key.NewBinding(key.WithKeys("shift+up", "pgup", "K"), key.WithHelp("pgup/K", "scroll preview up")),
		ScrollDown:    key.NewBinding(key.WithKeys("shift+down", "pgdown", "J"), key.WithHelp("pgdn/J", "scroll preview down")),
		Filter:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter types")),
		AddType:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "add type")),
		AddPair:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add pair to current type")),
		Batch:         key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "batch add pairs")),
		Sort:          key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sort keys in every type")),
		Save:          key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Load:          key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open file")),
		Info:          key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "document info")),
		Notifications: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notification history")),
		Dismiss:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss toast")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func helpEntries(bindings ...key.Binding) []components.HelpEntry {
	entries := make([]components.HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		entries = append(entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return entries
}

// helpSections groups the bindings for the help dialog.
func (k keyMap) helpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		{Title: "Navigate", Entries: helpEntries(k.Up, k.Down, k.ScrollUp, k.ScrollDown, k.Filter)},
		{Title: "Edit", Entries: helpEntries(k.AddType, k.AddPair, k.Batch, k.Sort)},
		{Title: "File", Entries: helpEntries(k.Save, k.Load, k.Info)},
		{Title: "General", Entries: helpEntries(k.Notifications, k.Dismiss, k.Help, k.Quit)},
	}
}
