package styles

// Nerd Font glyphs used by the editor.
var (
	IconType   = ""
	IconFile   = ""
	IconDirty  = "●"
	IconCursor = "┃"

	IconNotifyInfo    = ""
	IconNotifyWarning = ""
	IconNotifyError   = ""
)
