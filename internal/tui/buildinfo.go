package tui

// BuildInfo holds build-time metadata for display in the TUI.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Label returns a short version string, or "" when no version is known.
func (b BuildInfo) Label() string {
	if b.Version == "" {
		return ""
	}
	if len(b.Commit) > 7 {
		return b.Version + " (" + b.Commit[:7] + ")"
	}
	if b.Commit != "" {
		return b.Version + " (" + b.Commit + ")"
	}
	return b.Version
}
