package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/kvdoc/internal/core/document"
	"github.com/colonyops/kvdoc/internal/core/styles"
	"github.com/colonyops/kvdoc/internal/tui/jsoncolor"
)

// typeRow is one entry in the type list.
type typeRow struct {
	name  string
	pairs int
}

// DocView is a two-column document browser: filterable type list (left) +
// colorized JSON of the whole document (right). The list cursor mirrors the
// session's current type.
type DocView struct {
	rows   []typeRow
	cursor int
	width  int
	height int
	offset int // scroll offset for type list

	previewLines  []string
	previewOffset int // scroll offset for preview pane

	filtering bool
	filter    string
	filtered  []int // indices into rows matching filter
}

// NewDocView creates a new document view.
func NewDocView() *DocView {
	return &DocView{
		filtered: make([]int, 0),
	}
}

// SetDocument refreshes both panes from doc and places the cursor on
// current. An empty current leaves the cursor where the filter allows.
func (v *DocView) SetDocument(doc *document.Document, current string) {
	v.rows = v.rows[:0]
	for _, name := range doc.Types() {
		b, _ := doc.Bucket(name)
		v.rows = append(v.rows, typeRow{name: name, pairs: b.Len()})
	}
	v.applyFilter()
	v.Select(current)

	data, err := doc.Serialize()
	if err != nil {
		v.previewLines = []string{styles.TextErrorStyle.Render(err.Error())}
	} else {
		colorized := jsoncolor.ColorizeDocument(data, current)
		v.previewLines = strings.Split(strings.TrimRight(colorized, "\n"), "\n")
	}
	v.clampPreview()
}

// Select moves the cursor onto name when it is visible.
func (v *DocView) Select(name string) {
	for i, idx := range v.filtered {
		if v.rows[idx].name == name {
			v.cursor = i
			v.clampOffset()
			return
		}
	}
	if v.cursor >= len(v.filtered) {
		v.cursor = max(len(v.filtered)-1, 0)
	}
	v.clampOffset()
}

// SetSize sets the viewport dimensions.
func (v *DocView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.clampOffset()
	v.clampPreview()
}

// SelectedType returns the type under the cursor, or empty if none.
func (v *DocView) SelectedType() string {
	if len(v.filtered) == 0 {
		return ""
	}
	return v.rows[v.filtered[v.cursor]].name
}

// MoveUp moves the cursor up in the type list.
func (v *DocView) MoveUp() {
	if v.cursor > 0 {
		v.cursor--
		v.clampOffset()
	}
}

// MoveDown moves the cursor down in the type list.
func (v *DocView) MoveDown() {
	if v.cursor < len(v.filtered)-1 {
		v.cursor++
		v.clampOffset()
	}
}

// ScrollPreviewUp scrolls the JSON preview up.
func (v *DocView) ScrollPreviewUp() {
	if v.previewOffset > 0 {
		v.previewOffset--
	}
}

// ScrollPreviewDown scrolls the JSON preview down.
func (v *DocView) ScrollPreviewDown() {
	if v.previewOffset < v.maxPreviewOffset() {
		v.previewOffset++
	}
}

// StartFilter begins filtering mode.
func (v *DocView) StartFilter() {
	v.filtering = true
}

// IsFiltering returns whether the view is in filter mode.
func (v *DocView) IsFiltering() bool {
	return v.filtering
}

// AddFilterRune adds a character to the filter.
func (v *DocView) AddFilterRune(r rune) {
	v.setFilter(v.filter + string(r))
}

// DeleteFilterRune removes the last character from the filter.
func (v *DocView) DeleteFilterRune() {
	if v.filter == "" {
		return
	}
	runes := []rune(v.filter)
	v.setFilter(string(runes[:len(runes)-1]))
}

// ConfirmFilter exits filtering mode, keeping the filter active.
func (v *DocView) ConfirmFilter() {
	v.filtering = false
}

// CancelFilter clears the filter and exits filtering mode.
func (v *DocView) CancelFilter() {
	v.filtering = false
	v.setFilter("")
}

func (v *DocView) setFilter(f string) {
	v.filter = f
	v.applyFilter()
	v.cursor = 0
	v.offset = 0
}

// View renders the two-column layout.
func (v *DocView) View() string {
	if v.width < 20 || v.height < 3 {
		return ""
	}

	// Layout: type list (25%) | divider (1) | preview (remaining)
	listWidth := max(int(float64(v.width)*0.25), 18)
	previewWidth := max(v.width-listWidth-1, 10)

	contentHeight := max(v.height-1, 1)

	leftPane := v.renderTypeList(listWidth, contentHeight)
	rightPane := v.renderPreview(previewWidth, contentHeight)
	divider := v.renderDivider(contentHeight)

	return joinColumns(leftPane, divider, rightPane, contentHeight) + "\n" + v.renderHelp()
}

func (v *DocView) renderTypeList(width, height int) []string {
	lines := make([]string, 0, height)

	header := fmt.Sprintf("  Types (%d)", len(v.rows))
	lines = append(lines, styles.TextMutedStyle.Render(truncateOrPad(header, width)))

	if v.filtering || v.filter != "" {
		filterLine := styles.TextPrimaryStyle.Render("/ ") + v.filter
		if v.filtering {
			filterLine += styles.TextMutedStyle.Render("▎")
		}
		lines = append(lines, truncateOrPad(filterLine, width))
	}

	listHeight := max(height-len(lines), 1)

	if len(v.rows) == 0 {
		lines = append(lines, truncateOrPad(styles.TextMutedStyle.Render("  press t to add a type"), width))
	}

	for i := v.offset; i < len(v.filtered) && i < v.offset+listHeight; i++ {
		row := v.rows[v.filtered[i]]
		count := fmt.Sprintf(" %d", row.pairs)
		nameWidth := max(width-3-len(count), 1)

		var line string
		if i == v.cursor {
			line = styles.TextPrimaryStyle.Render(styles.IconCursor+" ") +
				styles.TextForegroundBoldStyle.Render(ansi.Truncate(row.name, nameWidth, "…"))
		} else {
			line = "  " + styles.TextMutedStyle.Render(ansi.Truncate(row.name, nameWidth, "…"))
		}
		line = truncateOrPad(line, width-len(count)) + styles.TextSurfaceStyle.Render(count)
		lines = append(lines, truncateOrPad(line, width))
	}

	emptyLine := strings.Repeat(" ", width)
	for len(lines) < height {
		lines = append(lines, emptyLine)
	}
	return lines
}

func (v *DocView) renderPreview(width, height int) []string {
	lines := make([]string, 0, height)
	emptyLine := strings.Repeat(" ", width)

	for i := v.previewOffset; i < len(v.previewLines) && len(lines) < height; i++ {
		lines = append(lines, truncateOrPad("  "+v.previewLines[i], width))
	}

	for len(lines) < height {
		lines = append(lines, emptyLine)
	}
	return lines
}

func (v *DocView) renderDivider(height int) []string {
	lines := make([]string, height)
	divChar := styles.TextMutedStyle.Render("│")
	for i := range lines {
		lines[i] = divChar
	}
	return lines
}

func (v *DocView) renderHelp() string {
	if v.filtering {
		return styles.HelpBarStyle.Render("type to filter • enter keep • esc clear")
	}
	return styles.HelpBarStyle.Render("↑/↓ type • t type • a pair • b batch • S sort • s save • o open • ? help • q quit")
}

func (v *DocView) maxPreviewOffset() int {
	return max(len(v.previewLines)-max(v.height-1, 1), 0)
}

func (v *DocView) clampPreview() {
	v.previewOffset = min(v.previewOffset, v.maxPreviewOffset())
}

func (v *DocView) visibleLines() int {
	reserved := 2 // header + help
	if v.filtering || v.filter != "" {
		reserved++
	}
	return max(v.height-reserved, 1)
}

func (v *DocView) clampOffset() {
	visible := v.visibleLines()
	total := len(v.filtered)
	if v.cursor < v.offset {
		v.offset = v.cursor
	} else if v.cursor >= v.offset+visible {
		v.offset = v.cursor - visible + 1
	}
	if v.offset > total-visible {
		v.offset = total - visible
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v *DocView) applyFilter() {
	v.filtered = v.filtered[:0]
	lower := strings.ToLower(v.filter)
	for i, row := range v.rows {
		if v.filter == "" || strings.Contains(strings.ToLower(row.name), lower) {
			v.filtered = append(v.filtered, i)
		}
	}
}

// joinColumns merges line arrays horizontally.
func joinColumns(left, mid, right []string, height int) string {
	var b strings.Builder
	for i := 0; i < height; i++ {
		if i < len(left) {
			b.WriteString(left[i])
		}
		if i < len(mid) {
			b.WriteString(mid[i])
		}
		if i < len(right) {
			b.WriteString(right[i])
		}
		if i < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func truncateOrPad(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "…")
	}
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
