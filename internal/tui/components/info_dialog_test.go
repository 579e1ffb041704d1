package components

import (
	"fmt"
	"strings"
	"testing"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/kvdoc/pkg/tuitest"
)

func documentSections() []InfoSection {
	return []InfoSection{
		{
			Title: "File",
			Items: []InfoItem{
				{Label: "Path", Value: "data.json"},
				{Label: "Saved", Value: "yes", Status: InfoStatusPass},
				{Label: "Disk", Value: "changed externally", Status: InfoStatusWarn},
				{Label: "Strict", Value: "rejected", Status: InfoStatusFail},
			},
		},
		{Title: "Types", Items: []InfoItem{{Label: "colors", Value: "3 pairs"}}},
	}
}

func TestInfoDialog_Render(t *testing.T) {
	d := NewInfoDialog("Document", documentSections(), "1 type, 3 pairs", "esc close", 120, 40)
	out := tuitest.StripANSI(d.Overlay("bg", 120, 40))

	for _, want := range []string{"Document", "File", "data.json", "colors", "1 type, 3 pairs", "esc close", "✔", "●", "✘"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "%)", "short content has no scroll indicator")
}

func TestInfoDialog_AlignsValues(t *testing.T) {
	d := NewInfoDialog("Document", documentSections(), "", "", 120, 40)
	out := tuitest.StripANSI(d.Overlay("", 120, 40))

	col := func(value string) int {
		for _, line := range strings.Split(out, "\n") {
			if i := strings.Index(line, value); i >= 0 {
				return lipgloss.Width(line[:i])
			}
		}
		return -1
	}
	require.NotEqual(t, -1, col("data.json"))
	assert.Equal(t, col("data.json"), col("rejected"))
	assert.Equal(t, col("data.json"), col("3 pairs"))
}

func TestInfoDialog_Scroll(t *testing.T) {
	items := make([]InfoItem, 50)
	for i := range items {
		items[i] = InfoItem{Label: fmt.Sprintf("type-%02d", i), Value: "0 pairs"}
	}
	d := NewInfoDialog("Types", []InfoSection{{Items: items}}, "", "", 70, 18)

	before := tuitest.StripANSI(d.Overlay("", 70, 18))
	assert.Contains(t, before, "(0%)")
	assert.Contains(t, before, "type-00")

	d.ScrollDown()
	after := tuitest.StripANSI(d.Overlay("", 70, 18))
	assert.NotContains(t, after, "type-00")

	d.ScrollUp()
	assert.Equal(t, before, tuitest.StripANSI(d.Overlay("", 70, 18)))
}
