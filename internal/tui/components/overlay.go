package components

import lipgloss "charm.land/lipgloss/v2"

// Overlay draws box centered on top of background, clamped to the top-left
// corner when it is larger than the screen.
func Overlay(background, box string, width, height int) string {
	layer := lipgloss.NewLayer(box)
	layer.X(max((width-lipgloss.Width(box))/2, 0)).
		Y(max((height-lipgloss.Height(box))/2, 0)).
		Z(1)
	return lipgloss.NewCompositor(lipgloss.NewLayer(background), layer).Render()
}
