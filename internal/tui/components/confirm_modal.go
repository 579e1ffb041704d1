package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/kvdoc/internal/core/styles"
)

var (
	confirmYes = key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "yes"))
	confirmNo  = key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no"))
)

type answer int

const (
	unanswered answer = iota
	answeredYes
	answeredNo
)

// ConfirmModal asks a yes/no question. Every other key is ignored.
type ConfirmModal struct {
	title    string
	question string
	answer   answer
}

// NewConfirmModal returns an unanswered modal.
func NewConfirmModal(title, question string) ConfirmModal {
	return ConfirmModal{title: title, question: question}
}

// Update records the answer from a key press.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(k, confirmYes):
			m.answer = answeredYes
		case key.Matches(k, confirmNo):
			m.answer = answeredNo
		}
	}
	return m, nil
}

// View renders the modal box.
func (m ConfirmModal) View() string {
	return styles.ModalStyle.Render(
		styles.ModalTitleStyle.Render(m.title) + "\n\n" +
			styles.ConfirmMessageStyle.Render(m.question) + "\n" +
			styles.TextPrimaryBoldStyle.Render("Continue? (y/n)"),
	)
}

// Overlay centers the modal over background.
func (m ConfirmModal) Overlay(background string, width, height int) string {
	return Overlay(background, m.View(), width, height)
}

// Confirmed reports a yes answer.
func (m ConfirmModal) Confirmed() bool { return m.answer == answeredYes }

// Cancelled reports a no answer.
func (m ConfirmModal) Cancelled() bool { return m.answer == answeredNo }
