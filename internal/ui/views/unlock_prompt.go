// internal/ui/views/unlock_prompt.go

package views

import (
	"errors"
	"fmt"
	"strings"

	"sshVaultSync/internal/ui"
	"sshVaultSync/internal/ui/messages"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UnlockPromptModel to widok pytający o hasło główne magazynu.
type UnlockPromptModel struct {
	input        textinput.Model
	vaultName    string
	errorMessage string
	password     string
	cancelled    bool
	width        int
	height       int
}

// NewUnlockPromptModel tworzy widok odblokowania dla danego magazynu.
func NewUnlockPromptModel(vaultName string) *UnlockPromptModel {
	input := textinput.New()
	input.Placeholder = "Enter master password"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &UnlockPromptModel{
		input:     input,
		vaultName: vaultName,
	}
}

func (m *UnlockPromptModel) Init() tea.Cmd {
	return textinput.Blink // Migający kursor w polu hasła
}

func (m *UnlockPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case messages.PasswordEnteredMsg:
		m.password = string(msg)
		return m, tea.Quit

	case messages.PromptCancelledMsg:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			password := m.input.Value()
			if len(password) == 0 {
				m.errorMessage = "Password cannot be empty"
				return m, nil
			}

			// Wyczyść ekran i przekaż hasło
			return m, tea.Sequence(
				tea.ClearScreen,
				func() tea.Msg {
					return messages.PasswordEnteredMsg(password)
				},
			)

		case tea.KeyEsc, tea.KeyCtrlC:
			return m, func() tea.Msg {
				return messages.PromptCancelledMsg{}
			}
		}

		// Obsługa wprowadzania tekstu
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *UnlockPromptModel) View() string {
	// ASCII Art
	asciiArt := `
         _
 ___ ___| |_ _ _ _____
|_ -|_ -|   | | |_ -_|
|___|___|_|_|\_/|___|
     vault -> ssh config`

	asciiArtRendered := ui.TitleStyle.Render(asciiArt)

	// Informacja o magazynie
	vaultInfo := ui.InfoStyle.Render(fmt.Sprintf("Vault %q is locked", m.vaultName))
	escInfo := ui.InfoStyle.Render("Press ESC to abort")

	// Pytanie o hasło
	passwordPrompt := ui.PromptStyle.Render("Master password: ")
	maskedPassword := strings.Repeat("*", len(m.input.Value()))

	// Połączenie wszystkich elementów
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		asciiArtRendered,
		"",
		vaultInfo,
		escInfo,
		"",
		passwordPrompt+maskedPassword,
	)

	// Komunikat o błędzie, jeśli istnieje
	if m.errorMessage != "" {
		content += "\n" + ui.ErrorStyle.Render(m.errorMessage)
	}

	framedContent := ui.FrameStyle.Render(content)

	// Wyśrodkowanie zawartości
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		framedContent,
	)
}

// Password zwraca wpisane hasło główne.
func (m *UnlockPromptModel) Password() string {
	return m.password
}

// Cancelled sprawdza czy użytkownik przerwał widok.
func (m *UnlockPromptModel) Cancelled() bool {
	return m.cancelled
}

// PromptMasterPassword uruchamia widok odblokowania i zwraca wpisane hasło.
func PromptMasterPassword(vaultName string) (string, error) {
	model := NewUnlockPromptModel(vaultName)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running unlock prompt: %v", err)
	}

	m := finalModel.(*UnlockPromptModel)
	if m.Cancelled() {
		return "", errors.New("unlock cancelled")
	}
	return m.Password(), nil
}
