package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().
			Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")) // Roxo

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{
			Light: "#A49FA5",
			Dark:  "#777777",
		})

	stageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{
			Light: "#04B575",
			Dark:  "#04B575",
		}) // Verde

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9")) // Vermelho

	// resumo impresso no stdout
	summaryLabelStyle = lipgloss.NewStyle().
				Bold(true)
	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")) // Azul
)
