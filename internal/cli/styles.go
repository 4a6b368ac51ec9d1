package cli

import "github.com/charmbracelet/lipgloss"

// Styles contains the pre-configured lipgloss styles for table output.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
	OK     lipgloss.Style
	Warn   lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the ecmctl colour scheme.
func DefaultStyles() *Styles {
	return &Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CDD6F4")).Underline(true),
		Cell:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		OK:     lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}
