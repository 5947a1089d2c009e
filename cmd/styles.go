// ABOUTME: Shared lipgloss styles for human-readable CLI output
// ABOUTME: Defines the color palette and text styles used across commands

package cmd

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#7C3AED") // Purple
	green   = lipgloss.Color("#10B981")
	amber   = lipgloss.Color("#F59E0B")
	gray    = lipgloss.Color("#6B7280")
	blue    = lipgloss.Color("#3B82F6")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	labelStyle = lipgloss.NewStyle().
			Foreground(gray)

	costStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(green)

	spotStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(amber)

	noteStyle = lipgloss.NewStyle().
			Foreground(blue)
)
