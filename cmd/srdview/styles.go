package main

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#7A2E1D")
	mutedColor  = lipgloss.Color("#6B7280")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	keyStyle     = lipgloss.NewStyle().Width(24)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)
