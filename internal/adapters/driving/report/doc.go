// Package report renders benchmark reports for the terminal (styled
// text via lipgloss) or for machines (JSON).
package report
