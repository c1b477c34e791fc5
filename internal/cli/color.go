package cli

import "github.com/charmbracelet/lipgloss"

// Cargo/rustc-inspired palette, ANSI 256 for broad terminal support.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleNote    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleHelp    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleCode    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	stylePipe    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleHeader  = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// paint applies a style unless colors are disabled.
func paint(style lipgloss.Style, s string) string {
	if !EnableColors() {
		return s
	}
	return style.Render(s)
}

// Error styles an error label.
func Error(s string) string { return paint(styleError, s) }

// Warning styles a warning label.
func Warning(s string) string { return paint(styleWarning, s) }

// Note styles a note label.
func Note(s string) string { return paint(styleNote, s) }

// Help styles a help label.
func Help(s string) string { return paint(styleHelp, s) }

// Success styles a success message.
func Success(s string) string { return paint(styleSuccess, s) }

// Info styles informational text.
func Info(s string) string { return paint(styleInfo, s) }

// Code styles an error code such as E2001.
func Code(s string) string { return paint(styleCode, s) }

// Pipe returns the gutter pipe used in diagnostic blocks.
func Pipe() string { return paint(stylePipe, "|") }

// Header styles a table header.
func Header(s string) string { return paint(styleHeader, s) }

// Dim styles muted text.
func Dim(s string) string { return paint(styleDim, s) }
