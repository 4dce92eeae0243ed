package ui

import "github.com/charmbracelet/lipgloss"

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	ColorCoral     = lipgloss.AdaptiveColor{Light: "#c026d3", Dark: "#e879f9"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorText      = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconCheck   = "✔"
	IconWarning = "⚠"
	IconError   = "✖"
	IconBroom   = "🧹"
	IconLog     = "📄"
	IconTrash   = "🗑"
	IconRadar   = "🔍"
	IconChart   = "📊"
	IconApple   = "🍏"
	IconSparkle = "✨"
	IconPipe    = "│"
	IconBullet  = "•"
)

// ─── Styles ──────────────────────────────────────────────────────────────────

// TitleStyle is used for section titles such as "Clearing Caches".
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
}

// HeadingStyle is used above tables.
func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorText)
}

func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// AccentStyle highlights menu numbers.
func AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorPrimary)
}

// BoldStyle emphasises sizes inside sentences.
func BoldStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}
