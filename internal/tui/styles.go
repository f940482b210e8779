package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
)

var (
	// Colors
	primaryColor    = lipgloss.Color("#6366f1") // Indigo
	successColor    = lipgloss.Color("42")
	warningColor    = lipgloss.Color("214")
	errorColor      = lipgloss.Color("#ef4444")
	mutedColor      = lipgloss.Color("#94a3b8")
	textColor       = lipgloss.Color("252")
	backgroundColor = lipgloss.Color("235")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(primaryColor).
			Padding(0, 2)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginBottom(1)

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginTop(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Bold(true).
				Foreground(textColor).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				PaddingLeft(6)

	checkedStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	counterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(primaryColor).
			Padding(0, 2)

	disabledActionStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Background(backgroundColor).
				Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true).
			Width(14)

	focusedLabelStyle = labelStyle.
				Foreground(primaryColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(textColor)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginBottom(1)

	selectedCardStyle = cardStyle.
				BorderForeground(primaryColor)

	megaBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#f59e0b")).
			Padding(0, 1)

	countBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(primaryColor).
			Padding(0, 1)

	chipStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("238")).
			Padding(0, 1).
			MarginRight(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				Padding(0, 2).
				MarginBottom(1).
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(errorColor)

	infoBannerStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Padding(0, 2).
			MarginBottom(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(successColor)

	warningBannerStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Padding(0, 2).
				MarginBottom(1)

	confirmBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(warningColor).
			Padding(1, 4).
			Align(lipgloss.Center)

	confirmTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(warningColor).
				MarginBottom(1)

	helpBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 3)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			Align(lipgloss.Center).
			PaddingTop(2).
			PaddingBottom(2)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)

// coverSwatch renders the two gradient stops of a cover as colored blocks.
func coverSwatch(cover catalog.CoverStyle, width int) string {
	half := width / 2
	if half < 1 {
		half = 1
	}
	left := lipgloss.NewStyle().
		Background(lipgloss.Color(string(cover.Gradient[0]))).
		Width(half)
	right := lipgloss.NewStyle().
		Background(lipgloss.Color(string(cover.Gradient[1]))).
		Width(half)
	return left.Render("") + right.Render("")
}

// accentStyle returns a text style in the cover's accent color.
func accentStyle(cover catalog.CoverStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(string(cover.Accent)))
}

// paperGlyph returns a small sample of the paper's ruling.
func paperGlyph(p catalog.Pattern, unicode bool) string {
	if !unicode {
		switch p {
		case catalog.PatternLined:
			return "==="
		case catalog.PatternGrid:
			return "+++"
		case catalog.PatternDotted:
			return "..."
		case catalog.PatternGuided:
			return "=|="
		default:
			return "   "
		}
	}
	switch p {
	case catalog.PatternLined:
		return "☰"
	case catalog.PatternGrid:
		return "▦"
	case catalog.PatternDotted:
		return "⁘"
	case catalog.PatternGuided:
		return "☷"
	default:
		return "□"
	}
}
