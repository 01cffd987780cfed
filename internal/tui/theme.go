package tui

import "github.com/charmbracelet/lipgloss"

// Theme 定义 TUI 主题色彩和样式
// Theme defines TUI colors and styles
type Theme struct {
	// 基础色 / Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Danger    lipgloss.Color
	Success   lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	TextDim   lipgloss.Color
	Border    lipgloss.Color

	// 预构建样式 / Pre-built styles
	TitleStyle       lipgloss.Style
	SubtitleStyle    lipgloss.Style
	ActiveTabStyle   lipgloss.Style
	InactiveTabStyle lipgloss.Style
	StatusBarStyle   lipgloss.Style
	PanelStyle       lipgloss.Style
	CardStyle        lipgloss.Style
	LotTitleStyle    lipgloss.Style
	InputStyle       lipgloss.Style
	ErrorStyle       lipgloss.Style
	SuccessStyle     lipgloss.Style
	MutedStyle       lipgloss.Style
	SelectedStyle    lipgloss.Style
	DoneStyle        lipgloss.Style
	TodayStyle       lipgloss.Style
	MarkedDayStyle   lipgloss.Style
}

// WarmTheme 暖石色主题（默认）：接近宣纸与茶色的禅意配色
// WarmTheme is the default warm-stone theme, rice-paper and tea tones
func WarmTheme() Theme {
	t := Theme{
		Primary:   lipgloss.Color("#B45309"),
		Secondary: lipgloss.Color("#0D9488"),
		Accent:    lipgloss.Color("#D97706"),
		Danger:    lipgloss.Color("#DC2626"),
		Success:   lipgloss.Color("#059669"),
		Muted:     lipgloss.Color("#A8A29E"),
		Text:      lipgloss.Color("#44403C"),
		TextDim:   lipgloss.Color("#78716C"),
		Border:    lipgloss.Color("#D6D3D1"),
	}

	t.TitleStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.SubtitleStyle = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Italic(true)

	t.ActiveTabStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFBEB")).
		Background(t.Primary).
		Padding(0, 2).
		Bold(true)

	t.InactiveTabStyle = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 2)

	t.StatusBarStyle = lipgloss.NewStyle().
		Foreground(t.TextDim)

	t.PanelStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	t.CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.LotTitleStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.InputStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Danger).
		Bold(true)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.MutedStyle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.SelectedStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.DoneStyle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Strikethrough(true)

	t.TodayStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFBEB")).
		Background(t.Secondary).
		Bold(true)

	t.MarkedDayStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	return t
}
