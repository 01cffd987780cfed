package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"oracle/internal/i18n"
	"oracle/internal/model"
)

// RenderMarkdown 使用 Glamour 渲染 markdown 文本
// RenderMarkdown renders markdown text using Glamour
func RenderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}

// RenderLotCard 渲染签文卡片：签名、签文与幸运信息
// RenderLotCard renders the lot card: title, description and lucky info
func RenderLotCard(lot model.Lot, theme Theme, loc *i18n.I18n, width int) string {
	title := theme.LotTitleStyle.Render(lot.Title)
	desc := theme.PanelStyle.Render(lot.Description)
	lucky := theme.MutedStyle.Render(
		loc.T("result.lucky", lot.LuckyColor, lot.LuckyNumber))

	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(lot.HexColor)).
		Render("●")

	body := strings.Join([]string{title, "", desc, "", swatch + " " + lucky}, "\n")
	card := theme.CardStyle
	if width > 8 {
		card = card.Width(width - 4)
	}
	return card.Render(body)
}

// RenderRecommendation 渲染今日四宜；建议缺失时给出占位提示
// RenderRecommendation renders the four picks; a missing recommendation
// gets a placeholder hint
func RenderRecommendation(rec *model.Recommendation, theme Theme, loc *i18n.I18n) string {
	if rec == nil {
		return theme.MutedStyle.Render(loc.T("oracle.no_recommendation"))
	}

	rows := []struct {
		label  string
		detail model.RecommendationDetail
	}{
		{loc.T("oracle.rec_eat"), rec.Eat},
		{loc.T("oracle.rec_wear"), rec.Wear},
		{loc.T("oracle.rec_use"), rec.Use},
		{loc.T("oracle.rec_action"), rec.Action},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s · %s\n",
			theme.SelectedStyle.Render(row.label),
			theme.PanelStyle.Render(row.detail.Title),
			theme.MutedStyle.Render(row.detail.Description)))
	}
	return strings.TrimRight(b.String(), "\n")
}
