package tui

import (
	"fmt"
	"strings"
	"time"

	"oracle/internal/history"
	"oracle/internal/model"
)

var weekdayHeader = []string{"一", "二", "三", "四", "五", "六", "日"}

// RenderCalendar 渲染一个月的日历网格：有记录的日子加标记，今天反色，
// 光标日高亮。周一作为一周的第一天。
// RenderCalendar renders one month as a grid: recorded days are marked,
// today is inverted, the cursor day highlighted. Weeks start on Monday.
func RenderCalendar(month time.Time, cursor time.Time, entries model.HistoryMap, now time.Time, theme Theme) string {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render(fmt.Sprintf("%d 年 %d 月", first.Year(), int(first.Month()))))
	b.WriteString("\n")
	for _, wd := range weekdayHeader {
		b.WriteString(theme.MutedStyle.Render(fmt.Sprintf(" %s ", wd)))
	}
	b.WriteString("\n")

	// 周一偏移 / Monday offset
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("    ", offset))

	cursorKey := history.DateKey(cursor)
	todayKey := history.DateKey(now)
	col := offset
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		key := history.DateKey(day)
		_, recorded := entries[key]

		cell := fmt.Sprintf("%2d", day.Day())
		mark := " "
		if recorded {
			mark = "·"
		}
		text := cell + mark

		switch {
		case key == todayKey:
			text = theme.TodayStyle.Render(text)
		case key == cursorKey:
			text = theme.SelectedStyle.Render(text)
		case recorded:
			text = theme.MarkedDayStyle.Render(text)
		default:
			text = theme.MutedStyle.Render(text)
		}
		b.WriteString(" " + text)

		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderDayDetail 渲染光标日的记录摘要；无记录时给出占位提示
// RenderDayDetail renders the cursor day's record summary; a day without a
// record gets a placeholder
func RenderDayDetail(entry model.HistoryEntry, ok bool, theme Theme, emptyHint string) string {
	if !ok {
		return theme.MutedStyle.Render(emptyHint)
	}

	var parts []string
	if entry.Lot != nil {
		parts = append(parts, theme.LotTitleStyle.Render(entry.Lot.Title))
	}
	done := 0
	for _, t := range entry.Todos {
		if t.Completed {
			done++
		}
	}
	if len(entry.Todos) > 0 {
		parts = append(parts, theme.PanelStyle.Render(fmt.Sprintf("待办 %d/%d", done, len(entry.Todos))))
	}
	if strings.TrimSpace(entry.Reflection) != "" {
		parts = append(parts, theme.MutedStyle.Render(firstLine(entry.Reflection)))
	}
	if strings.TrimSpace(entry.AIReport) != "" {
		parts = append(parts, theme.SuccessStyle.Render("✦ 已生成成长报告"))
	}
	if len(parts) == 0 {
		return theme.MutedStyle.Render(emptyHint)
	}
	return strings.Join(parts, "\n")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	runes := []rune(s)
	if len(runes) > 24 {
		return string(runes[:24]) + "…"
	}
	return s
}
