package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"oracle/internal/catalog"
	"oracle/internal/history"
	"oracle/internal/model"
	"oracle/internal/pipeline"
	"oracle/internal/session"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	ctrl := session.New(catalog.NewEngineWithSeed(11), history.NewMemoryStore())
	app := NewApp(ctrl, nil, nil, 10)
	app.width, app.height = 100, 32
	return app
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(t *testing.T, app App, text string) App {
	t.Helper()
	for _, r := range text {
		m, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		app = m.(App)
	}
	return app
}

// 穿过抽签与心情，落到仪表盘
// Drives the app through draw and mood onto the dashboard
func toDashboard(t *testing.T, app App) App {
	t.Helper()
	m, cmd := app.Update(keyMsg("enter"))
	app = m.(App)
	if cmd == nil || !app.ctrl.Shaking() {
		t.Fatalf("enter in drawing should start the shake")
	}
	m, _ = app.Update(shakeDoneMsg{})
	app = m.(App)
	if app.ctrl.Step() != session.StepResult {
		t.Fatalf("step=%q after shake, want result", app.ctrl.Step())
	}

	m, _ = app.Update(keyMsg("enter"))
	app = m.(App)
	if app.ctrl.Step() != session.StepMood {
		t.Fatalf("step=%q, want mood", app.ctrl.Step())
	}

	m, cmd = app.Update(keyMsg("enter"))
	app = m.(App)
	if cmd == nil || app.ctrl.Step() != session.StepLoading {
		t.Fatalf("mood confirm should issue the insight request")
	}

	// 第一笔请求的令牌是 1 / the first request carries token 1
	m, _ = app.Update(insightMsg{token: 1, res: pipeline.InsightResult{Interpretation: "静待花开。"}})
	app = m.(App)
	if app.ctrl.Step() != session.StepDashboard {
		t.Fatalf("step=%q, want dashboard", app.ctrl.Step())
	}
	return app
}

func TestAppUpdate_MainFlow(t *testing.T) {
	app := newTestApp(t)
	app = toDashboard(t, app)

	if app.ctrl.Interpretation() != "静待花开。" {
		t.Fatalf("interpretation=%q", app.ctrl.Interpretation())
	}
	if app.ctrl.Tab() != session.TabOracle {
		t.Fatalf("tab=%q, want oracle", app.ctrl.Tab())
	}
}

func TestAppUpdate_StaleInsightIgnored(t *testing.T) {
	app := newTestApp(t)
	app = toDashboard(t, app)

	m, _ := app.Update(insightMsg{token: 99, res: pipeline.InsightResult{Interpretation: "过期"}})
	app = m.(App)
	if app.ctrl.Interpretation() != "静待花开。" {
		t.Fatalf("stale insight applied: %q", app.ctrl.Interpretation())
	}
}

func TestAppUpdate_TabSwitching(t *testing.T) {
	app := newTestApp(t)
	app = toDashboard(t, app)

	m, _ := app.Update(keyMsg("tab"))
	app = m.(App)
	if app.ctrl.Tab() != session.TabTodo {
		t.Fatalf("tab=%q, want todo", app.ctrl.Tab())
	}

	m, _ = app.Update(keyMsg("4"))
	app = m.(App)
	if app.ctrl.Tab() != session.TabHistory {
		t.Fatalf("tab=%q, want history", app.ctrl.Tab())
	}
}

func TestAppUpdate_TodoEditingAndToggle(t *testing.T) {
	app := newTestApp(t)
	app = toDashboard(t, app)

	m, _ := app.Update(keyMsg("2"))
	app = m.(App)
	m, _ = app.Update(keyMsg("enter"))
	app = m.(App)
	if !app.editing {
		t.Fatalf("enter should focus the todo input")
	}

	app = typeText(t, app, "买菜")
	m, _ = app.Update(keyMsg("enter"))
	app = m.(App)
	if todos := app.ctrl.Todos(); len(todos) != 1 || todos[0].Text != "买菜" {
		t.Fatalf("todos=%+v", app.ctrl.Todos())
	}

	// 退出编辑后空格勾选 / leave editing, then space toggles
	m, _ = app.Update(keyMsg("esc"))
	app = m.(App)
	m, _ = app.Update(keyMsg(" "))
	app = m.(App)
	if !app.ctrl.Todos()[0].Completed {
		t.Fatalf("space should toggle the todo under the cursor")
	}

	m, _ = app.Update(keyMsg("d"))
	app = m.(App)
	if len(app.ctrl.Todos()) != 0 {
		t.Fatalf("d should delete the todo under the cursor")
	}
}

func TestAppUpdate_ResetReturnsToDrawing(t *testing.T) {
	app := newTestApp(t)
	app = toDashboard(t, app)

	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	app = m.(App)
	if app.ctrl.Step() != session.StepDrawing {
		t.Fatalf("ctrl+r should return to drawing, step=%q", app.ctrl.Step())
	}
}

func TestNextTabAndMood(t *testing.T) {
	if got := nextTab(session.TabHistory, 1); got != session.TabOracle {
		t.Fatalf("nextTab wraps wrong: %q", got)
	}
	if got := nextTab(session.TabOracle, -1); got != session.TabHistory {
		t.Fatalf("prevTab wraps wrong: %q", got)
	}

	first := catalog.Moods[0].ID
	second := catalog.Moods[1].ID
	if got := nextMood(first); got != second {
		t.Fatalf("nextMood(%s)=%s, want %s", first, got, second)
	}
	if got := nextMood("unknown"); got != first {
		t.Fatalf("unknown mood should cycle from the start, got %s", got)
	}
}

func TestRenderCalendar_MarksAndLayout(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	entries := model.HistoryMap{
		"2026-08-15": {Date: "2026-08-15", Reflection: "有记录"},
	}

	out := RenderCalendar(now, now, entries, now, WarmTheme())
	if !strings.Contains(out, "2026 年 8 月") {
		t.Fatalf("missing month header: %q", out)
	}
	if !strings.Contains(out, "15·") {
		t.Fatalf("recorded day not marked: %q", out)
	}
	if !strings.Contains(out, "31") {
		t.Fatalf("august should render through day 31")
	}
}

func TestRenderDayDetail(t *testing.T) {
	theme := WarmTheme()
	lot := catalog.Lots[0]
	entry := model.HistoryEntry{
		Lot:      &lot,
		Todos:    []model.Todo{{Text: "a", Completed: true}, {Text: "b"}},
		AIReport: "报告",
	}

	out := RenderDayDetail(entry, true, theme, "空")
	if !strings.Contains(out, lot.Title) || !strings.Contains(out, "1/2") {
		t.Fatalf("detail=%q", out)
	}

	if out := RenderDayDetail(model.HistoryEntry{}, false, theme, "空"); !strings.Contains(out, "空") {
		t.Fatalf("missing empty hint: %q", out)
	}
}
