package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"oracle/internal/catalog"
	"oracle/internal/history"
	"oracle/internal/i18n"
	"oracle/internal/model"
	"oracle/internal/pipeline"
	"oracle/internal/session"
)

// --- Tea Messages ---

// shakeDoneMsg 摇签动画结束
// shakeDoneMsg signals the end of the shake animation
type shakeDoneMsg struct{}

// insightMsg 灵感管线完成；Token 用于丢弃过期响应
// insightMsg is the finished insight pipeline; Token discards stale replies
type insightMsg struct {
	token uint64
	res   pipeline.InsightResult
	err   error
}

// reportMsg 报告管线完成
// reportMsg is the finished report pipeline
type reportMsg struct {
	token uint64
	text  string
	err   error
}

// App Bubble Tea 主 Model
// App is the main Bubble Tea model
type App struct {
	// 核心 / Core
	ctrl     *session.Controller
	insight  *pipeline.Insight
	reporter *pipeline.Reflection
	shake    time.Duration

	// 布局 / Layout
	width  int
	height int

	// 组件 / Components
	spin      spinner.Model
	intention textinput.Model
	todoInput textinput.Model
	reflect   textarea.Model

	// 浏览态光标 / Browse-mode cursors
	editing    bool
	todoCursor int
	moodCursor int
	calMonth   time.Time
	calCursor  time.Time

	// 配置 / Config
	theme  Theme
	keys   KeyMap
	locale *i18n.I18n
	now    func() time.Time
}

// NewApp 创建 TUI 应用
// NewApp creates a new TUI application
func NewApp(ctrl *session.Controller, ins *pipeline.Insight, rep *pipeline.Reflection, shakeMS int) App {
	intention := textinput.New()
	intention.Placeholder = i18n.T("oracle.intention_placeholder")
	intention.CharLimit = 200

	todoInput := textinput.New()
	todoInput.Placeholder = i18n.T("todo.placeholder")
	todoInput.CharLimit = 100

	reflect := textarea.New()
	reflect.Placeholder = i18n.T("review.placeholder")
	reflect.CharLimit = 2000
	reflect.SetHeight(5)
	reflect.SetValue(ctrl.Reflection())

	sp := spinner.New()
	sp.Spinner = spinner.Points

	if shakeMS <= 0 {
		shakeMS = 1200
	}
	now := time.Now()

	return App{
		ctrl:      ctrl,
		insight:   ins,
		reporter:  rep,
		shake:     time.Duration(shakeMS) * time.Millisecond,
		spin:      sp,
		intention: intention,
		todoInput: todoInput,
		reflect:   reflect,
		calMonth:  now,
		calCursor: now,
		theme:     WarmTheme(),
		keys:      DefaultKeyMap(),
		locale:    i18n.Global(),
		now:       time.Now,
	}
}

func (a App) Init() tea.Cmd {
	return a.spin.Tick
}

// --- 管线命令 / Pipeline commands ---

func (a App) insightCmd(req session.InsightRequest) tea.Cmd {
	ins := a.insight
	return func() tea.Msg {
		lot := req.Lot
		res, err := ins.Generate(context.Background(), &lot, req.Mood, req.Intention)
		return insightMsg{token: req.Token, res: res, err: err}
	}
}

func (a App) reportCmd(req session.ReportRequest) tea.Cmd {
	rep := a.reporter
	return func() tea.Msg {
		text, err := rep.Generate(context.Background(), req.Day)
		return reportMsg{token: req.Token, text: text, err: err}
	}
}

func (a App) shakeCmd() tea.Cmd {
	return tea.Tick(a.shake, func(time.Time) tea.Msg { return shakeDoneMsg{} })
}

// --- Update ---

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.intention.Width = clamp(msg.Width-8, 20, 80)
		a.todoInput.Width = clamp(msg.Width-8, 20, 80)
		a.reflect.SetWidth(clamp(msg.Width-6, 20, 90))
		return a, nil

	case shakeDoneMsg:
		a.ctrl.FinishDraw()
		return a, nil

	case insightMsg:
		a.ctrl.ApplyInsight(msg.token, msg.res, msg.err)
		return a, nil

	case reportMsg:
		a.ctrl.ApplyReport(msg.token, msg.text, msg.err)
		return a, nil

	case spinner.TickMsg:
		if a.ctrl.Shaking() || a.ctrl.Loading() {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, a.spin.Tick
	}

	return a.updateInputs(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Reset):
		a.leaveEditing()
		a.ctrl.Reset()
		a.intention.SetValue("")
		return a, nil
	}

	switch a.ctrl.Step() {
	case session.StepDrawing:
		// 空格等价于摇一摇触发 / space doubles as the shake trigger
		if s := msg.String(); s == "enter" || s == " " {
			if a.ctrl.BeginDraw() {
				return a, tea.Batch(a.shakeCmd(), a.spin.Tick)
			}
		}
		return a, nil

	case session.StepResult:
		switch msg.String() {
		case "enter":
			a.ctrl.BeginMoodSelect()
		case "r":
			a.ctrl.Reset()
			if a.ctrl.BeginDraw() {
				return a, tea.Batch(a.shakeCmd(), a.spin.Tick)
			}
		}
		return a, nil

	case session.StepMood:
		return a.handleMoodKey(msg)

	case session.StepLoading:
		return a, nil

	case session.StepDashboard:
		return a.handleDashboardKey(msg)
	}
	return a, nil
}

func (a App) handleMoodKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		a.moodCursor = (a.moodCursor + len(catalog.Moods) - 1) % len(catalog.Moods)
	case "right", "l":
		a.moodCursor = (a.moodCursor + 1) % len(catalog.Moods)
	case "enter":
		if req, ok := a.ctrl.SelectMood(catalog.Moods[a.moodCursor].ID); ok {
			return a, tea.Batch(a.insightCmd(req), a.spin.Tick)
		}
	}
	return a, nil
}

func (a App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// 标签页切换对所有子面板生效 / Tab cycling works in every panel
	switch key {
	case "tab":
		a.leaveEditing()
		a.ctrl.SetTab(nextTab(a.ctrl.Tab(), 1))
		return a, nil
	case "shift+tab":
		a.leaveEditing()
		a.ctrl.SetTab(nextTab(a.ctrl.Tab(), -1))
		return a, nil
	}
	if !a.editing {
		switch key {
		case "1":
			a.ctrl.SetTab(session.TabOracle)
			return a, nil
		case "2":
			a.ctrl.SetTab(session.TabTodo)
			return a, nil
		case "3":
			a.ctrl.SetTab(session.TabReview)
			return a, nil
		case "4":
			a.ctrl.SetTab(session.TabHistory)
			return a, nil
		}
	}

	switch a.ctrl.Tab() {
	case session.TabOracle:
		return a.handleOracleKey(msg)
	case session.TabTodo:
		return a.handleTodoKey(msg)
	case session.TabReview:
		return a.handleReviewKey(msg)
	case session.TabHistory:
		return a.handleHistoryKey(msg), nil
	}
	return a, nil
}

func (a App) handleOracleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "esc":
			a.leaveEditing()
			return a, nil
		case "enter":
			text := a.intention.Value()
			a.intention.SetValue("")
			a.leaveEditing()
			if req, ok := a.ctrl.RefineIntention(text); ok {
				return a, tea.Batch(a.insightCmd(req), a.spin.Tick)
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.intention, cmd = a.intention.Update(msg)
		return a, cmd
	}

	if msg.String() == "i" || msg.String() == "enter" {
		a.editing = true
		a.intention.Focus()
	}
	return a, nil
}

func (a App) handleTodoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "esc":
			a.leaveEditing()
			return a, nil
		case "enter":
			if a.ctrl.AddTodo(a.todoInput.Value()) {
				a.todoInput.SetValue("")
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.todoInput, cmd = a.todoInput.Update(msg)
		return a, cmd
	}

	todos := a.ctrl.Todos()
	switch msg.String() {
	case "i", "a", "enter":
		a.editing = true
		a.todoInput.Focus()
	case "up", "k":
		if a.todoCursor > 0 {
			a.todoCursor--
		}
	case "down", "j":
		if a.todoCursor < len(todos)-1 {
			a.todoCursor++
		}
	case " ":
		if a.todoCursor < len(todos) {
			a.ctrl.ToggleTodo(todos[a.todoCursor].ID)
		}
	case "d":
		if a.todoCursor < len(todos) {
			a.ctrl.RemoveTodo(todos[a.todoCursor].ID)
			if a.todoCursor > 0 {
				a.todoCursor--
			}
		}
	case "m":
		if a.todoCursor < len(todos) && todos[a.todoCursor].Completed {
			next := nextMood(todos[a.todoCursor].CompletionMood)
			a.ctrl.UpdateTodoMood(todos[a.todoCursor].ID, next)
		}
	}
	return a, nil
}

func (a App) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		if msg.String() == "esc" {
			a.leaveEditing()
			return a, nil
		}
		var cmd tea.Cmd
		a.reflect, cmd = a.reflect.Update(msg)
		a.ctrl.SetReflection(a.reflect.Value())
		return a, cmd
	}

	switch msg.String() {
	case "i", "enter":
		a.editing = true
		a.reflect.Focus()
	case "g":
		a.ctrl.SetReflection(a.reflect.Value())
		if req, ok := a.ctrl.BeginReport(); ok {
			return a, tea.Batch(a.reportCmd(req), a.spin.Tick)
		}
	}
	return a, nil
}

func (a App) handleHistoryKey(msg tea.KeyMsg) App {
	switch {
	case key.Matches(msg, a.keys.Left):
		a.calCursor = a.calCursor.AddDate(0, 0, -1)
	case key.Matches(msg, a.keys.Right):
		a.calCursor = a.calCursor.AddDate(0, 0, 1)
	case key.Matches(msg, a.keys.Up):
		a.calCursor = a.calCursor.AddDate(0, 0, -7)
	case key.Matches(msg, a.keys.Down):
		a.calCursor = a.calCursor.AddDate(0, 0, 7)
	case key.Matches(msg, a.keys.PrevMonth):
		a.calCursor = a.calCursor.AddDate(0, -1, 0)
	case key.Matches(msg, a.keys.NextMonth):
		a.calCursor = a.calCursor.AddDate(0, 1, 0)
	}
	a.calMonth = a.calCursor
	return a
}

func (a *App) leaveEditing() {
	if !a.editing {
		return
	}
	a.editing = false
	a.intention.Blur()
	a.todoInput.Blur()
	if a.reflect.Focused() {
		a.ctrl.SetReflection(a.reflect.Value())
		a.reflect.Blur()
	}
}

// nextMood 心情轮转，用于在待办列表上直接改写完成心情
// nextMood cycles the mood set, used to rewrite a completion mood in place
func nextMood(current model.MoodID) model.MoodID {
	for i, m := range catalog.Moods {
		if m.ID == current {
			return catalog.Moods[(i+1)%len(catalog.Moods)].ID
		}
	}
	return catalog.Moods[0].ID
}

func (a App) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if a.intention.Focused() {
		a.intention, cmd = a.intention.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.todoInput.Focused() {
		a.todoInput, cmd = a.todoInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.reflect.Focused() {
		a.reflect, cmd = a.reflect.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// --- View ---

func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "..."
	}

	var body string
	switch a.ctrl.Step() {
	case session.StepDrawing:
		body = a.viewDrawing()
	case session.StepResult:
		body = a.viewResult()
	case session.StepMood:
		body = a.viewMood()
	case session.StepLoading:
		body = a.viewLoading()
	case session.StepDashboard:
		body = a.viewDashboard()
	}

	title := a.theme.TitleStyle.Render(" " + a.locale.T("app.title"))
	sub := a.theme.SubtitleStyle.Render(" " + a.locale.T("app.subtitle"))
	status := a.renderStatusBar()

	content := lipgloss.JoinVertical(lipgloss.Left, title+sub, "", body)
	gap := a.height - lipgloss.Height(content) - 1
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, status)
}

func (a App) viewDrawing() string {
	if a.ctrl.Shaking() {
		return fmt.Sprintf("\n  %s %s\n", a.spin.View(), a.theme.PanelStyle.Render(a.locale.T("draw.shaking")))
	}
	return "\n  " + a.theme.PanelStyle.Render(a.locale.T("draw.prompt")) + "\n"
}

func (a App) viewResult() string {
	lot := a.ctrl.CurrentLot()
	if lot == nil {
		return ""
	}
	card := RenderLotCard(*lot, a.theme, a.locale, a.width)
	hint := a.theme.MutedStyle.Render("  " + a.locale.T("result.hint") + " · " + a.locale.T("result.redraw"))
	return lipgloss.JoinVertical(lipgloss.Left, card, "", hint)
}

func (a App) viewMood() string {
	var parts []string
	parts = append(parts, "  "+a.theme.TitleStyle.Render(a.locale.T("mood.title")), "")

	var row []string
	for i, m := range catalog.Moods {
		label := " " + m.Label + " "
		if i == a.moodCursor {
			row = append(row, a.theme.ActiveTabStyle.Render(label))
		} else {
			row = append(row, a.theme.InactiveTabStyle.Render(label))
		}
	}
	parts = append(parts, "  "+lipgloss.JoinHorizontal(lipgloss.Top, row...))
	parts = append(parts, "", "  "+a.theme.MutedStyle.Render(a.locale.T("mood.hint")))
	return strings.Join(parts, "\n")
}

func (a App) viewLoading() string {
	return fmt.Sprintf("\n  %s %s\n", a.spin.View(), a.theme.PanelStyle.Render(a.locale.T("loading.insight")))
}

func (a App) viewDashboard() string {
	tabs := a.renderTabs()

	var panel string
	switch a.ctrl.Tab() {
	case session.TabOracle:
		panel = a.viewOracle()
	case session.TabTodo:
		panel = a.viewTodo()
	case session.TabReview:
		panel = a.viewReview()
	case session.TabHistory:
		panel = a.viewHistory()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabs, "", panel)
}

func (a App) renderTabs() string {
	entries := []struct {
		tab  session.Tab
		name string
	}{
		{session.TabOracle, a.locale.T("tab.oracle")},
		{session.TabTodo, a.locale.T("tab.todo")},
		{session.TabReview, a.locale.T("tab.review")},
		{session.TabHistory, a.locale.T("tab.history")},
	}

	var parts []string
	for _, e := range entries {
		style := a.theme.InactiveTabStyle
		if e.tab == a.ctrl.Tab() {
			style = a.theme.ActiveTabStyle
		}
		parts = append(parts, style.Render(e.name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a App) viewOracle() string {
	var parts []string
	if lot := a.ctrl.CurrentLot(); lot != nil {
		parts = append(parts, RenderLotCard(*lot, a.theme, a.locale, a.width))
	}
	if interp := a.ctrl.Interpretation(); interp != "" {
		parts = append(parts, a.theme.TitleStyle.Render(" "+a.locale.T("oracle.interpretation")))
		parts = append(parts, RenderMarkdown(interp, clamp(a.width-4, 20, 90)))
	}
	parts = append(parts, a.theme.TitleStyle.Render(" "+a.locale.T("oracle.recommendation")))
	parts = append(parts, RenderRecommendation(a.ctrl.Recommendation(), a.theme, a.locale))
	parts = append(parts, "", a.theme.InputStyle.Render(a.intention.View()))
	if a.ctrl.Loading() {
		parts = append(parts, a.spin.View()+" "+a.theme.MutedStyle.Render(a.locale.T("loading.insight")))
	}
	return strings.Join(parts, "\n")
}

func (a App) viewTodo() string {
	todos := a.ctrl.Todos()
	var parts []string
	if len(todos) == 0 {
		parts = append(parts, "  "+a.theme.MutedStyle.Render(a.locale.T("todo.empty")))
	}
	for i, t := range todos {
		cursor := "  "
		if !a.editing && i == a.todoCursor {
			cursor = a.theme.SelectedStyle.Render("> ")
		}
		box := "[ ]"
		text := a.theme.PanelStyle.Render(t.Text)
		if t.Completed {
			box = a.theme.SuccessStyle.Render("[✓]")
			text = a.theme.DoneStyle.Render(t.Text)
			text += "  " + a.theme.MutedStyle.Render(
				a.locale.T("todo.done_at", t.CompletionTime, catalog.MoodLabel(t.CompletionMood)))
		}
		parts = append(parts, fmt.Sprintf("%s%s %s", cursor, box, text))
	}
	parts = append(parts, "", a.theme.InputStyle.Render(a.todoInput.View()))
	parts = append(parts, a.theme.MutedStyle.Render("  "+a.locale.T("todo.hint")))
	return strings.Join(parts, "\n")
}

func (a App) viewReview() string {
	todos := a.ctrl.Todos()
	done := 0
	for _, t := range todos {
		if t.Completed {
			done++
		}
	}

	var parts []string
	parts = append(parts, a.theme.SubtitleStyle.Render(" "+a.locale.T("review.progress", done, len(todos))))
	parts = append(parts, a.reflect.View())
	parts = append(parts, "")
	if report := a.ctrl.Report(); report != "" {
		parts = append(parts, a.theme.TitleStyle.Render(" "+a.locale.T("review.report")))
		parts = append(parts, RenderMarkdown(report, clamp(a.width-4, 20, 90)))
	} else if a.ctrl.Loading() {
		parts = append(parts, a.spin.View()+" "+a.theme.MutedStyle.Render(a.locale.T("loading.report")))
	} else {
		parts = append(parts, a.theme.MutedStyle.Render("  "+a.locale.T("review.no_report")+" · "+a.locale.T("review.generate")))
	}
	return strings.Join(parts, "\n")
}

func (a App) viewHistory() string {
	entries := a.ctrl.History()
	cal := RenderCalendar(a.calMonth, a.calCursor, entries, a.now(), a.theme)

	entry, ok := entries[history.DateKey(a.calCursor)]
	detail := RenderDayDetail(entry, ok, a.theme, a.locale.T("history.empty"))

	hint := a.theme.MutedStyle.Render("  " + a.locale.T("history.hint"))
	return lipgloss.JoinVertical(lipgloss.Left, cal, "", detail, "", hint)
}

func (a App) renderStatusBar() string {
	var hints []string
	hints = append(hints, a.locale.T("keys.reset"), a.locale.T("keys.quit"))
	if a.ctrl.Step() == session.StepDashboard {
		hints = append([]string{a.locale.T("keys.tabs")}, hints...)
	}
	left := " " + strings.Join(hints, " · ")

	right := ""
	if err := a.ctrl.SaveWarning(); err != nil {
		right = a.theme.ErrorStyle.Render(a.locale.T("status.saved_warning", err.Error())) + " "
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return a.theme.StatusBarStyle.Width(a.width).Render(left + strings.Repeat(" ", gap) + right)
}

// --- helpers ---

func nextTab(cur session.Tab, delta int) session.Tab {
	order := []session.Tab{session.TabOracle, session.TabTodo, session.TabReview, session.TabHistory}
	idx := 0
	for i, t := range order {
		if t == cur {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return order[idx]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run 启动 Bubble Tea TUI
// Run starts the Bubble Tea TUI application
func Run(ctrl *session.Controller, ins *pipeline.Insight, rep *pipeline.Reflection, shakeMS int) error {
	app := NewApp(ctrl, ins, rep, shakeMS)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
