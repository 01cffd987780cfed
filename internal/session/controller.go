// Package session 实现应用状态机：抽签 → 结果 → 心情 → 加载 → 仪表盘
// 的单线流转，两条 AI 管线的请求编排与过期响应丢弃，以及当日条目的
// 写穿持久化。控制器独占当日工作副本；前端（TUI/REPL）只读状态并把
// 管线结果回传给 Apply 系列方法。
// Package session implements the application state machine: the single
// drawing → result → mood → loading → dashboard flow, request orchestration
// for both AI pipelines with stale-response discard, and write-through
// persistence of the current day's entry. The controller exclusively owns
// the working copy of today; frontends (TUI/REPL) read state and hand
// pipeline results back through the Apply methods.
package session

import (
	"strings"
	"time"

	"oracle/internal/catalog"
	"oracle/internal/history"
	"oracle/internal/model"
	"oracle/internal/pipeline"
	"oracle/internal/todo"
)

// --- 状态与标签页 / Steps and tabs ---

// Step 顶层状态 / Step is the top-level state
type Step string

const (
	StepDrawing   Step = "drawing"
	StepResult    Step = "result"
	StepMood      Step = "mood"
	StepLoading   Step = "loading"
	StepDashboard Step = "dashboard"
)

// Tab 仪表盘标签页，不影响顶层状态
// Tab is the dashboard tab; it never affects the top-level step
type Tab string

const (
	TabOracle  Tab = "oracle"
	TabTodo    Tab = "todo"
	TabReview  Tab = "review"
	TabHistory Tab = "history"
)

// --- 管线请求 / Pipeline requests ---

// InsightRequest 一次灵感生成请求。Token 单调递增，回传结果时校验；
// 过期响应静默丢弃。
// InsightRequest is one insight generation request. Token increases
// monotonically and is checked on apply; stale responses are discarded
// silently.
type InsightRequest struct {
	Token     uint64
	Lot       model.Lot
	Mood      model.MoodID
	Intention string
}

// ReportRequest 一次成长报告请求
// ReportRequest is one growth report request
type ReportRequest struct {
	Token uint64
	Day   pipeline.DayContext
}

// --- 控制器 / Controller ---

// Controller 应用状态机。单线程模型：所有方法都在前端的事件循环里
// 同步调用，不加锁。
// Controller is the application state machine. Single-threaded model: every
// method runs synchronously on the frontend's event loop, so no lock.
type Controller struct {
	engine *catalog.Engine
	store  history.Store
	ledger *todo.Ledger
	now    func() time.Time

	step    Step
	tab     Tab
	shaking bool
	loading bool
	token   uint64

	lot            *model.Lot
	mood           model.MoodID
	intention      string
	interpretation string
	recommendation *model.Recommendation
	reflection     string
	report         string

	entries model.HistoryMap

	// 最近一次持久化失败；写入失败降级为告警，不中断流程
	// last persistence failure; a failed write degrades to a warning
	saveErr error
}

// New 创建控制器：加载历史并恢复今天已有的工作副本（任务、感悟、
// 报告、签位、心情），状态仍从 drawing 开始。
// New creates the controller: loads history and restores today's working
// copy (todos, reflection, report, lot, mood) when an entry exists. The
// step still begins at drawing.
func New(engine *catalog.Engine, store history.Store) *Controller {
	c := &Controller{
		engine:  engine,
		store:   store,
		ledger:  todo.NewLedger(nil),
		now:     time.Now,
		step:    StepDrawing,
		tab:     TabOracle,
		entries: make(model.HistoryMap),
	}

	entries, err := store.Load()
	if err == nil && entries != nil {
		c.entries = entries
	}
	if today, ok := c.entries[history.DateKey(c.now())]; ok {
		c.ledger.Replace(today.Todos)
		c.reflection = today.Reflection
		c.report = today.AIReport
		c.mood = today.Mood
		if today.Lot != nil {
			lot := *today.Lot
			c.lot = &lot
		}
	}
	return c
}

// SetClock 注入时钟，供测试跨越午夜边界
// SetClock injects the clock so tests can cross the midnight boundary
func (c *Controller) SetClock(now func() time.Time) {
	if now != nil {
		c.now = now
		c.ledger.SetClock(now)
	}
}

// --- 抽签 / Drawing ---

// BeginDraw 进入摇签。已在摇签中或不在 drawing 状态时是无操作。
// 上一签的解读与建议在此清空，签位先清空写穿、在 FinishDraw 落定。
// BeginDraw starts shaking. A draw while already shaking or outside the
// drawing step is a no-op. The previous interpretation and recommendation
// are cleared here; the lot is cleared and written through now, then lands
// in FinishDraw.
func (c *Controller) BeginDraw() bool {
	if c.step != StepDrawing || c.shaking {
		return false
	}
	c.shaking = true
	c.lot = nil
	c.interpretation = ""
	c.recommendation = nil
	c.persistToday()
	return true
}

// FinishDraw 摇签结束：抽取签位，进入 result 并持久化。
// 摇签延时由前端负责（TUI 的 tick、REPL 的 sleep）。
// FinishDraw completes the shake: picks the lot, moves to result and
// persists. The shake delay itself belongs to the frontend (a TUI tick, a
// REPL sleep).
func (c *Controller) FinishDraw() (model.Lot, bool) {
	if !c.shaking {
		return model.Lot{}, false
	}
	lot := c.engine.Draw()
	c.lot = &lot
	c.shaking = false
	c.step = StepResult
	c.persistToday()
	return lot, true
}

// BeginMoodSelect 从结果页进入心情选择
// BeginMoodSelect moves from the result page to mood selection
func (c *Controller) BeginMoodSelect() bool {
	if c.step != StepResult || c.lot == nil {
		return false
	}
	c.step = StepMood
	return true
}

// --- 灵感管线编排 / Insight orchestration ---

// SelectMood 选定心情并发起灵感请求。心情是被追踪字段，立即持久化。
// SelectMood picks the mood and issues the insight request. Mood is a
// tracked field and persists immediately.
func (c *Controller) SelectMood(mood model.MoodID) (InsightRequest, bool) {
	if c.step != StepMood || c.lot == nil || c.loading {
		return InsightRequest{}, false
	}
	if !catalog.ValidMood(mood) {
		return InsightRequest{}, false
	}
	c.mood = mood
	c.persistToday()
	return c.issueInsight(), true
}

// RefineIntention 在仪表盘上提交意愿，重新生成解读。空白意愿或已在
// 加载中是无操作。
// RefineIntention submits an intention from the dashboard and regenerates
// the insight. Blank text or an in-flight request is a no-op.
func (c *Controller) RefineIntention(text string) (InsightRequest, bool) {
	text = strings.TrimSpace(text)
	if text == "" || c.loading || c.lot == nil || c.step != StepDashboard {
		return InsightRequest{}, false
	}
	c.intention = text
	return c.issueInsight(), true
}

func (c *Controller) issueInsight() InsightRequest {
	c.loading = true
	c.step = StepLoading
	c.token++
	return InsightRequest{
		Token:     c.token,
		Lot:       *c.lot,
		Mood:      c.mood,
		Intention: c.intention,
	}
}

// ApplyInsight 回传灵感结果。过期令牌静默丢弃；失败时装入固定兜底
// 文案并保留上一份建议。无论成败都落到 dashboard(oracle)。
// ApplyInsight hands back the insight result. A stale token is discarded
// silently; on failure the fixed fallback interpretation is installed and
// the prior recommendation kept. Either way the flow lands on
// dashboard(oracle).
func (c *Controller) ApplyInsight(token uint64, res pipeline.InsightResult, err error) {
	if token != c.token {
		return
	}
	c.loading = false
	c.step = StepDashboard
	c.tab = TabOracle
	if err != nil {
		c.interpretation = pipeline.FallbackInterpretation
		return
	}
	c.interpretation = res.Interpretation
	rec := res.Recommendation
	c.recommendation = &rec
}

// --- 报告管线编排 / Report orchestration ---

// BeginReport 发起成长报告请求。没有感悟也没有任务、或已在加载中，
// 都是无操作。
// BeginReport issues the growth report request. No reflection and no todos,
// or an in-flight request, is a no-op.
func (c *Controller) BeginReport() (ReportRequest, bool) {
	if c.loading {
		return ReportRequest{}, false
	}
	if strings.TrimSpace(c.reflection) == "" && c.ledger.Len() == 0 {
		return ReportRequest{}, false
	}
	c.loading = true
	c.token++
	return ReportRequest{
		Token: c.token,
		Day: pipeline.DayContext{
			Lot:        c.lot,
			Mood:       c.mood,
			Todos:      c.ledger.Items(),
			Reflection: c.reflection,
		},
	}, true
}

// ApplyReport 回传报告结果。过期令牌丢弃；失败时报告保持未设置。
// 成功的报告顺带写入今天的条目，但报告本身不是重写触发器。
// ApplyReport hands back the report. A stale token is discarded; on failure
// the report stays unset. A successful report is folded into today's entry
// opportunistically, though the report itself is not a rewrite trigger.
func (c *Controller) ApplyReport(token uint64, text string, err error) {
	if token != c.token {
		return
	}
	c.loading = false
	if err != nil {
		return
	}
	c.report = strings.TrimSpace(text)
	c.persistToday()
}

// --- 当日字段写穿 / Tracked-field write-through ---

// AddTodo 追加任务并持久化；空白文本无操作
// AddTodo appends a todo and persists; blank text is a no-op
func (c *Controller) AddTodo(text string) bool {
	if !c.ledger.Add(text) {
		return false
	}
	c.persistToday()
	return true
}

// ToggleTodo 翻转完成状态，盖章时带上当前会话心情
// ToggleTodo flips completion, stamping the session mood on check-off
func (c *Controller) ToggleTodo(id string) {
	c.ledger.Toggle(id, c.mood)
	c.persistToday()
}

// UpdateTodoMood 改写已完成任务的完成心情
// UpdateTodoMood rewrites a completed todo's completion mood
func (c *Controller) UpdateTodoMood(id string, mood model.MoodID) {
	c.ledger.UpdateMetric(id, todo.MetricPatch{Mood: &mood})
	c.persistToday()
}

// UpdateTodoTime 改写已完成任务的完成时刻
// UpdateTodoTime rewrites a completed todo's completion time
func (c *Controller) UpdateTodoTime(id string, hhmm string) {
	c.ledger.UpdateMetric(id, todo.MetricPatch{Time: &hhmm})
	c.persistToday()
}

// RemoveTodo 删除任务 / RemoveTodo deletes a todo
func (c *Controller) RemoveTodo(id string) {
	c.ledger.Remove(id)
	c.persistToday()
}

// SetReflection 更新当日感悟并持久化
// SetReflection updates today's reflection text and persists
func (c *Controller) SetReflection(text string) {
	c.reflection = text
	c.persistToday()
}

// persistToday 以本地日期为键整条重写今天的条目。日期键在一次写入
// 中只计算一次；跨越午夜的连续写入会落到各自的日期上。
// persistToday rewrites today's whole entry under the local date key. The
// key is computed exactly once per write; consecutive writes across
// midnight land on their own dates.
func (c *Controller) persistToday() {
	key := history.DateKey(c.now())
	entry := model.HistoryEntry{
		Date:       key,
		Lot:        c.lot,
		Todos:      c.ledger.Items(),
		Mood:       c.mood,
		Reflection: c.reflection,
		AIReport:   c.report,
	}
	c.entries[key] = entry
	c.saveErr = c.store.Put(key, entry)
}

// --- 导航 / Navigation ---

// SetTab 切换仪表盘标签页；只在 dashboard 状态下生效
// SetTab switches the dashboard tab; effective only on the dashboard
func (c *Controller) SetTab(tab Tab) {
	if c.step != StepDashboard {
		return
	}
	switch tab {
	case TabOracle, TabTodo, TabReview, TabHistory:
		c.tab = tab
	}
}

// Reset 无条件回到 drawing：清空签位、心情、意愿与摇签标志，标签页
// 回到 oracle，并令未完成的管线请求过期。任务与感悟作为当日的一部分
// 保留，不被清空。签位与心情是被追踪字段，清空同样立即写穿，重启后
// 不会复活被放弃的签。
// Reset returns unconditionally to drawing: clears the lot, mood, intention
// and shaking flag, forces the tab back to oracle, and invalidates any
// outstanding pipeline request. Todos and reflection survive as part of the
// current day. Lot and mood are tracked fields, so the cleared state writes
// through immediately; a restart does not resurrect the discarded lot.
func (c *Controller) Reset() {
	c.step = StepDrawing
	c.tab = TabOracle
	c.shaking = false
	c.loading = false
	c.token++
	c.lot = nil
	c.mood = ""
	c.intention = ""
	c.persistToday()
}

// --- 只读访问器 / Read-only accessors ---

func (c *Controller) Step() Step    { return c.step }
func (c *Controller) Tab() Tab      { return c.tab }
func (c *Controller) Shaking() bool { return c.shaking }
func (c *Controller) Loading() bool { return c.loading }

// CurrentLot 当前签位，未抽取时为 nil
// CurrentLot is the drawn lot, nil before a draw
func (c *Controller) CurrentLot() *model.Lot { return c.lot }

func (c *Controller) Mood() model.MoodID     { return c.mood }
func (c *Controller) Intention() string      { return c.intention }
func (c *Controller) Interpretation() string { return c.interpretation }

// Recommendation 当前四类建议；首次生成失败前可能为 nil，前端必须容忍
// Recommendation is the current four-category advice; may be nil before the
// first successful generation, which frontends must tolerate
func (c *Controller) Recommendation() *model.Recommendation { return c.recommendation }

func (c *Controller) Reflection() string  { return c.reflection }
func (c *Controller) Report() string      { return c.report }
func (c *Controller) Todos() []model.Todo { return c.ledger.Items() }
func (c *Controller) SaveWarning() error  { return c.saveErr }

// History 历史条目快照，供日历渲染
// History is a snapshot of all entries, for the calendar view
func (c *Controller) History() model.HistoryMap {
	out := make(model.HistoryMap, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}
