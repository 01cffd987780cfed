// Package todo 实现当日待办账本：新增、勾选、改写与删除，勾选时
// 记录完成时刻与当时心情。账本只持有内存状态，持久化由调用方负责。
// Package todo implements the day's todo ledger: add, toggle, edit and
// remove, stamping completion time and the current mood on check-off. The
// ledger holds in-memory state only; persistence is the caller's concern.
package todo

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"oracle/internal/model"
)

// Ledger 当日待办列表
// Ledger is the list of todos for the current day
type Ledger struct {
	items []model.Todo
	now   func() time.Time
}

// NewLedger 从既有条目创建账本（可为空）
// NewLedger creates a ledger from existing items (may be empty)
func NewLedger(items []model.Todo) *Ledger {
	l := &Ledger{now: time.Now}
	l.items = append(l.items, items...)
	return l
}

// SetClock 注入时钟，供测试固定完成时刻
// SetClock injects the clock so tests can pin completion times
func (l *Ledger) SetClock(now func() time.Time) {
	if now != nil {
		l.now = now
	}
}

// Items 返回条目快照，调用方修改不影响账本
// Items returns a snapshot; mutations by the caller do not affect the ledger
func (l *Ledger) Items() []model.Todo {
	out := make([]model.Todo, len(l.items))
	copy(out, l.items)
	return out
}

// Replace 整体替换条目（切换日期时使用）
// Replace swaps the whole item list (used when the day changes)
func (l *Ledger) Replace(items []model.Todo) {
	l.items = l.items[:0]
	l.items = append(l.items, items...)
}

// Add 追加一条待办。空白文本是无操作，返回 false。
// Add appends a todo. Blank text is a no-op and returns false.
func (l *Ledger) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	l.items = append(l.items, model.Todo{
		ID:   uuid.NewString(),
		Text: text,
	})
	return true
}

// Toggle 翻转完成状态。勾选时盖上 HH:MM 完成时刻与当前心情；
// 取消勾选时两者一并清空。未知 id 静默无操作。
// Toggle flips completion. Checking stamps the HH:MM completion time and the
// mood in effect; unchecking clears both. Unknown ids are silent no-ops.
func (l *Ledger) Toggle(id string, currentMood model.MoodID) {
	for i := range l.items {
		if l.items[i].ID != id {
			continue
		}
		if l.items[i].Completed {
			l.items[i].Completed = false
			l.items[i].CompletionTime = ""
			l.items[i].CompletionMood = ""
		} else {
			l.items[i].Completed = true
			l.items[i].CompletionTime = l.now().Format("15:04")
			l.items[i].CompletionMood = currentMood
		}
		return
	}
}

// MetricPatch 对已完成条目记录的部分改写；nil 字段保持原值
// MetricPatch is a partial edit of a completed todo's record; nil fields
// keep their current value
type MetricPatch struct {
	Time *string
	Mood *model.MoodID
}

// UpdateMetric 改写已完成条目的完成时刻/心情（复盘面板里修正记录用），
// 不触碰完成标志。未完成条目或未知 id 静默无操作。
// UpdateMetric rewrites a completed todo's recorded time/mood (used when
// correcting the record in the review panel) without touching the completed
// flag. Incomplete todos and unknown ids are silent no-ops.
func (l *Ledger) UpdateMetric(id string, patch MetricPatch) {
	for i := range l.items {
		if l.items[i].ID != id {
			continue
		}
		if !l.items[i].Completed {
			return
		}
		if patch.Time != nil {
			l.items[i].CompletionTime = *patch.Time
		}
		if patch.Mood != nil {
			l.items[i].CompletionMood = *patch.Mood
		}
		return
	}
}

// Remove 删除条目。未知 id 静默无操作。
// Remove deletes a todo. Unknown ids are silent no-ops.
func (l *Ledger) Remove(id string) {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// CompletedCount 已完成条目数
// CompletedCount reports how many todos are done
func (l *Ledger) CompletedCount() int {
	n := 0
	for _, item := range l.items {
		if item.Completed {
			n++
		}
	}
	return n
}

// Len 条目总数 / Len is the total item count
func (l *Ledger) Len() int { return len(l.items) }
