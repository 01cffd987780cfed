package todo

import (
	"testing"
	"time"

	"oracle/internal/model"
)

func fixedClock(hh, mm int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 30, hh, mm, 0, 0, time.Local)
	}
}

func TestLedger_AddTrimsAndRejectsBlank(t *testing.T) {
	l := NewLedger(nil)

	if !l.Add("  晨间冥想  ") {
		t.Fatalf("Add should accept non-blank text")
	}
	if l.Add("   ") {
		t.Fatalf("blank text should be a no-op")
	}
	if l.Add("") {
		t.Fatalf("empty text should be a no-op")
	}

	items := l.Items()
	if len(items) != 1 {
		t.Fatalf("len(items)=%d, want 1", len(items))
	}
	if items[0].Text != "晨间冥想" {
		t.Fatalf("text=%q, want trimmed", items[0].Text)
	}
	if items[0].ID == "" {
		t.Fatalf("todo should get an id")
	}
	if items[0].Completed {
		t.Fatalf("new todo should start incomplete")
	}
}

// 勾选盖章、取消清空：两个方向不对称
// Checking stamps, unchecking clears: the two directions are asymmetric
func TestLedger_ToggleAsymmetry(t *testing.T) {
	l := NewLedger(nil)
	l.SetClock(fixedClock(8, 30))
	l.Add("写周报")
	id := l.Items()[0].ID

	l.Toggle(id, "energetic")
	got := l.Items()[0]
	if !got.Completed {
		t.Fatalf("todo should be completed after toggle")
	}
	if got.CompletionTime != "08:30" {
		t.Fatalf("CompletionTime=%q, want 08:30", got.CompletionTime)
	}
	if got.CompletionMood != "energetic" {
		t.Fatalf("CompletionMood=%q, want energetic", got.CompletionMood)
	}

	l.Toggle(id, "tired")
	got = l.Items()[0]
	if got.Completed {
		t.Fatalf("todo should be incomplete after second toggle")
	}
	if got.CompletionTime != "" || got.CompletionMood != "" {
		t.Fatalf("unchecking should clear both stamps, got %+v", got)
	}
}

func TestLedger_ToggleUnknownIDIsNoop(t *testing.T) {
	l := NewLedger(nil)
	l.Add("散步")

	l.Toggle("no-such-id", "happy")
	if got := l.Items()[0]; got.Completed {
		t.Fatalf("unknown id must not touch existing items: %+v", got)
	}
}

func TestLedger_UpdateMetric(t *testing.T) {
	l := NewLedger(nil)
	l.SetClock(fixedClock(21, 15))
	l.Add("阅读")
	l.Add("跑步")
	done := l.Items()[0].ID
	pending := l.Items()[1].ID

	happy := model.MoodID("happy")
	l.Toggle(done, "calm")
	l.UpdateMetric(done, MetricPatch{Mood: &happy})
	if got := l.Items()[0].CompletionMood; got != "happy" {
		t.Fatalf("CompletionMood=%q, want happy", got)
	}
	if got := l.Items()[0].CompletionTime; got != "21:15" {
		t.Fatalf("rewriting mood must not touch the time, got %q", got)
	}

	// 单独改写时刻，心情保持 / patching the time keeps the mood
	earlier := "20:00"
	l.UpdateMetric(done, MetricPatch{Time: &earlier})
	got := l.Items()[0]
	if got.CompletionTime != "20:00" || got.CompletionMood != "happy" {
		t.Fatalf("after time patch: %+v", got)
	}
	if !got.Completed {
		t.Fatalf("patching must not touch the completed flag")
	}

	// 未完成条目不可改写 / incomplete items cannot be rewritten
	sad := model.MoodID("sad")
	l.UpdateMetric(pending, MetricPatch{Mood: &sad})
	if got := l.Items()[1].CompletionMood; got != "" {
		t.Fatalf("incomplete todo got a mood: %q", got)
	}

	l.UpdateMetric("no-such-id", MetricPatch{Mood: &sad})
}

func TestLedger_Remove(t *testing.T) {
	l := NewLedger(nil)
	l.Add("a")
	l.Add("b")
	l.Add("c")
	id := l.Items()[1].ID

	l.Remove(id)
	items := l.Items()
	if len(items) != 2 {
		t.Fatalf("len=%d, want 2", len(items))
	}
	if items[0].Text != "a" || items[1].Text != "c" {
		t.Fatalf("wrong item removed: %+v", items)
	}

	l.Remove("no-such-id")
	if l.Len() != 2 {
		t.Fatalf("unknown id must be a no-op")
	}
}

func TestLedger_SnapshotIsolation(t *testing.T) {
	l := NewLedger(nil)
	l.Add("原文")

	items := l.Items()
	items[0].Text = "改写"
	if got := l.Items()[0].Text; got != "原文" {
		t.Fatalf("snapshot mutation leaked into ledger: %q", got)
	}
}

func TestLedger_CompletedCount(t *testing.T) {
	l := NewLedger(nil)
	l.Add("a")
	l.Add("b")
	l.Add("c")
	l.Toggle(l.Items()[0].ID, "calm")
	l.Toggle(l.Items()[2].ID, "calm")

	if got := l.CompletedCount(); got != 2 {
		t.Fatalf("CompletedCount=%d, want 2", got)
	}
}
