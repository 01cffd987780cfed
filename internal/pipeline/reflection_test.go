package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"oracle/internal/model"
)

func newTestReflection(p *stubProvider) *Reflection {
	g, _ := newTestGateway()
	return NewReflection(p, g)
}

func TestReflection_Generate(t *testing.T) {
	stub := &stubProvider{responses: []string{"  今日能量专注。——一盏青灯  "}}
	refl := newTestReflection(stub)

	lot := testLot()
	report, err := refl.Generate(context.Background(), DayContext{
		Lot:  lot,
		Mood: "calm",
		Todos: []model.Todo{
			{ID: "1", Text: "冥想", Completed: true, CompletionTime: "08:30", CompletionMood: "calm"},
			{ID: "2", Text: "写周报", Completed: false},
		},
		Reflection: "今天过得很充实。",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if report != "今日能量专注。——一盏青灯" {
		t.Fatalf("report=%q (should be trimmed)", report)
	}

	prompt := stub.lastReq.Prompt
	for _, want := range []string{
		"[已完成] 冥想 (完成时间: 08:30, 完成心情: 平静)",
		"[未完成] 写周报",
		"今天过得很充实。",
		"纯文本格式",
		"禅意落款",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if stub.lastReq.JSONMode {
		t.Fatalf("reflection request must be plain text, not JSON mode")
	}
}

func TestReflection_EmptyDayIsNoop(t *testing.T) {
	stub := &stubProvider{}
	refl := newTestReflection(stub)

	_, err := refl.Generate(context.Background(), DayContext{Reflection: "   "})
	if !errors.Is(err, ErrNothingToReflect) {
		t.Fatalf("err=%v, want ErrNothingToReflect", err)
	}
	if stub.calls != 0 {
		t.Fatalf("provider contacted %d times, want 0", stub.calls)
	}
}

func TestReflection_TodosAloneSuffice(t *testing.T) {
	stub := &stubProvider{responses: []string{"报告"}}
	refl := newTestReflection(stub)

	report, err := refl.Generate(context.Background(), DayContext{
		Todos: []model.Todo{{ID: "1", Text: "散步"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if report != "报告" {
		t.Fatalf("report=%q", report)
	}
}

func TestReflection_ExhaustionLeavesNoFallback(t *testing.T) {
	boom := errors.New("network down")
	stub := &stubProvider{errs: []error{boom, boom, boom}}
	refl := newTestReflection(stub)

	report, err := refl.Generate(context.Background(), DayContext{Reflection: "x"})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err=%v, want *GenerationError", err)
	}
	if report != "" {
		t.Fatalf("report=%q, want empty (no fallback text for reports)", report)
	}
	if stub.calls != 3 {
		t.Fatalf("calls=%d, want 3", stub.calls)
	}
}

// 任务列表超出 token 预算时被截断并注明省略
// The todo listing is truncated with an ellipsis note when over budget
func TestBuildReflectionPrompt_TruncatesLongTodoList(t *testing.T) {
	day := DayContext{Reflection: "x"}
	for i := 0; i < 400; i++ {
		day.Todos = append(day.Todos, model.Todo{
			ID:   fmt.Sprintf("%d", i),
			Text: strings.Repeat("长任务描述", 8),
		})
	}

	prompt := buildReflectionPrompt(day, DefaultTokenizer())
	if !strings.Contains(prompt, "项略）") {
		t.Fatalf("prompt should note truncated todos")
	}
	if got := DefaultTokenizer().CountText(prompt); got > reflectionPromptBudget+200 {
		t.Fatalf("prompt tokens=%d, want ≤ budget (+slack)", got)
	}
}
