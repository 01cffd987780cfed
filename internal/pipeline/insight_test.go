package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"oracle/internal/catalog"
	"oracle/internal/model"
	"oracle/internal/provider"
)

// stubProvider 按序返回预置响应的假 provider
// stubProvider replays canned responses in order
type stubProvider struct {
	responses []string
	errs      []error
	calls     int
	lastReq   provider.Request
}

func (s *stubProvider) Complete(ctx context.Context, req provider.Request) (string, error) {
	s.lastReq = req
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", errors.New("stub exhausted")
}

func (s *stubProvider) Name() string                { return "stub" }
func (s *stubProvider) CurrentModel() string        { return "stub-model" }
func (s *stubProvider) SetModel(model string) error { return nil }

const validInsightJSON = `{
	"interpretation": "静心感受当下的能量流转。",
	"recommendation": {
		"eat": {"title": "小米粥", "description": "温润养胃。"},
		"wear": {"title": "莫兰迪色", "description": "宁静平和。"},
		"use": {"title": "瑜伽垫", "description": "与身体对话。"},
		"action": {"title": "冥想", "description": "沉淀思绪。"}
	}
}`

func testLot() *model.Lot {
	lot := catalog.Lots[2] // 中吉 / calm vibe
	return &lot
}

func newTestInsight(p provider.Provider) *Insight {
	g, _ := newTestGateway()
	return NewInsight(p, g, catalog.NewEngineWithSeed(1))
}

func TestInsight_Generate(t *testing.T) {
	stub := &stubProvider{responses: []string{validInsightJSON}}
	ins := newTestInsight(stub)

	res, err := ins.Generate(context.Background(), testLot(), "calm", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Interpretation == "" {
		t.Fatalf("empty interpretation")
	}
	if res.Recommendation.Eat.Title != "小米粥" {
		t.Fatalf("recommendation=%+v", res.Recommendation)
	}

	if !stub.lastReq.JSONMode {
		t.Fatalf("insight request must use JSON mode")
	}
	if !strings.Contains(stub.lastReq.Prompt, "中吉") {
		t.Fatalf("prompt missing lot title: %s", stub.lastReq.Prompt)
	}
	if !strings.Contains(stub.lastReq.Prompt, "平静") {
		t.Fatalf("prompt missing mood label")
	}
}

func TestInsight_IntentionInfluencesPrompt(t *testing.T) {
	stub := &stubProvider{responses: []string{validInsightJSON}}
	ins := newTestInsight(stub)

	if _, err := ins.Generate(context.Background(), testLot(), "calm", "想顺利完成面试"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(stub.lastReq.Prompt, "想顺利完成面试") {
		t.Fatalf("prompt missing intention text")
	}
	if !strings.Contains(stub.lastReq.Prompt, "务必结合这个意愿") {
		t.Fatalf("prompt missing the must-influence instruction")
	}
}

func TestInsight_NoLotIsNoop(t *testing.T) {
	stub := &stubProvider{}
	ins := newTestInsight(stub)

	_, err := ins.Generate(context.Background(), nil, "calm", "")
	if !errors.Is(err, ErrNoCurrentLot) {
		t.Fatalf("err=%v, want ErrNoCurrentLot", err)
	}
	if stub.calls != 0 {
		t.Fatalf("provider contacted %d times, want 0", stub.calls)
	}
}

// 解析失败与请求失败同样消耗重试预算
// Parse failures consume the retry budget like request failures
func TestInsight_ParseFailureCountsTowardBudget(t *testing.T) {
	stub := &stubProvider{responses: []string{"not json", "{}", validInsightJSON}}
	ins := newTestInsight(stub)

	res, err := ins.Generate(context.Background(), testLot(), "tired", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if stub.calls != 3 {
		t.Fatalf("calls=%d, want 3 (two parse failures then success)", stub.calls)
	}
	if res.Recommendation.Action.Title == "" {
		t.Fatalf("recommendation incomplete after recovery")
	}
}

func TestInsight_ExhaustionYieldsGenerationError(t *testing.T) {
	stub := &stubProvider{responses: []string{"bad", "bad", "bad"}}
	ins := newTestInsight(stub)

	_, err := ins.Generate(context.Background(), testLot(), "sad", "")
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err=%v, want *GenerationError", err)
	}
	if stub.calls != 3 {
		t.Fatalf("calls=%d, want exactly 3", stub.calls)
	}
}

func TestParseInsight_StripsCodeFence(t *testing.T) {
	fenced := "```json\n" + validInsightJSON + "\n```"
	res, err := parseInsight(fenced)
	if err != nil {
		t.Fatalf("parseInsight: %v", err)
	}
	if res.Interpretation != "静心感受当下的能量流转。" {
		t.Fatalf("interpretation=%q", res.Interpretation)
	}
}

func TestParseInsight_RejectsIncompleteCategories(t *testing.T) {
	missing := `{"interpretation":"x","recommendation":{"eat":{"title":"a"},"wear":{"title":"b"},"use":{"title":"c"},"action":{"title":""}}}`
	if _, err := parseInsight(missing); err == nil {
		t.Fatalf("parseInsight should reject an empty category title")
	}
}
