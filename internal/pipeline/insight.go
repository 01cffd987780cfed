package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"oracle/internal/catalog"
	"oracle/internal/model"
	"oracle/internal/provider"
)

// FallbackInterpretation 重试耗尽后的固定兜底解读文案
// FallbackInterpretation is the fixed interpretation shown after the retry
// budget is exhausted
const FallbackInterpretation = "灵感正在酝酿中，请保持内心的平静。目前连接星辰的通道有些拥挤，请稍后再试。"

// ErrNoCurrentLot 没有已抽取的签位时灵感管线直接返回，不触达网关
// ErrNoCurrentLot is returned when no lot has been drawn; the gateway is
// never contacted in that case
var ErrNoCurrentLot = errors.New("no current lot")

// InsightResult 一次灵感生成的结构化结果
// InsightResult is the structured output of one insight generation
type InsightResult struct {
	Interpretation string
	Recommendation model.Recommendation
}

// Insight 灵感解读管线：签位 + 心情 +（可选）意愿 → 解读与四类建议
// Insight generates the interpretation and four-category recommendation
// from the drawn lot, the mood, and an optional user intention
type Insight struct {
	provider provider.Provider
	gateway  *Gateway
	engine   *catalog.Engine
}

// NewInsight 创建灵感管线
// NewInsight creates the insight pipeline
func NewInsight(p provider.Provider, g *Gateway, engine *catalog.Engine) *Insight {
	return &Insight{provider: p, gateway: g, engine: engine}
}

// Generate 生成灵感解读。解析失败与请求失败同样计入重试预算；
// 预算耗尽返回 *GenerationError，由调用方降级处理。
// Generate produces the insight. Parse failures count toward the retry
// budget like request failures; exhaustion yields *GenerationError for the
// caller to degrade from.
func (p *Insight) Generate(ctx context.Context, lot *model.Lot, mood model.MoodID, intention string) (InsightResult, error) {
	if lot == nil {
		return InsightResult{}, ErrNoCurrentLot
	}

	var seed *model.Recommendation
	if s, ok := p.engine.PoolSample(lot.Vibe); ok {
		seed = &s
	}

	req := provider.Request{
		System:   systemPersona,
		Prompt:   buildInsightPrompt(*lot, mood, intention, seed),
		JSONMode: true,
	}

	var result InsightResult
	err := p.gateway.Invoke(ctx, func(ctx context.Context) error {
		raw, err := p.provider.Complete(ctx, req)
		if err != nil {
			return err
		}
		parsed, err := parseInsight(raw)
		if err != nil {
			return err
		}
		result = parsed
		return nil
	})
	if err != nil {
		return InsightResult{}, err
	}
	return result, nil
}

type insightPayload struct {
	Interpretation string                `json:"interpretation"`
	Recommendation *model.Recommendation `json:"recommendation"`
}

// parseInsight 严格解析结构化响应：JSON 合法、解读非空、四类建议齐全
// parseInsight parses the structured response strictly: valid JSON,
// non-empty interpretation, all four categories present
func parseInsight(raw string) (InsightResult, error) {
	raw = stripCodeFence(raw)

	var payload insightPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return InsightResult{}, fmt.Errorf("parse insight json: %w", err)
	}
	if strings.TrimSpace(payload.Interpretation) == "" {
		return InsightResult{}, fmt.Errorf("insight missing interpretation")
	}
	if payload.Recommendation == nil {
		return InsightResult{}, fmt.Errorf("insight missing recommendation")
	}
	rec := *payload.Recommendation
	for _, d := range []model.RecommendationDetail{rec.Eat, rec.Wear, rec.Use, rec.Action} {
		if strings.TrimSpace(d.Title) == "" {
			return InsightResult{}, fmt.Errorf("insight recommendation category incomplete")
		}
	}

	return InsightResult{
		Interpretation: strings.TrimSpace(payload.Interpretation),
		Recommendation: rec,
	}, nil
}

// stripCodeFence 去掉模型偶尔包裹的 ```json 围栏
// stripCodeFence removes the ```json fence some models wrap output in
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}
