package pipeline

import (
	"context"
	"errors"
	"strings"

	"oracle/internal/model"
	"oracle/internal/provider"
)

// ErrNothingToReflect 既无感悟也无任务时报告管线直接返回，不触达网关
// ErrNothingToReflect is returned when there is neither a reflection nor
// any todo; the gateway is never contacted in that case
var ErrNothingToReflect = errors.New("nothing to reflect on")

// DayContext 生成报告所需的当日快照
// DayContext is the day snapshot the report is generated from
type DayContext struct {
	Lot        *model.Lot
	Mood       model.MoodID
	Todos      []model.Todo
	Reflection string
}

// Reflection 成长报告管线：当日签位、心情、任务轨迹与感悟 → 自由文本报告。
// 格式约束（纯文本、字数区间、禅意落款）只存在于提示词层面，生成结果不做本地校验。
// Reflection produces the free-form growth report from the day's lot, mood,
// todo trail, and reflection text. Formatting constraints (plain text,
// length window, zen signature) live in the prompt only; the output is not
// validated locally.
type Reflection struct {
	provider  provider.Provider
	gateway   *Gateway
	tokenizer *Tokenizer
}

// NewReflection 创建报告管线
// NewReflection creates the reflection pipeline
func NewReflection(p provider.Provider, g *Gateway) *Reflection {
	return &Reflection{provider: p, gateway: g, tokenizer: DefaultTokenizer()}
}

// Generate 生成成长报告。重试预算与灵感管线完全一致；预算耗尽返回
// *GenerationError，调用方保持报告字段为空（与灵感管线的兜底文案不同：
// 报告缺失是可接受的渲染状态）。
// Generate produces the report under the same retry budget as the insight
// pipeline. On exhaustion the caller leaves the report unset: unlike the
// insight fallback, a missing report is an acceptable rendering state.
func (p *Reflection) Generate(ctx context.Context, day DayContext) (string, error) {
	if strings.TrimSpace(day.Reflection) == "" && len(day.Todos) == 0 {
		return "", ErrNothingToReflect
	}

	req := provider.Request{
		System: systemPersona + "你洞察人心。",
		Prompt: buildReflectionPrompt(day, p.tokenizer),
	}

	var report string
	err := p.gateway.Invoke(ctx, func(ctx context.Context) error {
		raw, err := p.provider.Complete(ctx, req)
		if err != nil {
			return err
		}
		report = strings.TrimSpace(raw)
		return nil
	})
	if err != nil {
		return "", err
	}
	return report, nil
}
