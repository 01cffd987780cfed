// Package pipeline 实现 AI 内容生成管线：统一的重试网关、灵感解读管线、
// 成长报告管线，以及提示词构建与 token 预算。
// Package pipeline implements the AI content-generation pipelines: the shared
// retry gateway, the insight pipeline, the reflection pipeline, and prompt
// construction with token budgeting.
package pipeline

import (
	"context"
	"fmt"
	"time"
)

const (
	// DefaultMaxAttempts 总尝试次数：首次 + 2 次重试
	// DefaultMaxAttempts is the total attempt budget: initial + 2 retries
	DefaultMaxAttempts = 3

	// DefaultBaseDelay 线性退避基数：第 k 次重试前等待 base*k
	// DefaultBaseDelay is the linear backoff base: retry k waits base*k
	DefaultBaseDelay = time.Second
)

// GenerationError 生成失败：重试预算耗尽后返回。调用方据此降级
// （灵感管线替换为固定兜底文案，报告管线留空），绝不上抛为硬错误。
// GenerationError is returned once the retry budget is exhausted. Callers
// degrade from it (the insight pipeline substitutes the fixed fallback text,
// the reflection pipeline leaves the report unset); it is never surfaced as
// a hard failure.
type GenerationError struct {
	Attempts int
	Last     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *GenerationError) Unwrap() error { return e.Last }

// Gateway 两条管线共用的重试网关。策略集中在这里：线性退避的有界重试，
// 每次尝试彼此独立，不携带部分结果。
// Gateway is the retry gateway shared by both pipelines. The policy lives
// here and only here: bounded retries with linear backoff, every attempt
// independent with no partial-result carryover.
type Gateway struct {
	maxAttempts int
	baseDelay   time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewGateway 创建默认策略的网关（3 次尝试，1s/2s 退避）
// NewGateway creates a gateway with the default policy (3 attempts, 1s/2s backoff)
func NewGateway() *Gateway {
	return &Gateway{
		maxAttempts: DefaultMaxAttempts,
		baseDelay:   DefaultBaseDelay,
		sleep:       sleepCtx,
	}
}

// SetSleep 替换退避等待实现，用于测试
// SetSleep overrides the backoff sleeper for tests
func (g *Gateway) SetSleep(fn func(ctx context.Context, d time.Duration) error) {
	if fn != nil {
		g.sleep = fn
	}
}

// Invoke 以有界重试执行 op。op 内部包含解析：解析失败与网络失败同样
// 计入尝试预算。ctx 取消会立即中止并返回 ctx 错误。
// Invoke runs op under the bounded retry policy. op includes parsing, so a
// parse failure counts toward the attempt budget exactly like a network
// failure. Context cancellation aborts immediately with the ctx error.
func (g *Gateway) Invoke(ctx context.Context, op func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if attempt > 1 {
			// 第 k 次重试前等待 base*k（k=1 即 1s，k=2 即 2s）
			// Retry k waits base*k (1s, then 2s)
			delay := g.baseDelay * time.Duration(attempt-1)
			if err := g.sleep(ctx, delay); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := op(ctx); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return &GenerationError{Attempts: g.maxAttempts, Last: lastErr}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
