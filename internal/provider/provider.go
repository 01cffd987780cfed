package provider

import "context"

// Request 封装一次内容生成请求
// Request wraps a single content-generation call
type Request struct {
	System      string
	Prompt      string
	JSONMode    bool
	Temperature *float64
	MaxTokens   int
}

// Provider 生成后端接口，面向未来多 provider 扩展
// Provider is the generation backend interface, designed for future
// multi-provider extensibility
type Provider interface {
	// Complete 发送请求并返回完整文本响应
	// Complete sends a request and returns the full text response
	Complete(ctx context.Context, req Request) (string, error)

	// Name 返回 provider 名称
	// Name returns the provider name
	Name() string

	// CurrentModel 返回当前活跃模型
	// CurrentModel returns the current active model
	CurrentModel() string

	// SetModel 切换活跃模型
	// SetModel switches the active model
	SetModel(model string) error
}
