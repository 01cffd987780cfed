package config

const (
	DefaultProviderTimeoutMS = 60000

	// 摇签动画时长 / shake animation length
	DefaultShakeDurationMS = 1200
)
