package qwen

const (
	DefaultModel = "qwen-plus"

	// DefaultBaseURL is the international DashScope endpoint in OpenAI-compatible mode.
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)
