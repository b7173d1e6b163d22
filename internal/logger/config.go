package logger

import (
	"os"
	"strings"
)

// ConfigFromEnv は環境変数から設定を読み込む
//
// 優先順位: ISSUE_TRANSFER_LOG_LEVEL > LOG_LEVEL > DEBUG
func ConfigFromEnv() *Config {
	config := &Config{
		Level:  "info",
		Format: "text",
		Output: os.Stdout,
	}

	if isTrue(os.Getenv("DEBUG")) {
		config.Level = "debug"
	}

	if level := firstNonEmpty(os.Getenv("ISSUE_TRANSFER_LOG_LEVEL"), os.Getenv("LOG_LEVEL")); level != "" {
		config.Level = strings.ToLower(level)
	}

	if format := firstNonEmpty(os.Getenv("ISSUE_TRANSFER_LOG_FORMAT"), os.Getenv("LOG_FORMAT")); format != "" {
		config.Format = strings.ToLower(format)
	}

	return config
}

// NewFromEnv は環境変数から設定を読み込んでロガーを作成する
func NewFromEnv(opts ...Option) (Logger, error) {
	config := ConfigFromEnv()
	base := []Option{
		WithLevel(config.Level),
		WithFormat(config.Format),
		WithOutput(config.Output),
	}
	return New(append(base, opts...)...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// isTrue は文字列がtrueを表すかチェックする
func isTrue(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
