package config

import "github.com/bbq191/ridprobe/internal/rid"

// Config ridprobe 运行配置
type Config struct {
	// FallbackRID 表查询无法得出结论时采用的兜底运行时标识
	FallbackRID string `mapstructure:"fallback_rid" validate:"omitempty,rid"`
	// ReleasePaths 覆盖 os-release 文件探测路径，按顺序尝试
	ReleasePaths []string `mapstructure:"release_paths" validate:"omitempty,dive,abspath"`
	// LineSeparator os-release 文件的行分隔符约定
	LineSeparator string `mapstructure:"line_separator" validate:"omitempty,oneof=lf crlf"`
	// Format 检测结果的输出格式
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json template"`
	// Template Format 为 template 时使用的模板文本
	Template string `mapstructure:"template"`
	// Verbose 详细日志输出
	Verbose bool `mapstructure:"verbose"`
}

// LineSep 将配置的分隔符约定转换为实际字符序列，未配置时默认 LF
func (c *Config) LineSep() string {
	if c.LineSeparator == "crlf" {
		return "\r\n"
	}
	return "\n"
}

// FallbackProvider 构造配置驱动的兜底提供者；未配置时返回 nil
func (c *Config) FallbackProvider() rid.FallbackProvider {
	if c.FallbackRID == "" {
		return nil
	}
	return rid.StaticFallback(c.FallbackRID)
}
