package rid

import "errors"

var (
	// ErrUnsupportedArchitecture 架构不在给定操作系统的支持范围内
	ErrUnsupportedArchitecture = errors.New("unsupported architecture")
	// ErrUnsupportedDistribution 发行版/版本/祖先链穷尽后仍无匹配
	ErrUnsupportedDistribution = errors.New("unsupported distribution")
)

// MatchState 兼容性表查询的三态结果
type MatchState int

const (
	MatchFound               MatchState = iota // 命中，RuntimeID 有效
	MatchUnknownDistribution                   // 发行版名称不在表中
	MatchUnknownVersion                        // 名称已识别但版本无匹配规则
)

// Match 一次表查询的结果
type Match struct {
	State     MatchState
	RuntimeID string // 仅 State == MatchFound 时有效
}

// FallbackProvider 运行时标识的兜底提供者
//
// 仅在表查询无法得出结论时被咨询；返回 false 表示没有可用的覆盖值。
type FallbackProvider interface {
	FallbackRuntimeID() (string, bool)
}

// StaticFallback 返回固定运行时标识的兜底提供者
type StaticFallback string

// FallbackRuntimeID 实现 FallbackProvider
func (s StaticFallback) FallbackRuntimeID() (string, bool) {
	return string(s), s != ""
}
