package doctor

import "context"

// CheckStatus 检查项结果状态
type CheckStatus int

const (
	StatusPass CheckStatus = iota // 通过
	StatusWarn                    // 非致命问题
	StatusFail                    // 失败
)

// Check 单个环境检查项
type Check struct {
	Name string                                    // 检查项名称
	Run  func(ctx context.Context) (string, error) // 执行检查，返回附加说明
	Warn bool                                      // 失败时降级为警告
}

// CheckResult 检查项执行结果
type CheckResult struct {
	Name    string      // 检查项名称
	Status  CheckStatus // 结果状态
	Message string      // 说明或错误信息
}

// Report 一次检查电池的汇总
type Report struct {
	Results []CheckResult // 按注册顺序排列
	Passed  int
	Warned  int
	Failed  int
}

// Healthy 判断环境是否无致命问题
func (r *Report) Healthy() bool {
	return r.Failed == 0
}
