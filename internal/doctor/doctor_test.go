package doctor

import (
	"context"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
)

// newTestDoctor 创建带自定义检查项的诊断器
func newTestDoctor(checks []Check) *Doctor {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return &Doctor{checks: checks, logger: logger, quiet: true}
}

// TestRunChecksAllPass 测试全部通过的检查电池
func TestRunChecksAllPass(t *testing.T) {
	d := newTestDoctor([]Check{
		{Name: "a", Run: func(ctx context.Context) (string, error) { return "ok", nil }},
		{Name: "b", Run: func(ctx context.Context) (string, error) { return "ok", nil }},
	})

	report := d.RunChecks(context.Background())
	if report.Passed != 2 || report.Warned != 0 || report.Failed != 0 {
		t.Errorf("统计 = %d/%d/%d，期望 2/0/0", report.Passed, report.Warned, report.Failed)
	}
	if !report.Healthy() {
		t.Error("无失败时应判定健康")
	}
}

// TestRunChecksWarnAndFail 测试警告与失败的区分
func TestRunChecksWarnAndFail(t *testing.T) {
	d := newTestDoctor([]Check{
		{Name: "pass", Run: func(ctx context.Context) (string, error) { return "ok", nil }},
		{Name: "warn", Warn: true, Run: func(ctx context.Context) (string, error) {
			return "", fmt.Errorf("非致命")
		}},
		{Name: "fail", Run: func(ctx context.Context) (string, error) {
			return "", fmt.Errorf("致命")
		}},
	})

	report := d.RunChecks(context.Background())
	if report.Passed != 1 || report.Warned != 1 || report.Failed != 1 {
		t.Errorf("统计 = %d/%d/%d，期望 1/1/1", report.Passed, report.Warned, report.Failed)
	}
	if report.Healthy() {
		t.Error("有失败时不应判定健康")
	}

	// 结果顺序与注册顺序一致
	wantOrder := []string{"pass", "warn", "fail"}
	for i, result := range report.Results {
		if result.Name != wantOrder[i] {
			t.Errorf("结果[%d] = %s，期望 %s", i, result.Name, wantOrder[i])
		}
	}
}

// TestNewDoctorRegistersChecks 测试默认检查电池非空
func TestNewDoctorRegistersChecks(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	d := NewDoctor(nil, logger, true)
	if len(d.checks) == 0 {
		t.Fatal("默认检查电池不应为空")
	}

	report := d.RunChecks(context.Background())
	if len(report.Results) != len(d.checks) {
		t.Errorf("结果数 = %d，期望 %d", len(report.Results), len(d.checks))
	}
}
