package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/bbq191/ridprobe/internal/platform"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Doctor 环境诊断器，运行一组互不依赖的检查项
type Doctor struct {
	checks []Check
	logger *logrus.Logger
	quiet  bool
}

// NewDoctor 创建环境诊断器，注册默认检查电池
func NewDoctor(releasePaths []string, logger *logrus.Logger, quiet bool) *Doctor {
	d := &Doctor{logger: logger, quiet: quiet}
	d.registerDefaultChecks(releasePaths)
	return d
}

// registerDefaultChecks 注册默认检查项
func (d *Doctor) registerDefaultChecks(releasePaths []string) {
	d.checks = append(d.checks, Check{
		Name: "操作系统支持",
		Run: func(ctx context.Context) (string, error) {
			switch runtime.GOOS {
			case "windows", "darwin", "linux":
				return runtime.GOOS, nil
			}
			return "", fmt.Errorf("不支持的操作系统: %s", runtime.GOOS)
		},
	})

	if runtime.GOOS == "windows" {
		d.checks = append(d.checks, Check{
			Name: "架构环境变量",
			Run: func(ctx context.Context) (string, error) {
				arch, ok := os.LookupEnv("PROCESSOR_ARCHITECTURE")
				if !ok {
					return "", fmt.Errorf("PROCESSOR_ARCHITECTURE 未设置")
				}
				return arch, nil
			},
			Warn: true,
		})
	} else {
		d.checks = append(d.checks, Check{
			Name: "uname 命令",
			Run: func(ctx context.Context) (string, error) {
				path, err := exec.LookPath("uname")
				if err != nil {
					return "", fmt.Errorf("uname 不在 PATH 中: %w", err)
				}
				return path, nil
			},
		})
	}

	if runtime.GOOS == "linux" {
		if len(releasePaths) == 0 {
			releasePaths = platform.DefaultReleasePaths
		}
		paths := releasePaths
		d.checks = append(d.checks, Check{
			Name: "os-release 文件",
			Run: func(ctx context.Context) (string, error) {
				for _, path := range paths {
					if _, err := os.ReadFile(path); err == nil {
						return path, nil
					}
				}
				// 两个路径都不可读时检测会降级为 unknown 发行版，不算致命
				return "", fmt.Errorf("所有候选路径均不可读: %v", paths)
			},
			Warn: true,
		})
	}
}

// RunChecks 并发执行全部检查项并汇总报告
func (d *Doctor) RunChecks(ctx context.Context) *Report {
	report := &Report{Results: make([]CheckResult, len(d.checks))}

	var bar *progressbar.ProgressBar
	if !d.quiet {
		bar = progressbar.NewOptions(len(d.checks),
			progressbar.OptionSetDescription("🔍 环境检查"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerPadding: "░",
				BarStart:      "▐",
				BarEnd:        "▌",
			}),
			progressbar.OptionShowCount(),
			progressbar.OptionSetRenderBlankState(true),
		)
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for i, check := range d.checks {
		i, check := i, check
		g.Go(func() error {
			result := CheckResult{Name: check.Name}

			msg, err := check.Run(gctx)
			switch {
			case err == nil:
				result.Status = StatusPass
				result.Message = msg
			case check.Warn:
				result.Status = StatusWarn
				result.Message = err.Error()
			default:
				result.Status = StatusFail
				result.Message = err.Error()
			}

			mu.Lock()
			report.Results[i] = result
			if bar != nil {
				bar.Add(1)
			}
			mu.Unlock()
			return nil
		})
	}

	// 检查项的失败记录在结果里，不经由 errgroup 传播
	g.Wait()

	if bar != nil {
		bar.Finish()
		fmt.Println()
	}

	for _, result := range report.Results {
		switch result.Status {
		case StatusPass:
			report.Passed++
			d.logger.Debugf("检查通过: %s (%s)", result.Name, result.Message)
		case StatusWarn:
			report.Warned++
			d.logger.Warnf("检查警告: %s: %s", result.Name, result.Message)
		case StatusFail:
			report.Failed++
			d.logger.Errorf("检查失败: %s: %s", result.Name, result.Message)
		}
	}

	return report
}
