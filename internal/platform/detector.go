package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrUnsupportedPlatform 宿主操作系统不在支持范围内
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// DefaultReleasePaths os-release 文件的探测路径，按顺序尝试
var DefaultReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Detector 平台检测器
//
// 所有外部依赖（GOOS、环境变量、uname 调用、文件路径）都可注入，
// 便于在任意宿主上测试全部检测分支。
type Detector struct {
	logger       *logrus.Logger
	goos         string
	lookupEnv    func(string) (string, bool)
	unameMachine func(ctx context.Context) (string, error)
	releasePaths []string
	lineSep      string
}

// NewDetector 创建新的平台检测器
func NewDetector(logger *logrus.Logger) *Detector {
	return &Detector{
		logger:       logger,
		goos:         runtime.GOOS,
		lookupEnv:    os.LookupEnv,
		unameMachine: runUnameMachine,
		releasePaths: DefaultReleasePaths,
		lineSep:      "\n",
	}
}

// SetReleasePaths 覆盖 os-release 探测路径（配置项 release_paths）
func (d *Detector) SetReleasePaths(paths []string) {
	if len(paths) > 0 {
		d.releasePaths = paths
	}
}

// SetLineSeparator 覆盖 os-release 文件的行分隔符
func (d *Detector) SetLineSeparator(sep string) {
	if sep != "" {
		d.lineSep = sep
	}
}

// DetectPlatform 检测当前平台的操作系统、架构和发行版信息
//
// 不支持的操作系统和 uname 调用失败是致命错误，没有部分结果；
// 返回结果中的 RuntimeID 留空，由上层解析后填充。
func (d *Detector) DetectPlatform(ctx context.Context) (*PlatformIdentity, error) {
	osKind, err := d.detectOSKind()
	if err != nil {
		return nil, err
	}

	identity := &PlatformIdentity{OS: osKind}

	switch osKind {
	case OSWindows:
		identity.Architecture = d.detectWindowsArchitecture()

	case OSMacOS:
		arch, err := d.detectUnixArchitecture(ctx)
		if err != nil {
			return nil, err
		}
		identity.Architecture = arch

	case OSLinux:
		// uname 调用与 os-release 读取互不依赖，可并发执行
		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			arch, err := d.detectUnixArchitecture(gctx)
			if err != nil {
				return err
			}
			identity.Architecture = arch
			return nil
		})
		g.Go(func() error {
			identity.Distribution = d.detectDistribution()
			return nil
		})

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	d.logger.Debugf("平台检测完成: %s", identity.String())
	return identity, nil
}

// detectOSKind 将宿主平台字符串映射为操作系统类型
func (d *Detector) detectOSKind() (OSKind, error) {
	switch d.goos {
	case "windows":
		return OSWindows, nil
	case "darwin":
		return OSMacOS, nil
	case "linux":
		return OSLinux, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, d.goos)
	}
}

// detectWindowsArchitecture 通过环境变量判定 Windows 架构，永不失败
//
// 原生架构为 x86 且不存在 WOW64 标记时才是真 32 位，其余一律按
// x86_64 处理（含 32 位进程跑在 64 位系统上的场景）。
func (d *Detector) detectWindowsArchitecture() string {
	arch, _ := d.lookupEnv("PROCESSOR_ARCHITECTURE")
	_, wow64 := d.lookupEnv("PROCESSOR_ARCHITEW6432")

	if arch == "x86" && !wow64 {
		return "x86"
	}
	return "x86_64"
}

// detectUnixArchitecture 调用 uname -m 获取机器硬件名
//
// 命令无法执行是致命错误；命令成功但无输出时架构为空串。
func (d *Detector) detectUnixArchitecture(ctx context.Context) (string, error) {
	out, err := d.unameMachine(ctx)
	if err != nil {
		return "", fmt.Errorf("执行 uname -m 失败: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// detectDistribution 读取并解析 os-release 文件
//
// 按顺序探测候选路径，任一路径读取成功即解析；全部失败时静默
// 返回 unknown/unknown 标识，不上报错误。
func (d *Detector) detectDistribution() *DistributionIdentity {
	for _, path := range d.releasePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			d.logger.Debugf("读取 %s 失败: %v", path, err)
			continue
		}
		d.logger.Debugf("使用发行版信息文件: %s", path)
		return ParseReleaseInfo(string(data), d.lineSep)
	}

	d.logger.Debug("所有 os-release 路径均不可读，发行版标记为 unknown")
	return &DistributionIdentity{Name: UnknownValue, Version: UnknownValue}
}

// runUnameMachine 默认的 uname -m 执行器
func runUnameMachine(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "uname", "-m").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
