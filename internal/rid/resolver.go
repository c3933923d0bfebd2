package rid

import (
	"context"
	"fmt"

	"github.com/bbq191/ridprobe/internal/platform"
	"github.com/sirupsen/logrus"
)

// PlatformDetector 平台检测能力，由 platform.Detector 满足
type PlatformDetector interface {
	DetectPlatform(ctx context.Context) (*platform.PlatformIdentity, error)
}

// Resolver 运行时标识解析器
type Resolver struct {
	logger   *logrus.Logger
	fallback FallbackProvider // 可为 nil
}

// NewResolver 创建新的解析器；fallback 可为 nil
func NewResolver(logger *logrus.Logger, fallback FallbackProvider) *Resolver {
	return &Resolver{logger: logger, fallback: fallback}
}

// Detect 执行完整的平台检测并填充运行时标识
//
// 解析失败（架构或发行版不受支持）不影响整体结果，只把 RuntimeID
// 降级为空；检测本身的致命错误原样上报。
func (r *Resolver) Detect(ctx context.Context, detector PlatformDetector) (*platform.PlatformIdentity, error) {
	identity, err := detector.DetectPlatform(ctx)
	if err != nil {
		return nil, err
	}

	runtimeID, err := r.Resolve(identity.OS, identity.Architecture, identity.Distribution)
	if err != nil {
		r.logger.Warnf("运行时标识解析失败: %v", err)
		return identity, nil
	}

	identity.RuntimeID = runtimeID
	return identity, nil
}

// Resolve 将操作系统、架构和发行版映射为运行时标识
func (r *Resolver) Resolve(os platform.OSKind, arch string, dist *platform.DistributionIdentity) (string, error) {
	switch os {
	case platform.OSWindows:
		switch arch {
		case "x86":
			return WindowsX86, nil
		case "x86_64":
			return WindowsX64, nil
		}
		return "", fmt.Errorf("%w: windows/%s", ErrUnsupportedArchitecture, arch)

	case platform.OSMacOS:
		if arch == "x86_64" {
			return MacOSX64, nil
		}
		return "", fmt.Errorf("%w: macos/%s", ErrUnsupportedArchitecture, arch)

	case platform.OSLinux:
		if arch != "x86_64" {
			return "", fmt.Errorf("%w: linux/%s", ErrUnsupportedArchitecture, arch)
		}
		return r.resolveLinux(dist)
	}

	return "", fmt.Errorf("%w: %s", platform.ErrUnsupportedPlatform, os)
}

// resolveLinux 三级查询：精确表 → 派生扩展表 → IDLike 祖先链
func (r *Resolver) resolveLinux(dist *platform.DistributionIdentity) (string, error) {
	if dist == nil {
		dist = &platform.DistributionIdentity{
			Name:    platform.UnknownValue,
			Version: platform.UnknownValue,
		}
	}

	m := exactLookup(dist.Name, dist.Version)

	// 精确查询无法得出结论时咨询兜底提供者，命中即采纳
	if m.State != MatchFound && r.fallback != nil {
		if override, ok := r.fallback.FallbackRuntimeID(); ok {
			r.logger.Debugf("采纳兜底运行时标识: %s", override)
			return override, nil
		}
	}

	if m.State == MatchUnknownDistribution {
		m = fuzzyLookup(dist.Name, dist.Version)
	}

	// 祖先发行版按声明顺序逐个尝试，版本沿用原始值
	if m.State == MatchUnknownDistribution {
		for _, ancestor := range dist.IDLike {
			m = fuzzyLookup(ancestor, dist.Version)
			if m.State != MatchUnknownDistribution {
				break
			}
		}
	}

	if m.State == MatchFound {
		return m.RuntimeID, nil
	}
	return "", fmt.Errorf("%w: %s %s", ErrUnsupportedDistribution, dist.Name, dist.Version)
}
