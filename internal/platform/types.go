package platform

import "strings"

// UnknownValue 无法确定的发行版名称/版本使用的哨兵值
const UnknownValue = "unknown"

// OSKind 操作系统类型
type OSKind string

const (
	OSWindows OSKind = "windows" // Windows 系统
	OSMacOS   OSKind = "macos"   // macOS 系统
	OSLinux   OSKind = "linux"   // Linux 系统
)

// DistributionIdentity Linux 发行版标识
type DistributionIdentity struct {
	Name    string   // 发行版 ID（小写），无法确定时为 "unknown"
	Version string   // 发行版版本，无法确定时为 "unknown"
	IDLike  []string // 祖先发行版 ID 列表；nil 表示 ID_LIKE 字段从未出现
}

// PlatformIdentity 平台检测的最终结果
type PlatformIdentity struct {
	OS           OSKind                // 操作系统类型
	Architecture string                // 系统架构（如 x86、x86_64 或 uname 原始输出）
	Distribution *DistributionIdentity // 发行版信息（仅 Linux）
	RuntimeID    string                // 运行时标识；解析失败时为空
}

// String 以 "平台, 架构, 发行版" 形式渲染
func (p *PlatformIdentity) String() string {
	parts := []string{string(p.OS), p.Architecture}
	if p.Distribution != nil {
		parts = append(parts, p.Distribution.Name+" "+p.Distribution.Version)
	}
	return strings.Join(parts, ", ")
}

// HasRuntimeID 检查运行时标识是否解析成功
func (p *PlatformIdentity) HasRuntimeID() bool {
	return p.RuntimeID != ""
}
