package rid

import "strings"

// Windows 与 macOS 的固定运行时标识
const (
	WindowsX86 = "win7-x86"
	WindowsX64 = "win7-x64"
	MacOSX64   = "osx.10.11-x64" // 支持的最老 macOS 发布线
)

// versionRule 版本匹配规则：默认前缀匹配，exact 为真时要求完全相等
type versionRule struct {
	version string
	exact   bool
	rid     string
}

// distroRules 单个发行版 ID 对应的有序规则列表
type distroRules struct {
	id    string
	rules []versionRule
}

// exactTable 官方发行版兼容性表
var exactTable = []distroRules{
	{id: "ubuntu", rules: []versionRule{
		{version: "14", rid: "ubuntu.14.04-x64"},
		{version: "16", rid: "ubuntu.16.04-x64"},
	}},
	{id: "centos", rules: []versionRule{
		{version: "7", rid: "centos.7-x64"},
	}},
	{id: "ol", rules: []versionRule{
		// Oracle Linux 与 CentOS 同源
		{version: "7", rid: "centos.7-x64"},
	}},
	{id: "fedora", rules: []versionRule{
		{version: "23", exact: true, rid: "fedora.23-x64"},
		{version: "24", exact: true, rid: "fedora.24-x64"},
	}},
	{id: "opensuse", rules: []versionRule{
		{version: "13.2", rid: "opensuse.13.2-x64"},
		{version: "42.1", rid: "opensuse.42.1-x64"},
	}},
	{id: "rhel", rules: []versionRule{
		{version: "7", rid: "rhel.7-x64"},
	}},
	{id: "debian", rules: []versionRule{
		{version: "8", rid: "debian.8-x64"},
	}},
	{id: "galliumos", rules: []versionRule{
		{version: "2.0", rid: "ubuntu.16.04-x64"},
	}},
}

// derivativeTable 社区/派生发行版扩展表，模糊查询先走官方表再落到这里
var derivativeTable = []distroRules{
	{id: "linuxmint", rules: []versionRule{
		{version: "18", rid: "ubuntu.16.04-x64"},
	}},
	{id: "elementary", rules: elementaryRules},
	{id: "elementary OS", rules: elementaryRules},
	{id: "zorin", rules: zorinRules},
	{id: "Zorin OS", rules: zorinRules},
}

var elementaryRules = []versionRule{
	{version: "0.3", rid: "ubuntu.14.04-x64"}, // Freya 基于 Ubuntu 14.04
	{version: "0.4", rid: "ubuntu.16.04-x64"}, // Loki 基于 Ubuntu 16.04
}

var zorinRules = []versionRule{
	{version: "12", rid: "ubuntu.16.04-x64"},
}

// lookup 在给定表中按名称和版本查询，返回三态结果
func lookup(table []distroRules, name, version string) Match {
	for _, entry := range table {
		if entry.id != name {
			continue
		}
		for _, rule := range entry.rules {
			if rule.exact {
				if version == rule.version {
					return Match{State: MatchFound, RuntimeID: rule.rid}
				}
			} else if strings.HasPrefix(version, rule.version) {
				return Match{State: MatchFound, RuntimeID: rule.rid}
			}
		}
		return Match{State: MatchUnknownVersion}
	}
	return Match{State: MatchUnknownDistribution}
}

// exactLookup 官方表精确查询
func exactLookup(name, version string) Match {
	return lookup(exactTable, name, version)
}

// fuzzyLookup 模糊查询：先查官方表，发行版未识别时再查派生表
func fuzzyLookup(name, version string) Match {
	m := exactLookup(name, version)
	if m.State == MatchUnknownDistribution {
		m = lookup(derivativeTable, name, version)
	}
	return m
}

// Support 兼容性表中的一条支持记录
type Support struct {
	Distribution string // 发行版 ID
	Version      string // 版本（前缀或精确值）
	Exact        bool   // 版本是否要求完全相等
	RuntimeID    string // 映射到的运行时标识
	Derivative   bool   // 是否来自派生发行版扩展表
}

// SupportedDistributions 导出全部兼容性记录，顺序与查询顺序一致
func SupportedDistributions() []Support {
	var out []Support
	appendTable := func(table []distroRules, derivative bool) {
		for _, entry := range table {
			for _, rule := range entry.rules {
				out = append(out, Support{
					Distribution: entry.id,
					Version:      rule.version,
					Exact:        rule.exact,
					RuntimeID:    rule.rid,
					Derivative:   derivative,
				})
			}
		}
	}
	appendTable(exactTable, false)
	appendTable(derivativeTable, true)
	return out
}

// KnownRuntimeIDs 返回全部可能产出的运行时标识，去重且保持首见顺序
func KnownRuntimeIDs() []string {
	seen := make(map[string]bool)
	ids := []string{WindowsX86, WindowsX64, MacOSX64}
	for _, id := range ids {
		seen[id] = true
	}
	for _, s := range SupportedDistributions() {
		if !seen[s.RuntimeID] {
			seen[s.RuntimeID] = true
			ids = append(ids, s.RuntimeID)
		}
	}
	return ids
}
