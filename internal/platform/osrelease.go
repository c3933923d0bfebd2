package platform

import "strings"

// ParseReleaseInfo 解析 os-release 格式的文本，提取发行版标识
//
// 逐行扫描 text（按 lineSep 切分），识别 ID、VERSION_ID、ID_LIKE
// 三个键（区分大小写）。三个字段全部就绪后提前结束扫描，后续的
// 重复键被忽略。该函数对畸形输入不会失败：没有 = 的行直接跳过，
// 空输入返回 name/version 均为 "unknown" 的结果。
func ParseReleaseInfo(text, lineSep string) *DistributionIdentity {
	dist := &DistributionIdentity{}

	for _, line := range strings.Split(text, lineSep) {
		line = strings.TrimSpace(line)

		idx := strings.Index(line, "=")
		if idx < 0 {
			// 不是键值对，跳过
			continue
		}

		key := line[:idx]
		value := unquote(line[idx+1:])

		switch key {
		case "ID":
			dist.Name = value
		case "VERSION_ID":
			dist.Version = value
		case "ID_LIKE":
			dist.IDLike = strings.Split(value, " ")
		}

		// 三个字段都已赋值即可提前退出；IDLike 只要求出现过
		if dist.Name != "" && dist.Version != "" && dist.IDLike != nil {
			break
		}
	}

	if dist.Name == "" {
		dist.Name = UnknownValue
	}
	if dist.Version == "" {
		dist.Version = UnknownValue
	}

	return dist
}

// unquote 剥掉成对的外层双引号，各剥一个，不处理内部转义
func unquote(value string) string {
	if len(value) > 1 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}
