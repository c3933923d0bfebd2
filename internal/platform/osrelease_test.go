package platform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParseReleaseInfo 测试 os-release 文本解析
func TestParseReleaseInfo(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		lineSep string
		want    DistributionIdentity
	}{
		{
			name:    "标准 ubuntu 文件",
			text:    "ID=ubuntu\nVERSION_ID=\"16.04\"\n",
			lineSep: "\n",
			want:    DistributionIdentity{Name: "ubuntu", Version: "16.04"},
		},
		{
			name:    "空输入",
			text:    "",
			lineSep: "\n",
			want:    DistributionIdentity{Name: "unknown", Version: "unknown"},
		},
		{
			name:    "ID_LIKE 多个祖先",
			text:    "ID=galliumos\nVERSION_ID=2.0\nID_LIKE=\"debian suse\"\n",
			lineSep: "\n",
			want: DistributionIdentity{
				Name:    "galliumos",
				Version: "2.0",
				IDLike:  []string{"debian", "suse"},
			},
		},
		{
			name:    "CRLF 分隔符",
			text:    "ID=centos\r\nVERSION_ID=\"7\"\r\n",
			lineSep: "\r\n",
			want:    DistributionIdentity{Name: "centos", Version: "7"},
		},
		{
			name:    "单个引号不剥离",
			text:    "ID=\"\nVERSION_ID=8\n",
			lineSep: "\n",
			want:    DistributionIdentity{Name: `"`, Version: "8"},
		},
		{
			name:    "没有等号的行被跳过",
			text:    "这不是键值对\nID=debian\nVERSION_ID=8\n",
			lineSep: "\n",
			want:    DistributionIdentity{Name: "debian", Version: "8"},
		},
		{
			name:    "键区分大小写",
			text:    "id=ubuntu\nversion_id=16.04\n",
			lineSep: "\n",
			want:    DistributionIdentity{Name: "unknown", Version: "unknown"},
		},
		{
			name:    "三字段齐备后忽略重复键",
			text:    "ID=ubuntu\nVERSION_ID=16.04\nID_LIKE=debian\nID=fedora\nVERSION_ID=24\n",
			lineSep: "\n",
			want: DistributionIdentity{
				Name:    "ubuntu",
				Version: "16.04",
				IDLike:  []string{"debian"},
			},
		},
		{
			name:    "空的 ID_LIKE 也算出现过",
			text:    "ID_LIKE=\"\"\n",
			lineSep: "\n",
			want: DistributionIdentity{
				Name:    "unknown",
				Version: "unknown",
				IDLike:  []string{""},
			},
		},
		{
			name:    "行首尾空白被修剪",
			text:    "  ID=opensuse  \n\tVERSION_ID=42.1\n",
			lineSep: "\n",
			want:    DistributionIdentity{Name: "opensuse", Version: "42.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReleaseInfo(tt.text, tt.lineSep)
			if diff := cmp.Diff(&tt.want, got); diff != "" {
				t.Errorf("解析结果不符合预期 (-want +got):\n%s", diff)
			}
		})
	}
}

// TestParseReleaseInfoIDLikeAbsent 测试未出现 ID_LIKE 时字段保持 nil
func TestParseReleaseInfoIDLikeAbsent(t *testing.T) {
	got := ParseReleaseInfo("ID=ubuntu\nVERSION_ID=16.04\n", "\n")
	if got.IDLike != nil {
		t.Errorf("未出现 ID_LIKE 时应为 nil，实际为 %v", got.IDLike)
	}
}

// TestUnquote 测试引号剥离规则
func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"16.04"`, "16.04"},
		{`16.04`, "16.04"},
		{`"`, `"`},           // 单个引号保持原样
		{`""`, ""},           // 成对空引号剥为空串
		{`"内部"引号"`, `内部"引号`}, // 只剥最外层，不处理内部
		{`"未闭合`, `"未闭合`},
	}

	for _, tt := range tests {
		if got := unquote(tt.in); got != tt.want {
			t.Errorf("unquote(%q) = %q，期望 %q", tt.in, got, tt.want)
		}
	}
}
