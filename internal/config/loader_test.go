package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// newTestLogger 创建静默日志实例
func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// TestLoadConfigDefaults 测试无配置文件时的默认值
func TestLoadConfigDefaults(t *testing.T) {
	v := viper.New()
	cfg, err := NewConfigLoader(v, newTestLogger()).LoadConfig()
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}

	if cfg.Format != "text" {
		t.Errorf("默认格式 = %s，期望 text", cfg.Format)
	}
	if cfg.LineSep() != "\n" {
		t.Errorf("默认行分隔符 = %q，期望 \\n", cfg.LineSep())
	}
	if cfg.FallbackProvider() != nil {
		t.Error("未配置兜底标识时 FallbackProvider 应为 nil")
	}
}

// TestLoadConfigFromFile 测试从 JSON 配置文件加载
func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ridprobe.json")
	content := `{
  "fallback_rid": "ubuntu.16.04-x64",
  "release_paths": ["/etc/os-release", "/usr/lib/os-release"],
  "line_separator": "crlf",
  "format": "json"
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("读取配置文件失败: %v", err)
	}

	cfg, err := NewConfigLoader(v, newTestLogger()).LoadConfig()
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}

	if cfg.FallbackRID != "ubuntu.16.04-x64" {
		t.Errorf("fallback_rid = %s", cfg.FallbackRID)
	}
	if cfg.LineSep() != "\r\n" {
		t.Errorf("行分隔符 = %q，期望 \\r\\n", cfg.LineSep())
	}
	if cfg.Format != "json" {
		t.Errorf("格式 = %s，期望 json", cfg.Format)
	}

	fb := cfg.FallbackProvider()
	if fb == nil {
		t.Fatal("配置了兜底标识时 FallbackProvider 不应为 nil")
	}
	if got, ok := fb.FallbackRuntimeID(); !ok || got != "ubuntu.16.04-x64" {
		t.Errorf("兜底标识 = %s (%v)", got, ok)
	}
}

// TestValidateRIDTag 测试运行时标识形态验证
func TestValidateRIDTag(t *testing.T) {
	tests := []struct {
		rid     string
		wantErr bool
	}{
		{rid: "win7-x64"},
		{rid: "win7-x86"},
		{rid: "osx.10.11-x64"},
		{rid: "ubuntu.16.04-x64"},
		{rid: "centos.7-x64"},
		{rid: "not a rid", wantErr: true},
		{rid: "UBUNTU.16.04-x64", wantErr: true},
		{rid: "ubuntu.16.04-arm", wantErr: true},
		{rid: "-x64", wantErr: true},
	}

	cv := NewConfigValidator(newTestLogger())
	for _, tt := range tests {
		err := cv.ValidateConfig(&Config{FallbackRID: tt.rid})
		if tt.wantErr && err == nil {
			t.Errorf("%q 应被拒绝", tt.rid)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%q 应被接受: %v", tt.rid, err)
		}
	}
}

// TestValidateReleasePaths 测试探测路径必须为绝对路径
func TestValidateReleasePaths(t *testing.T) {
	cv := NewConfigValidator(newTestLogger())

	if err := cv.ValidateConfig(&Config{ReleasePaths: []string{"/etc/os-release"}}); err != nil {
		t.Errorf("绝对路径应被接受: %v", err)
	}
	if err := cv.ValidateConfig(&Config{ReleasePaths: []string{"etc/os-release"}}); err == nil {
		t.Error("相对路径应被拒绝")
	}
}

// TestValidateFormat 测试输出格式枚举验证
func TestValidateFormat(t *testing.T) {
	cv := NewConfigValidator(newTestLogger())

	for _, format := range []string{"text", "json", "template"} {
		if err := cv.ValidateConfig(&Config{Format: format}); err != nil {
			t.Errorf("格式 %s 应被接受: %v", format, err)
		}
	}
	if err := cv.ValidateConfig(&Config{Format: "yaml"}); err == nil {
		t.Error("格式 yaml 应被拒绝")
	}
}
