package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/bbq191/ridprobe/internal/platform"
	"github.com/sirupsen/logrus"
)

// Format 输出格式
type Format string

const (
	FormatText     Format = "text"     // 人类可读文本
	FormatJSON     Format = "json"     // 结构化 JSON
	FormatTemplate Format = "template" // 用户自定义模板
)

// Engine 检测结果渲染引擎
type Engine struct {
	funcMap template.FuncMap // 模板函数映射
	logger  *logrus.Logger   // 日志记录器
}

// NewEngine 创建新的渲染引擎实例
func NewEngine(logger *logrus.Logger) *Engine {
	return &Engine{
		funcMap: createFuncMap(),
		logger:  logger,
	}
}

// createFuncMap 创建模板函数映射表
func createFuncMap() template.FuncMap {
	funcMap := sprig.TxtFuncMap() // 加载 Sprig 标准函数库

	// 平台结果专用函数
	funcMap["joinLike"] = joinLike // 拼接祖先发行版列表

	return funcMap
}

// Render 按指定格式渲染平台检测结果
func (e *Engine) Render(format Format, tmplText string, identity *platform.PlatformIdentity) (string, error) {
	switch format {
	case FormatText:
		return e.renderText(identity), nil
	case FormatJSON:
		return e.renderJSON(identity)
	case FormatTemplate:
		return e.renderTemplate(tmplText, identity)
	default:
		return "", fmt.Errorf("未知的输出格式: %s", format)
	}
}

// renderText 渲染人类可读文本
func (e *Engine) renderText(identity *platform.PlatformIdentity) string {
	var b strings.Builder

	fmt.Fprintf(&b, "操作系统: %s\n", identity.OS)
	fmt.Fprintf(&b, "架构: %s\n", identity.Architecture)

	if identity.Distribution != nil {
		fmt.Fprintf(&b, "发行版: %s %s\n", identity.Distribution.Name, identity.Distribution.Version)
		if identity.Distribution.IDLike != nil {
			fmt.Fprintf(&b, "祖先发行版: %s\n", joinLike(identity.Distribution.IDLike))
		}
	}

	if identity.HasRuntimeID() {
		fmt.Fprintf(&b, "运行时标识: %s\n", identity.RuntimeID)
	} else {
		b.WriteString("运行时标识: (未解析)\n")
	}

	return b.String()
}

// jsonIdentity JSON 输出的序列化形态
type jsonIdentity struct {
	OS           string            `json:"os"`
	Architecture string            `json:"architecture"`
	Distribution *jsonDistribution `json:"distribution,omitempty"`
	RuntimeID    string            `json:"runtime_id,omitempty"`
}

type jsonDistribution struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	IDLike  []string `json:"id_like,omitempty"`
}

// renderJSON 渲染结构化 JSON
func (e *Engine) renderJSON(identity *platform.PlatformIdentity) (string, error) {
	out := jsonIdentity{
		OS:           string(identity.OS),
		Architecture: identity.Architecture,
		RuntimeID:    identity.RuntimeID,
	}
	if identity.Distribution != nil {
		out.Distribution = &jsonDistribution{
			Name:    identity.Distribution.Name,
			Version: identity.Distribution.Version,
			IDLike:  identity.Distribution.IDLike,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("序列化检测结果失败: %w", err)
	}
	return string(data), nil
}

// renderTemplate 使用用户提供的模板渲染
func (e *Engine) renderTemplate(tmplText string, identity *platform.PlatformIdentity) (string, error) {
	if tmplText == "" {
		return "", fmt.Errorf("模板格式需要提供模板文本")
	}

	tmpl, err := template.New("output").Funcs(e.funcMap).Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("解析模板失败: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, identity); err != nil {
		e.logger.Errorf("渲染模板失败: %v", err)
		return "", fmt.Errorf("渲染模板失败: %w", err)
	}
	return buf.String(), nil
}

// joinLike 以空格拼接祖先发行版列表
func joinLike(ids []string) string {
	return strings.Join(ids, " ")
}
