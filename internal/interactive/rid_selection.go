package interactive

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sirupsen/logrus"
)

// RIDSelector 运行时标识交互选择器
//
// 自动解析失败时向操作者展示全部已知标识，由人工挑选一个覆盖值。
type RIDSelector struct {
	candidates []string
	logger     *logrus.Logger
}

// NewRIDSelector 创建运行时标识选择器
func NewRIDSelector(candidates []string, logger *logrus.Logger) *RIDSelector {
	return &RIDSelector{
		candidates: candidates,
		logger:     logger,
	}
}

// Select 展示选择列表并返回操作者挑选的运行时标识
func (s *RIDSelector) Select() (string, error) {
	if len(s.candidates) == 0 {
		return "", fmt.Errorf("没有可选的运行时标识")
	}

	s.logger.Debug("进入交互式运行时标识选择")

	prompt := &survey.Select{
		Message:  "自动解析失败，请手动选择运行时标识:",
		Options:  s.candidates,
		PageSize: 10,
	}

	var choice string
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", fmt.Errorf("交互选择失败: %w", err)
	}

	s.logger.Infof("已手动选择运行时标识: %s", choice)
	return choice, nil
}
