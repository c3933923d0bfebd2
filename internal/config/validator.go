package config

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ridPattern 运行时标识的合法形态，如 win7-x64、ubuntu.16.04-x64
var ridPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(\.[0-9]+(\.[0-9]+)*)?-x(86|64)$`)

// ConfigValidator 配置验证器
type ConfigValidator struct {
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewConfigValidator 创建新的配置验证器
func NewConfigValidator(logger *logrus.Logger) *ConfigValidator {
	cv := &ConfigValidator{
		validator: validator.New(),
		logger:    logger,
	}
	cv.registerCustomValidators()
	return cv
}

// registerCustomValidators 注册自定义验证规则
func (cv *ConfigValidator) registerCustomValidators() {
	// 运行时标识形态验证
	cv.validator.RegisterValidation("rid", cv.validateRID)

	// 绝对路径验证
	cv.validator.RegisterValidation("abspath", cv.validateAbsPath)
}

// ValidateConfig 验证完整配置
func (cv *ConfigValidator) ValidateConfig(config *Config) error {
	cv.logger.Debug("开始配置验证")

	if err := cv.validator.Struct(config); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				cv.logger.Errorf("配置字段 %s 验证失败: %s", fe.Field(), fe.Tag())
			}
		}
		return fmt.Errorf("配置验证失败: %w", err)
	}

	cv.logger.Debug("配置验证通过")
	return nil
}

// validateRID 验证运行时标识字面量的形态
func (cv *ConfigValidator) validateRID(fl validator.FieldLevel) bool {
	return ridPattern.MatchString(fl.Field().String())
}

// validateAbsPath 验证路径为绝对路径
func (cv *ConfigValidator) validateAbsPath(fl validator.FieldLevel) bool {
	return filepath.IsAbs(fl.Field().String())
}
