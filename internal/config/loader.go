package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ConfigLoader 配置加载器，从 viper 实例装配并验证配置
type ConfigLoader struct {
	viper     *viper.Viper
	validator *ConfigValidator
	logger    *logrus.Logger
}

// NewConfigLoader 创建新的配置加载器
func NewConfigLoader(v *viper.Viper, logger *logrus.Logger) *ConfigLoader {
	return &ConfigLoader{
		viper:     v,
		validator: NewConfigValidator(logger),
		logger:    logger,
	}
}

// LoadConfig 加载并验证配置
//
// 配置来源遵循 viper 的优先级：命令行参数 > 环境变量 > 配置文件 >
// 默认值。配置文件缺失不是错误，全部字段回落到默认值。
func (cl *ConfigLoader) LoadConfig() (*Config, error) {
	cl.logger.Debug("开始加载配置")

	cl.viper.SetDefault("format", "text")
	cl.viper.SetDefault("line_separator", "lf")

	config := &Config{}
	if err := cl.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cl.validator.ValidateConfig(config); err != nil {
		return nil, err
	}

	cl.logger.Debug("配置加载完成")
	return config, nil
}
