package commands

import (
	"fmt"

	"github.com/bbq191/ridprobe/internal/config"
	"github.com/bbq191/ridprobe/internal/interactive"
	"github.com/bbq191/ridprobe/internal/platform"
	"github.com/bbq191/ridprobe/internal/render"
	"github.com/bbq191/ridprobe/internal/rid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	detectFormat      string
	detectTemplate    string
	detectInteractive bool
)

// detectCmd 完整平台检测命令
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "检测当前平台并显示完整结果",
	Long: `检测当前主机的操作系统、CPU 架构和 Linux 发行版信息，
解析对应的运行时标识并完整输出。

运行时标识解析失败不影响其余字段的输出；配合 --interactive
可在解析失败时手动从已知标识列表中挑选。`,
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVarP(&detectFormat, "format", "f", "", "输出格式 (text|json|template)")
	detectCmd.Flags().StringVarP(&detectTemplate, "template", "t", "", "template 格式使用的模板文本")
	detectCmd.Flags().BoolVarP(&detectInteractive, "interactive", "i", false, "解析失败时交互式选择运行时标识")
}

func runDetect(cmd *cobra.Command, args []string) error {
	logger := GetLogger()
	logger.Info("正在检测平台信息...")

	cfg, err := config.NewConfigLoader(viper.GetViper(), logger).LoadConfig()
	if err != nil {
		return err
	}

	// 命令行参数优先于配置文件
	if detectFormat != "" {
		cfg.Format = detectFormat
	}
	if detectTemplate != "" {
		cfg.Template = detectTemplate
	}

	detector := platform.NewDetector(logger)
	detector.SetReleasePaths(cfg.ReleasePaths)
	detector.SetLineSeparator(cfg.LineSep())

	resolver := rid.NewResolver(logger, cfg.FallbackProvider())
	identity, err := resolver.Detect(cmd.Context(), detector)
	if err != nil {
		return fmt.Errorf("平台检测失败: %w", err)
	}

	// 自动解析失败时可交互挑选覆盖值
	if !identity.HasRuntimeID() && detectInteractive {
		selector := interactive.NewRIDSelector(rid.KnownRuntimeIDs(), logger)
		choice, err := selector.Select()
		if err != nil {
			return err
		}
		identity.RuntimeID = choice
	}

	output, err := render.NewEngine(logger).Render(render.Format(cfg.Format), cfg.Template, identity)
	if err != nil {
		return err
	}
	fmt.Println(output)

	logger.Info("平台检测完成")
	return nil
}
