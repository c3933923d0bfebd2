package commands

import (
	"fmt"

	"github.com/bbq191/ridprobe/internal/config"
	"github.com/bbq191/ridprobe/internal/platform"
	"github.com/bbq191/ridprobe/internal/rid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ridCmd 仅输出运行时标识，面向脚本消费
var ridCmd = &cobra.Command{
	Use:   "rid",
	Short: "输出当前平台的运行时标识",
	Long: `只输出解析得到的运行时标识，便于脚本消费：

  PKG_RID=$(ridprobe rid)

解析失败时不输出任何内容并以非零状态码退出。可通过
--fallback-rid 或配置项 fallback_rid 提供兜底值。`,
	SilenceUsage: true,
	RunE:         runRID,
}

func init() {
	rootCmd.AddCommand(ridCmd)
}

func runRID(cmd *cobra.Command, args []string) error {
	logger := GetLogger()

	cfg, err := config.NewConfigLoader(viper.GetViper(), logger).LoadConfig()
	if err != nil {
		return err
	}

	detector := platform.NewDetector(logger)
	detector.SetReleasePaths(cfg.ReleasePaths)
	detector.SetLineSeparator(cfg.LineSep())

	resolver := rid.NewResolver(logger, cfg.FallbackProvider())
	identity, err := resolver.Detect(cmd.Context(), detector)
	if err != nil {
		return fmt.Errorf("平台检测失败: %w", err)
	}

	if !identity.HasRuntimeID() {
		return fmt.Errorf("无法解析运行时标识: %s", identity.String())
	}

	fmt.Println(identity.RuntimeID)
	return nil
}
