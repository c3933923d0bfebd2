package commands

import (
	"fmt"

	"github.com/bbq191/ridprobe/internal/config"
	"github.com/bbq191/ridprobe/internal/doctor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var doctorQuiet bool

// doctorCmd 环境诊断命令
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "诊断检测环境",
	Long: `检查平台检测依赖的环境是否就绪：

• 操作系统是否受支持
• uname 命令是否可用（macOS / Linux）
• 架构环境变量是否设置（Windows）
• os-release 文件是否可读（Linux）

该命令主要用于排查检测失败的原因。`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().BoolVarP(&doctorQuiet, "quiet", "q", false, "不显示进度条")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	logger := GetLogger()
	logger.Info("开始环境诊断...")

	cfg, err := config.NewConfigLoader(viper.GetViper(), logger).LoadConfig()
	if err != nil {
		return err
	}

	d := doctor.NewDoctor(cfg.ReleasePaths, logger, doctorQuiet)
	report := d.RunChecks(cmd.Context())

	fmt.Println("=== 诊断结果 ===")
	for _, result := range report.Results {
		icon := "✅"
		switch result.Status {
		case doctor.StatusWarn:
			icon = "⚠️"
		case doctor.StatusFail:
			icon = "❌"
		}
		fmt.Printf("%s %s: %s\n", icon, result.Name, result.Message)
	}
	fmt.Printf("\n通过 %d / 警告 %d / 失败 %d\n", report.Passed, report.Warned, report.Failed)

	if !report.Healthy() {
		return fmt.Errorf("环境诊断发现 %d 个致命问题", report.Failed)
	}

	logger.Info("环境诊断完成")
	return nil
}
