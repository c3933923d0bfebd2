package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	verbose    bool
	rootLogger *logrus.Logger
)

// rootCmd 是应用的根命令
var rootCmd = &cobra.Command{
	Use:   "ridprobe",
	Short: "平台运行时标识探测工具",
	Long: `一次性探测当前主机的操作系统、CPU 架构和 Linux 发行版，
并映射为平台二进制包选择所用的运行时标识（RID）。

支持功能：
  • 操作系统 / 架构 / 发行版检测
  • 三级兼容性表查询（精确 / 派生 / 祖先回退）
  • 可配置的兜底运行时标识
  • text / json / template 多种输出格式`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

// Execute 执行根命令
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// 全局参数
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "详细输出")
	rootCmd.PersistentFlags().String("fallback-rid", "", "表查询无结论时采用的兜底运行时标识")

	// 绑定到 viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("fallback_rid", rootCmd.PersistentFlags().Lookup("fallback-rid"))
}

// initConfig 初始化配置
func initConfig() {
	if cfgFile != "" {
		// 使用指定的配置文件
		viper.SetConfigFile(cfgFile)
	} else {
		// 搜索默认配置文件位置
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}

		// 添加配置文件搜索路径
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.SetConfigType("json")
		viper.SetConfigName("ridprobe")
	}

	viper.SetEnvPrefix("RIDPROBE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}

// initLogger 初始化日志系统
func initLogger() {
	rootLogger = logrus.New()

	// 设置日志级别
	if verbose || viper.GetBool("verbose") {
		rootLogger.SetLevel(logrus.DebugLevel)
	} else {
		rootLogger.SetLevel(logrus.InfoLevel)
	}

	// 设置日志格式
	rootLogger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
		TimestampFormat:  "15:04:05",
	})

	rootLogger.Debug("日志系统初始化完成")
}

// GetLogger 获取日志实例
func GetLogger() *logrus.Logger {
	return rootLogger
}
