package commands

import (
	"fmt"

	"github.com/bbq191/ridprobe/internal/rid"
	"github.com/spf13/cobra"
)

// distrosCmd 列出兼容性表支持的发行版/版本组合
var distrosCmd = &cobra.Command{
	Use:   "distros",
	Short: "列出支持的发行版和版本",
	Long: `输出兼容性表的全部记录，包括官方发行版和社区派生
发行版，以及每条记录映射到的运行时标识。`,
	RunE: runDistros,
}

func init() {
	rootCmd.AddCommand(distrosCmd)
}

func runDistros(cmd *cobra.Command, args []string) error {
	fmt.Println("=== 官方发行版 ===")
	printSupports(false)
	fmt.Println()
	fmt.Println("=== 社区/派生发行版 ===")
	printSupports(true)
	return nil
}

// printSupports 输出指定类别的兼容性记录
func printSupports(derivative bool) {
	for _, s := range rid.SupportedDistributions() {
		if s.Derivative != derivative {
			continue
		}
		match := "前缀"
		if s.Exact {
			match = "精确"
		}
		fmt.Printf("  %-14s %-8s (%s) -> %s\n", s.Distribution, s.Version, match, s.RuntimeID)
	}
}
