// Package cmd 提供 commentcleaner 的命令行入口与子命令编排。
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"commentcleaner/internal/config"
	"commentcleaner/internal/languages"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions 存放全局参数。
type rootOptions struct {
	configFile string
	verbose    bool
}

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
// Ctrl+C / SIGTERM 会取消正在进行的扫描。
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.ExecuteContext(ctx)
}

// newRootCmd 创建根命令并注册全部子命令。
// 每个根命令持有独立的 viper 实例，子命令的参数都绑定到它上面。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	options := &rootOptions{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "commentcleaner",
		Short: "查找被注释掉的代码",
		Long: "commentcleaner 使用可续扫的词法状态机提取源码注释，\n" +
			"并根据字符类别比例给每条注释打分，标记疑似被注释掉的代码。",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&options.configFile, "config", "", "配置文件路径，默认查找 ./.commentcleaner.yaml 与 $HOME/.commentcleaner.yaml")
	rootCmd.PersistentFlags().BoolVarP(&options.verbose, "verbose", "v", false, "输出调试日志与命中的规则")
	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newConfigCmd(v, options))
	rootCmd.AddCommand(newScanCmd(v, options, registry))

	return rootCmd
}

// loadConfig 按 默认值 → 配置文件 → 环境变量 → 命令行参数 的顺序加载配置。
func loadConfig(v *viper.Viper, options *rootOptions) (*config.Config, *config.Loader, error) {
	searchPaths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, home)
	}

	loader := config.NewLoader(v, options.configFile, searchPaths...)
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, loader, nil
}

// newLogger 创建写到 stderr 的结构化日志。
func newLogger(writer io.Writer, verbose bool, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level}))
}
