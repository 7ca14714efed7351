package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"commentcleaner/internal/classifier"
	"commentcleaner/internal/config"
	"commentcleaner/internal/languages"
	"commentcleaner/internal/report"
	"commentcleaner/internal/scanner"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scanFlagKeys 把命令行参数名映射到配置键。
var scanFlagKeys = map[string]string{
	"dir":          "root",
	"language":     "language",
	"workers":      "workers",
	"ignore":       "ignore",
	"chunk-size":   "chunk_size",
	"threshold":    "threshold",
	"flush-on-eof": "flush_on_eof",
	"sharding":     "sharding",
	"mode":         "mode",
	"quiet":        "quiet",
	"report-style": "report.style",
	"out":          "report.output",
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	commentcleaner scan ./src -l csharp
//	commentcleaner scan -d ./src -l cs --mode profile --report-style json -o out/report.json
func newScanCmd(v *viper.Viper, options *rootOptions, registry *languages.Registry) *cobra.Command {
	defaults := config.Default()
	var noColor bool

	scanCmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "扫描目录并标记疑似被注释掉的代码",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(v, options)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Root = args[0]
			}
			if noColor || cfg.Report.Output != "" {
				cfg.Report.Color = false
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			profile, err := registry.Lookup(cfg.Language)
			if err != nil {
				return &config.Error{Field: "language", Reason: err.Error()}
			}
			exclude, err := cfg.ExcludePattern()
			if err != nil {
				return err
			}
			root, err := filepath.Abs(cfg.Root)
			if err != nil {
				return fmt.Errorf("resolve root: %w", err)
			}

			writer := cmd.OutOrStdout()
			if cfg.Report.Output != "" {
				file, err := report.CreateOutputFile(cfg.Report.Output)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			reporter, err := report.New(cfg.Report.Style, writer, report.Options{
				Color:   cfg.Report.Color,
				Verbose: cfg.Verbose,
			})
			if err != nil {
				return err
			}

			mode := strings.ToLower(cfg.Mode)
			scanOptions := scanner.Options{
				Root:       root,
				Profile:    profile,
				Workers:    cfg.Workers,
				Exclude:    exclude,
				ChunkSize:  cfg.ChunkSize,
				FlushOnEOF: cfg.FlushOnEOF,
				Sharding:   scanner.Sharding(cfg.Sharding),
				ReportAll:  mode == config.ModeProfile,
				Classifier: classifier.New(classifier.Options{
					Threshold:            cfg.Threshold,
					StatementTerminators: cfg.Classifier.StatementTerminators,
					SentenceTerminators:  cfg.Classifier.SentenceTerminators,
				}),
				Logger: newLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.Quiet),
			}

			var bar *progressReporter
			if !cfg.Quiet {
				bar = newProgressReporter(cmd.ErrOrStderr())
				scanOptions.Progress = bar
			}

			result, err := scanner.NewService(scanOptions).Run(cmd.Context(), reporter)
			if bar != nil {
				bar.Finish()
			}
			if err != nil {
				return err
			}

			result.Mode = mode
			if err := reporter.Finish(result); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			if cfg.Report.Output != "" && !cfg.Quiet {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "report exported to %s\n", cfg.Report.Output)
			}
			return nil
		},
	}

	flags := scanCmd.Flags()
	flags.StringP("dir", "d", "", "扫描的根目录，也可以作为位置参数传入")
	flags.StringP("language", "l", "", "源码语言名称或别名，例如 csharp、cs")
	flags.IntP("workers", "w", defaults.Workers, "并发 worker 数量")
	flags.StringP("ignore", "i", "", "排除正则，作用于完整路径")
	flags.Int("chunk-size", defaults.ChunkSize, "每次读取的字符数")
	flags.Float64P("threshold", "t", defaults.Threshold, "分数大于该值的注释被标记为代码")
	flags.Bool("flush-on-eof", defaults.FlushOnEOF, "文件末尾未闭合的块注释仍然输出")
	flags.String("sharding", defaults.Sharding, "任务分片策略: round-robin 或 shared")
	flags.StringP("mode", "m", defaults.Mode, "输出模式: report 只输出被标记的注释，profile 输出全部注释")
	flags.BoolP("quiet", "q", defaults.Quiet, "不显示进度条，只输出告警级别以上的日志")
	flags.String("report-style", defaults.Report.Style, "报告格式: "+strings.Join(report.Styles(), ", "))
	flags.StringP("out", "o", "", "报告输出文件，默认输出到标准输出")
	flags.BoolVar(&noColor, "no-color", false, "关闭 text 报告的颜色")

	for name, key := range scanFlagKeys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	return scanCmd
}
