package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// newConfigCmd 创建 config 子命令，以 YAML 输出合并后的有效配置。
// 输出可以直接保存为 .commentcleaner.yaml。
func newConfigCmd(v *viper.Viper, options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "显示合并默认值、配置文件和环境变量后的有效配置",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loader, err := loadConfig(v, options)
			if err != nil {
				return err
			}

			content, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal yaml: %w", err)
			}

			if used := loader.ConfigFileUsed(); used != "" {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "# config file: %s\n", used); err != nil {
					return err
				}
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}
