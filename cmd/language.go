package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"commentcleaner/internal/languages"

	"github.com/spf13/cobra"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示当前已经实现的语言、文件匹配模式和别名。
func newLanguageCmd(registry *languages.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示已实现语言及匹配模式",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "LANGUAGE\tPATTERN\tALIASES"); err != nil {
				return err
			}

			for _, item := range registry.Languages() {
				if _, err := fmt.Fprintf(writer, "%s\t%s\t%s\n", item.Name, item.Pattern, strings.Join(item.Aliases, ", ")); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}
