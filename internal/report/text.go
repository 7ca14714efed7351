package report

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"commentcleaner/internal/model"

	"github.com/fatih/color"
)

// TextReporter 逐行流式输出注释，扫描结束后输出汇总。
type TextReporter struct {
	sink     Sink
	verbose  bool
	location *color.Color
	flagged  *color.Color
	plain    *color.Color
}

// NewTextReporter 创建文本格式 Reporter。
func NewTextReporter(sink Sink, options Options) *TextReporter {
	reporter := &TextReporter{
		sink:     sink,
		verbose:  options.Verbose,
		location: color.New(color.FgCyan),
		flagged:  color.New(color.FgRed, color.Bold),
		plain:    color.New(color.FgHiBlack),
	}
	if !options.Color {
		reporter.location.DisableColor()
		reporter.flagged.DisableColor()
		reporter.plain.DisableColor()
	}
	return reporter
}

// Report 输出一条注释：位置、分数、带引号的注释文本。
func (r *TextReporter) Report(report model.CommentReport) error {
	score := r.plain.Sprint(report.Score)
	if report.Flagged {
		score = r.flagged.Sprint(report.Score)
	}

	line := fmt.Sprintf("%s  %s  %s", r.location.Sprint(formatLocation(report)), score, strconv.Quote(report.Text))
	if r.verbose && len(report.Rules) > 0 {
		line += "  [" + strings.Join(report.Rules, ", ") + "]"
	}
	return r.sink.WriteLine(line)
}

// Finish 输出汇总、失败文件、告警文件和耗时，然后刷新。
func (r *TextReporter) Finish(result model.ScanResult) error {
	lines := []string{
		"",
		fmt.Sprintf(
			"files: %d  comments: %d  flagged: %d  failed: %d  warnings: %d",
			result.Totals.Files,
			result.Totals.Comments,
			result.Totals.Flagged,
			result.Totals.Failed,
			result.Totals.Warnings,
		),
	}

	if len(result.Errors) > 0 {
		lines = append(lines, "")
		lines = append(lines, formatEntries("ERROR FILE", result.Errors)...)
	}
	if len(result.Warnings) > 0 {
		lines = append(lines, "")
		lines = append(lines, formatEntries("WARNING FILE", result.Warnings)...)
	}

	lines = append(lines, fmt.Sprintf("elapsed: %dms", result.ElapsedMillis))

	for _, line := range lines {
		if err := r.sink.WriteLine(line); err != nil {
			return err
		}
	}
	return r.sink.Flush()
}

// formatLocation 输出 path:line 或 path:start-end。
func formatLocation(report model.CommentReport) string {
	if report.EndLine != report.StartLine {
		return fmt.Sprintf("%s:%d-%d", report.Path, report.StartLine, report.EndLine)
	}
	return fmt.Sprintf("%s:%d", report.Path, report.StartLine)
}

// formatEntries 使用表格对齐失败/告警列表。
func formatEntries(header string, entries []model.ScanError) []string {
	var builder strings.Builder
	tw := tabwriter.NewWriter(&builder, 0, 4, 2, ' ', 0)

	_, _ = fmt.Fprintf(tw, "%s\tKIND\tMESSAGE\n", header)
	for _, item := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", item.Path, item.Kind, item.Error)
	}
	_ = tw.Flush()

	return strings.Split(strings.TrimSuffix(builder.String(), "\n"), "\n")
}
