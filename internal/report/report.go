// Package report 提供 commentcleaner 的输出能力。
// 当前实现支持 text（逐行流式输出，可着色）、JSON 与 XML 三种格式。
package report

import (
	"fmt"
	"io"
	"strings"

	"commentcleaner/internal/model"
)

// 支持的报告格式。
const (
	StyleText = "text"
	StyleJSON = "json"
	StyleXML  = "xml"
)

// Styles 返回全部支持的报告格式。
func Styles() []string {
	return []string{StyleText, StyleJSON, StyleXML}
}

// Reporter 接收扫描过程中的注释，并在扫描结束后输出汇总。
// Report 会被多个 worker 并发调用。
type Reporter interface {
	Report(report model.CommentReport) error
	Finish(result model.ScanResult) error
}

// Options 控制输出细节。
type Options struct {
	// Color 仅对 text 格式生效。
	Color bool
	// Verbose 为 true 时输出命中的规则名称。
	Verbose bool
}

// New 根据格式名称创建 Reporter。
func New(style string, writer io.Writer, options Options) (Reporter, error) {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleText:
		return NewTextReporter(NewSyncSink(writer), options), nil
	case StyleJSON:
		return NewJSONReporter(writer), nil
	case StyleXML:
		return NewXMLReporter(writer), nil
	default:
		return nil, fmt.Errorf("unsupported report style %q, allowed values: %s", style, strings.Join(Styles(), ", "))
	}
}
