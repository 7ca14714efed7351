package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"commentcleaner/internal/model"
)

// jsonDocument 是 JSON 报告的顶层结构。
type jsonDocument struct {
	Result   model.ScanResult      `json:"result"`
	Comments []model.CommentReport `json:"comments"`
}

// JSONReporter 缓存全部注释，扫描结束后一次性输出易读 JSON。
type JSONReporter struct {
	mu       sync.Mutex
	writer   io.Writer
	comments []model.CommentReport
}

// NewJSONReporter 创建 JSON 格式 Reporter。
func NewJSONReporter(writer io.Writer) *JSONReporter {
	return &JSONReporter{
		writer:   writer,
		comments: make([]model.CommentReport, 0),
	}
}

// Report 记录一条注释。
func (r *JSONReporter) Report(report model.CommentReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.comments = append(r.comments, report)
	return nil
}

// Finish 把扫描结果与注释按易读 JSON 输出。
func (r *JSONReporter) Finish(result model.ScanResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	content, err := json.MarshalIndent(jsonDocument{Result: result, Comments: r.comments}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := r.writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
