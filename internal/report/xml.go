package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"sync"

	"commentcleaner/internal/model"
)

// xmlDocument 是 XML 报告的根节点。
type xmlDocument struct {
	XMLName  xml.Name              `xml:"report"`
	Result   model.ScanResult      `xml:"result"`
	Comments []model.CommentReport `xml:"comments>comment"`
}

// XMLReporter 缓存全部注释，扫描结束后一次性输出 XML。
type XMLReporter struct {
	mu       sync.Mutex
	writer   io.Writer
	comments []model.CommentReport
}

// NewXMLReporter 创建 XML 格式 Reporter。
func NewXMLReporter(writer io.Writer) *XMLReporter {
	return &XMLReporter{writer: writer}
}

// Report 记录一条注释。
func (r *XMLReporter) Report(report model.CommentReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.comments = append(r.comments, report)
	return nil
}

// Finish 输出带声明头的缩进 XML。
func (r *XMLReporter) Finish(result model.ScanResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	content, err := xml.MarshalIndent(xmlDocument{Result: result, Comments: r.comments}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal xml: %w", err)
	}

	if _, err := io.WriteString(r.writer, xml.Header); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	if _, err := r.writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	return nil
}
