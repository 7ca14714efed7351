// Package model 定义 commentcleaner 的核心数据模型。
// 这些结构会被扫描器、分类器、输出层和命令层共同使用。
package model

import (
	"encoding/xml"
	"time"
)

// ErrorKind 区分单文件失败/告警的类别。
type ErrorKind string

const (
	// ErrorKindIO 表示文件打开、读取或目录遍历失败。
	ErrorKindIO ErrorKind = "io"
	// ErrorKindScanner 表示扫描器进入了未定义状态（内部一致性错误）。
	ErrorKindScanner ErrorKind = "scanner"
	// ErrorKindUnterminated 表示文件结束时仍有未闭合的注释/字符串。
	ErrorKindUnterminated ErrorKind = "unterminated"
)

// Totals 表示一次扫描的全局计数。
//
// 注意：
// - Files 只统计完整扫描结束的文件，失败文件计入 Failed
// - Flagged 统计超过阈值的注释数，与输出模式无关
type Totals struct {
	Files    int64 `json:"files" xml:"files,attr"`
	Comments int64 `json:"comments" xml:"comments,attr"`
	Flagged  int64 `json:"flagged" xml:"flagged,attr"`
	Failed   int64 `json:"failed" xml:"failed,attr"`
	Warnings int64 `json:"warnings" xml:"warnings,attr"`
}

// FileMetrics 表示单文件扫描结果。
type FileMetrics struct {
	Comments int64
	Flagged  int64
}

// AddFile 累加一个文件的统计值到全局计数中。
func (t *Totals) AddFile(other FileMetrics) {
	t.Files++
	t.Comments += other.Comments
	t.Flagged += other.Flagged
}

// ScanError 记录单文件失败或告警信息。
// 设计为“错误不阻断全量扫描”，便于大仓库分析时容错。
type ScanError struct {
	XMLName xml.Name  `json:"-" xml:"entry"`
	Path    string    `json:"path" xml:"path,attr"`
	Kind    ErrorKind `json:"kind" xml:"kind,attr"`
	Error   string    `json:"error" xml:",chardata"`
}

// ScanResult 是 scan 命令的完整汇总模型。
// 注释明细不在这里保存，它们以回调流的方式交给 Reporter。
type ScanResult struct {
	RunID         string        `json:"run_id" xml:"run-id,attr"`
	Root          string        `json:"root" xml:"root,attr"`
	Language      string        `json:"language" xml:"language,attr"`
	Mode          string        `json:"mode" xml:"mode,attr"`
	Threshold     float64       `json:"threshold" xml:"threshold,attr"`
	Totals        Totals        `json:"totals" xml:"totals"`
	Errors        []ScanError   `json:"errors" xml:"errors>entry"`
	Warnings      []ScanError   `json:"warnings" xml:"warnings>entry"`
	Elapsed       time.Duration `json:"-" xml:"-"`
	ElapsedMillis int64         `json:"elapsed_ms" xml:"elapsed-ms,attr"`
}
