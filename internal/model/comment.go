package model

import "encoding/xml"

// Comment 是扫描器产出的一条完整注释。
//
// 约定：
// - Text 不包含注释定界符（// DoFoo(); 的 Text 为 " DoFoo();"）
// - StartLine/EndLine 从 1 开始计数
type Comment struct {
	Text      string
	StartLine int
	EndLine   int
}

// CommentReport 是交给输出层的一条注释记录。
type CommentReport struct {
	XMLName   xml.Name `json:"-" xml:"comment"`
	Path      string   `json:"path" xml:"path,attr"`
	StartLine int      `json:"start_line" xml:"start,attr"`
	EndLine   int      `json:"end_line" xml:"end,attr"`
	Score     int      `json:"score" xml:"score,attr"`
	Flagged   bool     `json:"flagged" xml:"flagged,attr"`
	Rules     []string `json:"rules,omitempty" xml:"rule,omitempty"`
	Text      string   `json:"text" xml:"text"`
}
