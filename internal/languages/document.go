package languages

import (
	"strings"

	"commentcleaner/internal/model"
)

// noComment 表示当前没有打开的注释。
const noComment = -1

// Document 保存单个文件在多次 Scan 调用之间的扫描状态。
// 一个 Document 只属于处理该文件的 worker，因此不需要加锁。
type Document struct {
	Path string

	state State
	line  int
	begin int
	buf   strings.Builder
}

// NewDocument 为文件创建初始状态（Normal，第 1 行）。
func NewDocument(path string) *Document {
	return &Document{
		Path:  path,
		state: StateNormal,
		line:  1,
		begin: noComment,
	}
}

// State 返回当前持久化的扫描状态。
func (d *Document) State() State {
	return d.state
}

// Line 返回当前行号（从 1 开始）。
func (d *Document) Line() int {
	return d.line
}

// InComment 判断是否有尚未闭合的注释。
func (d *Document) InComment() bool {
	return d.begin != noComment
}

func (d *Document) incrementLine() {
	d.line++
}

func (d *Document) markCommentBegin() {
	d.begin = d.line
	d.buf.Reset()
}

func (d *Document) appendRune(r rune) {
	d.buf.WriteRune(r)
}

// closeComment 生成注释并清空缓冲区。
// trimCR 用于行注释：\r\n 换行时去掉末尾的 \r。
func (d *Document) closeComment(trimCR bool) model.Comment {
	text := d.buf.String()
	if trimCR {
		text = trimCarriageReturn(text)
	}

	comment := model.Comment{
		Text:      text,
		StartLine: d.begin,
		EndLine:   d.line,
	}
	d.discardComment()
	return comment
}

func (d *Document) discardComment() {
	d.buf.Reset()
	d.begin = noComment
}
