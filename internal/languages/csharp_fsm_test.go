package languages

import (
	"os"
	"path/filepath"
	"testing"

	"commentcleaner/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanChunks 是测试辅助函数：按给定切分顺序扫描，并在结尾调用 Finish。
func scanChunks(t *testing.T, chunks [][]rune, flush bool) ([]model.Comment, *Document, error) {
	t.Helper()

	scanner := &CSharpScanner{}
	doc := NewDocument("test.cs")
	comments := make([]model.Comment, 0)
	emit := func(c model.Comment) {
		comments = append(comments, c)
	}

	for _, chunk := range chunks {
		require.NoError(t, scanner.Scan(doc, chunk, emit))
	}
	finishErr := scanner.Finish(doc, flush, emit)
	return comments, doc, finishErr
}

// scanText 把整段文本作为单个 chunk 扫描。
func scanText(t *testing.T, content string) []model.Comment {
	t.Helper()

	comments, _, err := scanChunks(t, [][]rune{[]rune(content)}, false)
	require.NoError(t, err)
	return comments
}

// splitEvery 按固定大小切分字符序列。
func splitEvery(runes []rune, size int) [][]rune {
	chunks := make([][]rune, 0, len(runes)/size+1)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, runes[start:end])
	}
	return chunks
}

func readExample(t *testing.T) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join("testdata", "example.cs"))
	require.NoError(t, err)
	return string(content)
}

// TestScanLineComment 验证行注释的文本不包含定界符。
func TestScanLineComment(t *testing.T) {
	comments := scanText(t, "// DoFoo();\n")

	require.Len(t, comments, 1)
	assert.Equal(t, model.Comment{Text: " DoFoo();", StartLine: 1, EndLine: 1}, comments[0])
}

// TestScanLineCommentAtEOF 验证最后一行没有换行符时行注释仍然输出。
func TestScanLineCommentAtEOF(t *testing.T) {
	comments := scanText(t, "x = 1; // trailing")

	require.Len(t, comments, 1)
	assert.Equal(t, " trailing", comments[0].Text)
}

// TestScanExampleFile 使用原始测试样例文件验证字符串、逐字字符串与注释的区分。
func TestScanExampleFile(t *testing.T) {
	comments := scanText(t, readExample(t))

	assert.Equal(t, []model.Comment{
		{Text: " super critical", StartLine: 2, EndLine: 2},
		{Text: "/ <summary>Provides a nice smattering of comments</summary>", StartLine: 5, EndLine: 5},
		{Text: " DoFoo();", StartLine: 13, EndLine: 13},
		{Text: " some jerk commented code just there ", StartLine: 14, EndLine: 14},
	}, comments)
}

// TestScanMultiLineBlockComment 验证块注释跨行时行号区间正确。
func TestScanMultiLineBlockComment(t *testing.T) {
	comments := scanText(t, "a;\n/* one\ntwo\n*/\nb;")

	require.Len(t, comments, 1)
	assert.Equal(t, model.Comment{Text: " one\ntwo\n", StartLine: 2, EndLine: 4}, comments[0])
}

// TestScanBlockCommentStarRuns 验证 * 连续出现时块注释仍能闭合。
func TestScanBlockCommentStarRuns(t *testing.T) {
	comments := scanText(t, "/* x **/ /***/ /**/ /* a * b */")

	assert.Equal(t, []string{" x *", "*", "", " a * b "}, commentTexts(comments))
}

// TestScanStringContainsCommentToken 验证字符串内的 // 与 /* 不会误判为注释。
func TestScanStringContainsCommentToken(t *testing.T) {
	comments := scanText(t, "var a = \"// no\"; var b = \"/* no */\"; var c = \"\\\"// no\";\n")

	assert.Empty(t, comments)
}

// TestScanVerbatimString 验证逐字字符串中的 "" 转义与跨行。
func TestScanVerbatimString(t *testing.T) {
	content := "var s = @\"a \"\" // still string\nline two /* */\";\n// real\n"
	comments := scanText(t, content)

	require.Len(t, comments, 1)
	assert.Equal(t, model.Comment{Text: " real", StartLine: 3, EndLine: 3}, comments[0])
}

// TestScanCharLiteral 验证字符字面量（含转义单引号和双引号）。
func TestScanCharLiteral(t *testing.T) {
	content := "var q = '\"'; var e = '\\''; // after\n"
	comments := scanText(t, content)

	require.Len(t, comments, 1)
	assert.Equal(t, " after", comments[0].Text)
}

// TestScanReconsumeAfterSlash 验证除号后的字符会被重新按 Normal 处理。
func TestScanReconsumeAfterSlash(t *testing.T) {
	// 除号后紧跟引号：引号必须开启字符串，字符串里的 // 不是注释。
	comments := scanText(t, "x = a/\"// not a comment\";\n")
	assert.Empty(t, comments)

	// 除号后紧跟换行：行号必须计数。
	comments = scanText(t, "x = a /\n// second line\n")
	require.Len(t, comments, 1)
	assert.Equal(t, 2, comments[0].StartLine)
}

// TestScanReconsumeAfterAt 验证 @ 之后不是引号时字符会重新按 Normal 处理。
func TestScanReconsumeAfterAt(t *testing.T) {
	comments := scanText(t, "var @class = '\"'; var y = @\"a\"/\"//x\"; // c\n")

	require.Len(t, comments, 1)
	assert.Equal(t, " c", comments[0].Text)
}

// TestScanCRLF 验证 \r\n 换行下行注释不带 \r。
func TestScanCRLF(t *testing.T) {
	comments := scanText(t, "// one\r\n// two\r\n")

	assert.Equal(t, []model.Comment{
		{Text: " one", StartLine: 1, EndLine: 1},
		{Text: " two", StartLine: 2, EndLine: 2},
	}, comments)
}

// TestScanNoComments 验证无注释文件不产出注释，且最终状态为 Normal。
func TestScanNoComments(t *testing.T) {
	content := "class A {\n  int Div(int a, int b) { return a / b; }\n}\n"
	comments, doc, err := scanChunks(t, splitEvery([]rune(content), 7), false)

	require.NoError(t, err)
	assert.Empty(t, comments)
	assert.Equal(t, StateNormal, doc.State())
	assert.False(t, doc.InComment())
	assert.Equal(t, 4, doc.Line())
}

// TestScanBlockEndSplitAcrossChunks 验证块注释的 * 与 / 分属两个 chunk 时仍只输出一条注释。
func TestScanBlockEndSplitAcrossChunks(t *testing.T) {
	chunks := [][]rune{
		[]rune("int a; /* commented code; *"),
		[]rune("/ int b;\n"),
	}
	comments, doc, err := scanChunks(t, chunks, false)

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, " commented code; ", comments[0].Text)
	assert.Equal(t, StateNormal, doc.State())
}

// TestScanChunkTransparency 验证任意切分方式与整体扫描结果一致。
func TestScanChunkTransparency(t *testing.T) {
	corpora := map[string]string{
		"example": readExample(t),
		"mixed": "a = b / c; // div\n/* multi\n * line **/ s = @\"x\"\"y\n\"; c = '\\'';\r\n" +
			"d = \"esc \\\" // no\"; e = @\"/*\"; /***/ // tail",
		"unterminated-line": "x(); //",
	}

	for name, content := range corpora {
		t.Run(name, func(t *testing.T) {
			runes := []rune(content)
			expected, _, expectedErr := scanChunks(t, [][]rune{runes}, false)

			for size := 1; size <= len(runes); size++ {
				got, doc, err := scanChunks(t, splitEvery(runes, size), false)
				assert.Equal(t, expectedErr, err, "chunk size %d", size)
				require.Equal(t, expected, got, "chunk size %d", size)
				assert.Equal(t, StateNormal, doc.State())
			}

			for cut := 0; cut <= len(runes); cut++ {
				got, _, _ := scanChunks(t, [][]rune{runes[:cut], {}, runes[cut:]}, false)
				require.Equal(t, expected, got, "split at %d", cut)
			}
		})
	}
}

// TestFinishUnterminatedBlockComment 验证文件结束时未闭合块注释的两种处理方式。
func TestFinishUnterminatedBlockComment(t *testing.T) {
	content := [][]rune{[]rune("x();\n/* open\nstill *")}

	comments, doc, err := scanChunks(t, content, false)
	require.ErrorIs(t, err, ErrUnterminated)
	assert.Empty(t, comments)
	assert.Equal(t, StateNormal, doc.State())
	assert.False(t, doc.InComment())

	var unterminated *UnterminatedError
	require.ErrorAs(t, err, &unterminated)
	assert.Equal(t, StateMaybeBlockCommentEnd, unterminated.State)
	assert.Equal(t, 2, unterminated.Line)

	comments, _, err = scanChunks(t, content, true)
	require.ErrorIs(t, err, ErrUnterminated)
	require.Len(t, comments, 1)
	assert.Equal(t, model.Comment{Text: " open\nstill *", StartLine: 2, EndLine: 3}, comments[0])
}

// TestFinishUnterminatedString 验证文件结束时未闭合字符串返回告警。
func TestFinishUnterminatedString(t *testing.T) {
	_, _, err := scanChunks(t, [][]rune{[]rune("var s = @\"never closed")}, true)

	var unterminated *UnterminatedError
	require.ErrorAs(t, err, &unterminated)
	assert.Equal(t, StateVerbatimString, unterminated.State)
}

// TestFinishClosedVerbatimAtEOF 验证以逐字字符串结尾的文件不是未闭合。
func TestFinishClosedVerbatimAtEOF(t *testing.T) {
	_, doc, err := scanChunks(t, [][]rune{[]rune("s = @\"done\"")}, false)

	require.NoError(t, err)
	assert.Equal(t, StateNormal, doc.State())
}

// TestScanInconsistentState 验证未定义状态返回致命错误。
func TestScanInconsistentState(t *testing.T) {
	scanner := &CSharpScanner{}
	doc := NewDocument("broken.cs")
	doc.state = State(200)

	err := scanner.Scan(doc, []rune("x"), func(model.Comment) {})
	require.ErrorIs(t, err, ErrInconsistentState)

	var consistency *ConsistencyError
	require.ErrorAs(t, err, &consistency)
	assert.Equal(t, "broken.cs", consistency.Path)
	assert.Equal(t, "State(200)", consistency.State.String())
}

func commentTexts(comments []model.Comment) []string {
	texts := make([]string, 0, len(comments))
	for _, c := range comments {
		texts = append(texts, c.Text)
	}
	return texts
}
