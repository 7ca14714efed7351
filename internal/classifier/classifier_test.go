package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzeRatiosSumToOne 验证非空文本的五类比例之和为 1。
func TestAnalyzeRatiosSumToOne(t *testing.T) {
	samples := []string{
		" DoFoo();",
		"x = 42;",
		"héllo wörld — ünïcode ½ ✓",
		"\t\t",
		"////",
		"TODO(bob): fix 3 bugs!",
	}

	for _, sample := range samples {
		analysis := Analyze(sample)
		sum := analysis.Letters + analysis.Whitespace + analysis.Digits + analysis.Punctuation + analysis.Other
		assert.InDelta(t, 1.0, sum, 1e-9, "sample %q", sample)
	}
}

// TestAnalyzeClasses 验证字符分类。
func TestAnalyzeClasses(t *testing.T) {
	analysis := Analyze("x = 42;")

	assert.Equal(t, 7, analysis.Length)
	assert.InDelta(t, 1.0/7, analysis.Letters, 1e-9)
	assert.InDelta(t, 2.0/7, analysis.Whitespace, 1e-9)
	assert.InDelta(t, 2.0/7, analysis.Digits, 1e-9)
	assert.InDelta(t, 1.0/7, analysis.Punctuation, 1e-9)
	assert.InDelta(t, 1.0/7, analysis.Other, 1e-9)
}

// TestAnalyzeEmpty 验证空文本按全空白处理，不会除零。
func TestAnalyzeEmpty(t *testing.T) {
	assert.Equal(t, Analysis{Whitespace: 1}, Analyze(""))
}

// TestScoreWhitespaceOnly 验证全空白注释固定 0 分。
func TestScoreWhitespaceOnly(t *testing.T) {
	c := New(Options{})

	for _, text := range []string{"", " ", " \t\r\n  "} {
		verdict := c.Classify(text)
		assert.Equal(t, Score{}, verdict.Score, "text %q", text)
		assert.False(t, verdict.Flagged)
	}
}

// TestClassifyCommentedCode 对应 // DoFoo(); 场景。
func TestClassifyCommentedCode(t *testing.T) {
	verdict := New(Options{}).Classify(" DoFoo();")

	assert.Equal(t, 13, verdict.Score.Value)
	assert.Equal(t, []string{RuleStatementTerminator, RuleDensePunctuation}, verdict.Score.Rules)
	assert.True(t, verdict.Flagged)
}

// TestClassifyDocComment 对应 XML 文档注释场景，分数不大于 0。
func TestClassifyDocComment(t *testing.T) {
	verdict := New(Options{}).Classify("/ <summary>Provides a nice smattering of comments</summary>")

	assert.LessOrEqual(t, verdict.Score.Value, 0)
	assert.False(t, verdict.Flagged)
}

// TestClassifyProse 验证普通句子得负分。
func TestClassifyProse(t *testing.T) {
	verdict := New(Options{}).Classify("Provides a nice smattering of comments.")

	assert.Equal(t, -10, verdict.Score.Value)
	assert.Equal(t, []string{RuleSentenceTerminator, RuleMostlyLetters}, verdict.Score.Rules)
	assert.False(t, verdict.Flagged)
}

// TestScoreRules 逐条验证规则权重。
func TestScoreRules(t *testing.T) {
	c := New(Options{})

	cases := []struct {
		name  string
		text  string
		score int
	}{
		{name: "sparse whitespace", text: "a    b", score: 5},
		{name: "trailing whitespace after terminator", text: "call();   ", score: 10},
		{name: "terminator only counts at the end", text: "a; b", score: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.score, c.Score(tc.text, Analyze(tc.text)).Value)
		})
	}
}

// TestScoreIsPure 验证相同输入多次打分结果一致。
func TestScoreIsPure(t *testing.T) {
	c := New(Options{})
	text := " var x = Compute(a, b);"
	analysis := Analyze(text)

	first := c.Score(text, analysis)
	second := c.Score(text, analysis)
	assert.Equal(t, first, second)
}

// TestClassifyThreshold 验证分数必须严格大于阈值。
func TestClassifyThreshold(t *testing.T) {
	assert.True(t, New(Options{Threshold: 12}).Classify(" DoFoo();").Flagged)
	assert.False(t, New(Options{Threshold: 13}).Classify(" DoFoo();").Flagged)
	assert.Equal(t, 13.0, New(Options{Threshold: 13}).Threshold())
}

// TestClassifyCustomTerminators 验证可配置的语句结束符。
func TestClassifyCustomTerminators(t *testing.T) {
	c := New(Options{StatementTerminators: ";{}"})
	verdict := c.Classify("if (x) {")

	require.Contains(t, verdict.Score.Rules, RuleStatementTerminator)
	assert.Equal(t, 13, verdict.Score.Value)
}
