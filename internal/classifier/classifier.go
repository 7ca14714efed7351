package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultStatementTerminators 是默认的语句结束符。
	DefaultStatementTerminators = ";"
	// DefaultSentenceTerminators 是默认的句子结束符。
	DefaultSentenceTerminators = "."
)

// 规则名称会出现在 verbose 报告中。
const (
	RuleStatementTerminator = "statement-terminator"
	RuleSentenceTerminator  = "sentence-terminator"
	RuleSparseWhitespace    = "sparse-whitespace"
	RuleMostlyLetters       = "mostly-letters"
	RuleDensePunctuation    = "dense-punctuation"
)

// Options 配置分类器。零值字段使用默认值。
type Options struct {
	Threshold            float64
	StatementTerminators string
	SentenceTerminators  string
}

// Score 是一次打分的结果，Rules 按匹配顺序记录命中的规则。
type Score struct {
	Value int      `json:"value"`
	Rules []string `json:"rules,omitempty"`
}

// Verdict 是 Classify 的完整输出。
type Verdict struct {
	Analysis Analysis
	Score    Score
	Flagged  bool
}

// rule 是一条线性规则：条件成立时把 weight 加到总分上。
type rule struct {
	name   string
	weight int
	match  func(last rune, analysis Analysis) bool
}

// Classifier 持有规则集合与阈值，创建后只读，可被多个 worker 并发使用。
type Classifier struct {
	threshold float64
	rules     []rule
}

// New 创建分类器。
func New(options Options) *Classifier {
	statement := options.StatementTerminators
	if statement == "" {
		statement = DefaultStatementTerminators
	}
	sentence := options.SentenceTerminators
	if sentence == "" {
		sentence = DefaultSentenceTerminators
	}

	return &Classifier{
		threshold: options.Threshold,
		rules: []rule{
			{
				name:   RuleStatementTerminator,
				weight: 10,
				match: func(last rune, _ Analysis) bool {
					return last != 0 && strings.ContainsRune(statement, last)
				},
			},
			{
				name:   RuleSentenceTerminator,
				weight: -5,
				match: func(last rune, _ Analysis) bool {
					return last != 0 && strings.ContainsRune(sentence, last)
				},
			},
			{
				name:   RuleSparseWhitespace,
				weight: 5,
				match: func(_ rune, analysis Analysis) bool {
					return analysis.Whitespace > 0.5
				},
			},
			{
				name:   RuleMostlyLetters,
				weight: -5,
				match: func(_ rune, analysis Analysis) bool {
					return analysis.Letters > 0.8
				},
			},
			{
				name:   RuleDensePunctuation,
				weight: 3,
				match: func(_ rune, analysis Analysis) bool {
					return analysis.Punctuation > 0.3
				},
			},
		},
	}
}

// Threshold 返回判定阈值，分数严格大于阈值才会被标记。
func (c *Classifier) Threshold() float64 {
	return c.threshold
}

// Score 根据文本与字符比例计算“像代码”的分数，是纯函数。
// 全空白文本固定为 0 分。
func (c *Classifier) Score(text string, analysis Analysis) Score {
	if analysis.Whitespace == 1 {
		return Score{}
	}

	last := lastNonSpace(text)

	var score Score
	for _, item := range c.rules {
		if item.match(last, analysis) {
			score.Value += item.weight
			score.Rules = append(score.Rules, item.name)
		}
	}
	return score
}

// Classify 对文本执行分析、打分和阈值判定。
func (c *Classifier) Classify(text string) Verdict {
	analysis := Analyze(text)
	score := c.Score(text, analysis)
	return Verdict{
		Analysis: analysis,
		Score:    score,
		Flagged:  float64(score.Value) > c.threshold,
	}
}

// lastNonSpace 返回最后一个非空白字符，没有时返回 0。
func lastNonSpace(text string) rune {
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	if trimmed == "" {
		return 0
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	return last
}
