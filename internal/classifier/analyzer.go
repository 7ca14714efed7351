// Package classifier 根据字符类别比例判断一段注释是否像被注释掉的代码。
// 规则是一组简单、可调的线性加减分，不是统计模型。
package classifier

import "unicode"

// Analysis 是一段文本的字符类别比例。
// 非空文本的五个比例之和为 1；空文本按“全部为空白”处理。
type Analysis struct {
	Letters     float64 `json:"letters"`
	Whitespace  float64 `json:"whitespace"`
	Digits      float64 `json:"digits"`
	Punctuation float64 `json:"punctuation"`
	Other       float64 `json:"other"`
	Length      int     `json:"length"`
}

// Analyze 单次遍历文本并统计各类字符所占比例。
// 每个字符按 letter → whitespace → digit → punctuation → other 的顺序归入第一个匹配的类别。
func Analyze(text string) Analysis {
	var letters, whitespace, digits, punctuation, other int

	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsSpace(r):
			whitespace++
		case unicode.IsNumber(r):
			digits++
		case unicode.IsPunct(r):
			punctuation++
		default:
			other++
		}
	}

	total := letters + whitespace + digits + punctuation + other
	if total == 0 {
		return Analysis{Whitespace: 1}
	}

	denominator := float64(total)
	return Analysis{
		Letters:     float64(letters) / denominator,
		Whitespace:  float64(whitespace) / denominator,
		Digits:      float64(digits) / denominator,
		Punctuation: float64(punctuation) / denominator,
		Other:       float64(other) / denominator,
		Length:      total,
	}
}
