package languages

import "fmt"

// State 是扫描器在块边界之间持久化的词法状态。
// 状态集合是封闭的，任何未列出的值都视为内部一致性错误。
type State uint8

const (
	StateNormal State = iota
	StateMaybeCommentStart
	StateLineComment
	StateBlockComment
	StateMaybeBlockCommentEnd
	StateStringLiteral
	StateStringEscape
	StateMaybeVerbatimString
	StateVerbatimString
	StateVerbatimQuoteEscape
	StateCharLiteral
	StateCharEscape
)

var stateNames = [...]string{
	StateNormal:               "Normal",
	StateMaybeCommentStart:    "MaybeCommentStart",
	StateLineComment:          "LineComment",
	StateBlockComment:         "BlockComment",
	StateMaybeBlockCommentEnd: "MaybeBlockCommentEnd",
	StateStringLiteral:        "StringLiteral",
	StateStringEscape:         "StringEscape",
	StateMaybeVerbatimString:  "MaybeVerbatimString",
	StateVerbatimString:       "VerbatimString",
	StateVerbatimQuoteEscape:  "VerbatimQuoteEscape",
	StateCharLiteral:          "CharLiteral",
	StateCharEscape:           "CharEscape",
}

// Valid 判断状态是否属于封闭集合。
func (s State) Valid() bool {
	return int(s) < len(stateNames)
}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", uint8(s))
	}
	return stateNames[s]
}
