package languages

// CSharpProfile 是 C# 语言描述。
type CSharpProfile struct{}

// Name 返回语言名称。
func (p *CSharpProfile) Name() string {
	return "CSharp"
}

// Aliases 返回 C# 的常用别名。
func (p *CSharpProfile) Aliases() []string {
	return []string{"csharp", "cs", "c#"}
}

// Pattern 返回 C# 源文件匹配模式。
func (p *CSharpProfile) Pattern() string {
	return "*.cs"
}

// Scanner 返回 C# 专用 FSM 扫描器。
func (p *CSharpProfile) Scanner() Scanner {
	return &CSharpScanner{}
}

// CSharpScanner 是 C# 的可续扫词法状态机。
//
// 只识别注释、字符串、逐字字符串（@"..."）和字符字面量的边界，
// 不做任何语法分析。每个字符只看一次，不跨 chunk 预读。
type CSharpScanner struct{}

// Scan 逐字符推进 Document 中的状态。
func (s *CSharpScanner) Scan(doc *Document, chunk []rune, emit EmitFunc) error {
	for _, c := range chunk {
		if err := s.step(doc, c, emit); err != nil {
			return err
		}
	}
	return nil
}

// step 是状态转移表本身。
func (s *CSharpScanner) step(doc *Document, c rune, emit EmitFunc) error {
	switch doc.state {
	case StateNormal:
		s.normal(doc, c)

	case StateMaybeCommentStart:
		switch c {
		case '/':
			doc.state = StateLineComment
			doc.markCommentBegin()
		case '*':
			doc.state = StateBlockComment
			doc.markCommentBegin()
		default:
			// 只是除号，当前字符重新按 Normal 处理。
			doc.state = StateNormal
			s.normal(doc, c)
		}

	case StateLineComment:
		if c == '\n' {
			emit(doc.closeComment(true))
			doc.incrementLine()
			doc.state = StateNormal
			return nil
		}
		doc.appendRune(c)

	case StateBlockComment:
		switch c {
		case '*':
			doc.state = StateMaybeBlockCommentEnd
		case '\n':
			doc.incrementLine()
			doc.appendRune(c)
		default:
			doc.appendRune(c)
		}

	case StateMaybeBlockCommentEnd:
		switch c {
		case '/':
			emit(doc.closeComment(false))
			doc.state = StateNormal
		case '*':
			// "**/" 仍然可以闭合，只把前一个 * 写入缓冲区。
			doc.appendRune('*')
		default:
			if c == '\n' {
				doc.incrementLine()
			}
			doc.appendRune('*')
			doc.appendRune(c)
			doc.state = StateBlockComment
		}

	case StateStringLiteral:
		switch c {
		case '"':
			doc.state = StateNormal
		case '\\':
			doc.state = StateStringEscape
		case '\n':
			// 普通字符串不能跨行，遇到换行即恢复，避免吞掉后续内容。
			doc.incrementLine()
			doc.state = StateNormal
		}

	case StateStringEscape:
		if c == '\n' {
			doc.incrementLine()
			doc.state = StateNormal
			return nil
		}
		doc.state = StateStringLiteral

	case StateMaybeVerbatimString:
		if c == '"' {
			doc.state = StateVerbatimString
			return nil
		}
		doc.state = StateNormal
		s.normal(doc, c)

	case StateVerbatimString:
		switch c {
		case '"':
			doc.state = StateVerbatimQuoteEscape
		case '\n':
			doc.incrementLine()
		}

	case StateVerbatimQuoteEscape:
		if c == '"' {
			// "" 是逐字字符串内的转义引号。
			doc.state = StateVerbatimString
			return nil
		}
		doc.state = StateNormal
		s.normal(doc, c)

	case StateCharLiteral:
		switch c {
		case '\'':
			doc.state = StateNormal
		case '\\':
			doc.state = StateCharEscape
		case '\n':
			doc.incrementLine()
			doc.state = StateNormal
		}

	case StateCharEscape:
		if c == '\n' {
			doc.incrementLine()
			doc.state = StateNormal
			return nil
		}
		doc.state = StateCharLiteral

	default:
		return &ConsistencyError{Path: doc.Path, State: doc.state, Line: doc.line}
	}

	return nil
}

// normal 处理 Normal 状态下的一个字符，也用于回退后的重新消费。
func (s *CSharpScanner) normal(doc *Document, c rune) {
	switch c {
	case '/':
		doc.state = StateMaybeCommentStart
	case '"':
		doc.state = StateStringLiteral
	case '\'':
		doc.state = StateCharLiteral
	case '@':
		doc.state = StateMaybeVerbatimString
	case '\n':
		doc.incrementLine()
	}
}

// Finish 在文件结束时收尾，调用后 Document 总是回到 Normal。
func (s *CSharpScanner) Finish(doc *Document, flush bool, emit EmitFunc) error {
	state := doc.state
	defer func() {
		doc.state = StateNormal
	}()

	switch state {
	case StateNormal, StateMaybeCommentStart, StateMaybeVerbatimString, StateVerbatimQuoteEscape:
		return nil

	case StateLineComment:
		// 最后一行没有换行符的行注释是完整的。
		emit(doc.closeComment(true))
		return nil

	case StateBlockComment, StateMaybeBlockCommentEnd:
		if state == StateMaybeBlockCommentEnd {
			doc.appendRune('*')
		}
		begin := doc.begin
		if flush {
			emit(doc.closeComment(false))
		} else {
			doc.discardComment()
		}
		return &UnterminatedError{Path: doc.Path, State: state, Line: begin}

	case StateStringLiteral, StateStringEscape, StateVerbatimString, StateCharLiteral, StateCharEscape:
		return &UnterminatedError{Path: doc.Path, State: state, Line: doc.line}

	default:
		return &ConsistencyError{Path: doc.Path, State: state, Line: doc.line}
	}
}
