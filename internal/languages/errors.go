package languages

import (
	"errors"
	"fmt"
)

var (
	// ErrInconsistentState 表示扫描器进入了状态表之外的状态。
	ErrInconsistentState = errors.New("scanner reached an unrepresented state")
	// ErrUnterminated 表示文件结束时仍有未闭合的注释/字符串/字面量。
	ErrUnterminated = errors.New("unterminated construct at end of file")
	// ErrUnknownLanguage 表示注册中心中没有对应语言。
	ErrUnknownLanguage = errors.New("unknown language")
)

// ConsistencyError 是单文件级别的致命错误，该文件会被放弃。
type ConsistencyError struct {
	Path  string
	State State
	Line  int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %v", e.Path, e.Line, e.State, ErrInconsistentState)
}

func (e *ConsistencyError) Unwrap() error {
	return ErrInconsistentState
}

// UnterminatedError 是非致命告警。
type UnterminatedError struct {
	Path  string
	State State
	Line  int
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %v", e.Path, e.Line, e.State, ErrUnterminated)
}

func (e *UnterminatedError) Unwrap() error {
	return ErrUnterminated
}
