package report

import (
	"bufio"
	"io"
	"sync"
)

// Sink 是报告的最小输出接口：追加一行、刷新。
type Sink interface {
	WriteLine(line string) error
	Flush() error
}

// SyncSink 在 bufio.Writer 外加互斥锁，保证并发写入时每一行完整不交错。
type SyncSink struct {
	mu     sync.Mutex
	writer *bufio.Writer
}

// NewSyncSink 创建并发安全的行输出。
func NewSyncSink(writer io.Writer) *SyncSink {
	return &SyncSink{writer: bufio.NewWriter(writer)}
}

// WriteLine 写入一行，自动追加换行符。
func (s *SyncSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.writer.WriteString(line); err != nil {
		return err
	}
	return s.writer.WriteByte('\n')
}

// Flush 把缓冲内容写到底层 writer。
func (s *SyncSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writer.Flush()
}
