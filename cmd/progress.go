package cmd

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// progressReporter 在 stderr 上显示已扫描文件数。
// 文件是惰性发现的，总数未知，因此使用 spinner 模式。
type progressReporter struct {
	bar *progressbar.ProgressBar
}

func newProgressReporter(writer io.Writer) *progressReporter {
	return &progressReporter{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(writer),
			progressbar.OptionSetDescription("Scanning files"),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("files/s"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// FileDone 实现 scanner.Progress。
func (p *progressReporter) FileDone(string) {
	_ = p.bar.Add(1)
}

func (p *progressReporter) Finish() {
	_ = p.bar.Finish()
}
