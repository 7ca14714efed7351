package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateOutputFile 创建报告输出文件。
// 如果目录不存在会自动创建。
func CreateOutputFile(path string) (*os.File, error) {
	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return nil, fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return file, nil
}
