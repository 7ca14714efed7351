package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"

	"github.com/gobwas/glob"
)

// discovery 惰性遍历目录树，逐个推送匹配的文件。
// 不会把文件列表物化到内存中，适合超大目录。
type discovery struct {
	root    string
	pattern glob.Glob
	exclude *regexp.Regexp
	logger  *slog.Logger
}

// newDiscovery 编译语言 glob（只匹配文件名，与目录无关）。
func newDiscovery(root string, pattern string, exclude *regexp.Regexp, logger *slog.Logger) (*discovery, error) {
	compiled, err := glob.Compile(pattern, filepath.Separator)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return &discovery{
		root:    root,
		pattern: compiled,
		exclude: exclude,
		logger:  logger,
	}, nil
}

// matches 判断文件是否需要扫描：文件名匹配 glob，且完整路径不命中排除正则。
func (d *discovery) matches(path string) bool {
	if !d.pattern.Match(filepath.Base(path)) {
		return false
	}
	return d.exclude == nil || !d.exclude.MatchString(path)
}

// walk 遍历目录，visit 返回错误时终止遍历。
// 单个目录项的读取错误交给 fail 记录，遍历继续。
func (d *discovery) walk(ctx context.Context, visit func(path string) error, fail func(path string, err error)) error {
	return filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			// 根目录本身不可读时 entry 为 nil，同样只记录不中断。
			fail(path, walkErr)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			return nil
		}

		if !d.matches(path) {
			return nil
		}

		d.logger.Debug("file discovered", "path", path)
		return visit(path)
	})
}
