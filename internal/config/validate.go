package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"commentcleaner/internal/report"
	"commentcleaner/internal/scanner"
)

// ErrInvalidConfig 是全部配置错误的哨兵值，可用 errors.Is 判断。
var ErrInvalidConfig = errors.New("invalid configuration")

// Error 描述单个字段的配置错误。配置错误在扫描开始前检出，整个运行直接失败。
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrInvalidConfig
}

// Validate 检查配置的完整性，所有问题合并为一个错误返回。
func (c *Config) Validate() error {
	var errs []error
	invalid := func(field string, format string, args ...any) {
		errs = append(errs, &Error{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(c.Root) == "" {
		invalid("root", "directory is required")
	} else if info, err := os.Stat(c.Root); err != nil {
		invalid("root", "%v", err)
	} else if !info.IsDir() {
		invalid("root", "%s is not a directory", c.Root)
	}

	if strings.TrimSpace(c.Language) == "" {
		invalid("language", "language is required")
	}

	if c.Workers <= 0 {
		invalid("workers", "must be greater than 0, got %d", c.Workers)
	}

	if c.ChunkSize <= 0 {
		invalid("chunk_size", "must be greater than 0, got %d", c.ChunkSize)
	}

	if _, err := c.ExcludePattern(); err != nil {
		invalid("ignore", "%v", err)
	}

	shardings := []string{string(scanner.ShardingRoundRobin), string(scanner.ShardingShared)}
	if !slices.Contains(shardings, c.Sharding) {
		invalid("sharding", "unsupported value %q, allowed values: %s", c.Sharding, strings.Join(shardings, ", "))
	}

	modes := []string{ModeReport, ModeProfile}
	if !slices.Contains(modes, strings.ToLower(c.Mode)) {
		invalid("mode", "unsupported value %q, allowed values: %s", c.Mode, strings.Join(modes, ", "))
	}

	if !slices.Contains(report.Styles(), strings.ToLower(c.Report.Style)) {
		invalid("report.style", "unsupported value %q, allowed values: %s", c.Report.Style, strings.Join(report.Styles(), ", "))
	}

	return errors.Join(errs...)
}

// ExcludePattern 编译排除正则，为空时返回 nil。
func (c *Config) ExcludePattern() (*regexp.Regexp, error) {
	if c.Ignore == "" {
		return nil, nil
	}
	return regexp.Compile(c.Ignore)
}
