// Package config 负责 commentcleaner 的配置模型、默认值、加载与校验。
// 加载优先级（低到高）：默认值 → 配置文件 → 环境变量 → 显式设置的命令行参数。
package config

import (
	"commentcleaner/internal/classifier"
	"commentcleaner/internal/report"
	"commentcleaner/internal/scanner"
)

// 输出模式。
const (
	// ModeReport 只输出被标记为代码的注释。
	ModeReport = "report"
	// ModeProfile 输出全部注释及其分数，便于调整阈值。
	ModeProfile = "profile"
)

// Config 是一次运行的完整配置。
type Config struct {
	Root       string           `yaml:"root" mapstructure:"root"`
	Language   string           `yaml:"language" mapstructure:"language"`
	Workers    int              `yaml:"workers" mapstructure:"workers"`
	Ignore     string           `yaml:"ignore" mapstructure:"ignore"`         // 作用于完整路径的排除正则
	ChunkSize  int              `yaml:"chunk_size" mapstructure:"chunk_size"` // 每次读取的字符数
	Threshold  float64          `yaml:"threshold" mapstructure:"threshold"`
	FlushOnEOF bool             `yaml:"flush_on_eof" mapstructure:"flush_on_eof"`
	Sharding   string           `yaml:"sharding" mapstructure:"sharding"`
	Mode       string           `yaml:"mode" mapstructure:"mode"`
	Verbose    bool             `yaml:"verbose" mapstructure:"verbose"`
	Quiet      bool             `yaml:"quiet" mapstructure:"quiet"`
	Report     ReportConfig     `yaml:"report" mapstructure:"report"`
	Classifier ClassifierConfig `yaml:"classifier" mapstructure:"classifier"`
}

// ReportConfig 控制报告格式与输出位置。
type ReportConfig struct {
	Style  string `yaml:"style" mapstructure:"style"`   // text / json / xml
	Output string `yaml:"output" mapstructure:"output"` // 为空时输出到标准输出
	Color  bool   `yaml:"color" mapstructure:"color"`
}

// ClassifierConfig 控制打分规则中的结束符集合。
type ClassifierConfig struct {
	StatementTerminators string `yaml:"statement_terminators" mapstructure:"statement_terminators"`
	SentenceTerminators  string `yaml:"sentence_terminators" mapstructure:"sentence_terminators"`
}

// Default 返回默认配置。Root 与 Language 没有默认值，必须由用户提供。
func Default() *Config {
	return &Config{
		Workers:   scanner.DefaultWorkers,
		ChunkSize: scanner.DefaultChunkSize,
		Threshold: 0,
		Sharding:  string(scanner.ShardingRoundRobin),
		Mode:      ModeReport,
		Report: ReportConfig{
			Style: report.StyleText,
			Color: true,
		},
		Classifier: ClassifierConfig{
			StatementTerminators: classifier.DefaultStatementTerminators,
			SentenceTerminators:  classifier.DefaultSentenceTerminators,
		},
	}
}
