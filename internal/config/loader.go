package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix 是环境变量前缀，例如 COMMENTCLEANER_WORKERS、COMMENTCLEANER_REPORT_STYLE。
	EnvPrefix = "COMMENTCLEANER"
	// FileName 是自动查找的配置文件名（不含扩展名）。
	FileName = ".commentcleaner"
)

// Loader 使用 viper 组合默认值、配置文件、环境变量与命令行参数。
type Loader struct {
	v           *viper.Viper
	configFile  string
	searchPaths []string
}

// NewLoader 创建加载器。
// configFile 非空时只读取该文件（不存在即报错）；否则在 searchPaths 中查找 .commentcleaner.yaml，找不到时使用默认值。
// 调用方可以在 Load 之前把命令行参数绑定到 v 上。
func NewLoader(v *viper.Viper, configFile string, searchPaths ...string) *Loader {
	if v == nil {
		v = viper.New()
	}
	return &Loader{
		v:           v,
		configFile:  configFile,
		searchPaths: searchPaths,
	}
}

// Load 读取配置，不做校验（Root 可能在之后由位置参数补充）。
func (l *Loader) Load() (*Config, error) {
	v := l.v

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		for _, path := range l.searchPaths {
			v.AddConfigPath(path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ConfigFileUsed 返回实际读取的配置文件路径，没有读取时为空。
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// setDefaults 把 Default() 的值注册到 viper，同时让 AutomaticEnv 能识别全部键。
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("root", defaults.Root)
	v.SetDefault("language", defaults.Language)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("ignore", defaults.Ignore)
	v.SetDefault("chunk_size", defaults.ChunkSize)
	v.SetDefault("threshold", defaults.Threshold)
	v.SetDefault("flush_on_eof", defaults.FlushOnEOF)
	v.SetDefault("sharding", defaults.Sharding)
	v.SetDefault("mode", defaults.Mode)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("quiet", defaults.Quiet)

	v.SetDefault("report.style", defaults.Report.Style)
	v.SetDefault("report.output", defaults.Report.Output)
	v.SetDefault("report.color", defaults.Report.Color)

	v.SetDefault("classifier.statement_terminators", defaults.Classifier.StatementTerminators)
	v.SetDefault("classifier.sentence_terminators", defaults.Classifier.SentenceTerminators)
}
