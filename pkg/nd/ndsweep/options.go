package ndsweep

import (
	"io"
	"log/slog"

	"go4.org/netipx"
)

// Option 定义 Sweeper 的可选配置函数类型。
type Option func(*options)

type options struct {
	schedule string
	title    string
	logger   *slog.Logger
	sink     io.Writer
	sinkFile string
	prefixes *netipx.IPSet
	always   bool
}

// WithSchedule 设置巡检周期（robfig/cron 表达式，支持 @every 简写）。
// 默认 "@every 60s"。
func WithSchedule(spec string) Option {
	return func(o *options) {
		if spec != "" {
			o.schedule = spec
		}
	}
}

// WithTitle 设置报告标题。默认 "observed hosts"。
func WithTitle(title string) Option {
	return func(o *options) {
		if title != "" {
			o.title = title
		}
	}
}

// WithLogger 设置结构化日志输出。默认 [slog.Default]。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSinkFile 设置报告文件路径，按大小轮转（lumberjack）。
// 文件由 Sweeper 持有，[Sweeper.Stop] 时关闭。
func WithSinkFile(path string) Option {
	return func(o *options) {
		o.sinkFile = path
	}
}

// WithSink 设置报告输出目标。
// 与 [WithSinkFile] 互斥，后设者生效；writer 的生命周期归调用方。
func WithSink(w io.Writer) Option {
	return func(o *options) {
		o.sink = w
		o.sinkFile = ""
	}
}

// WithPrefixes 设置受监测前缀集合，用于统计落在前缀之外的记录。
// 未设置时不做前缀统计。
func WithPrefixes(set *netipx.IPSet) Option {
	return func(o *options) {
		o.prefixes = set
	}
}

// WithAlwaysReport 关闭"成员未变化时跳过报告"的指纹优化，每轮都
// 完整输出。
func WithAlwaysReport() Option {
	return func(o *options) {
		o.always = true
	}
}
