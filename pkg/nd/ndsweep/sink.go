package ndsweep

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 报告文件轮转默认值。
// 报告是低频纯文本，上限取得比通用日志小。
const (
	// DefaultSinkMaxSizeMB 单个报告文件最大大小（MB）。
	DefaultSinkMaxSizeMB = 10

	// DefaultSinkMaxBackups 保留的轮转备份数量。
	DefaultSinkMaxBackups = 3

	// DefaultSinkMaxAgeDays 轮转备份保留天数。
	DefaultSinkMaxAgeDays = 14
)

// newRotatingSink 创建按大小轮转的报告文件 sink。
// lumberjack 首次写入时才创建文件，路径错误延迟到写入时暴露。
func newRotatingSink(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    DefaultSinkMaxSizeMB,
		MaxBackups: DefaultSinkMaxBackups,
		MaxAge:     DefaultSinkMaxAgeDays,
		Compress:   true,
		LocalTime:  false, // 备份文件名统一用 UTC
	}
}
