package ndconf

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("ndconf: empty config path")

	// ErrUnsupportedFormat 表示无法识别的配置文件格式。
	// 支持的扩展名：.yaml/.yml/.json。
	ErrUnsupportedFormat = errors.New("ndconf: unsupported config format")

	// ErrLoadFailed 表示配置读取或解析失败。
	ErrLoadFailed = errors.New("ndconf: load failed")

	// ErrInvalidConfig 表示配置内容未通过校验。
	ErrInvalidConfig = errors.New("ndconf: invalid config")

	// ErrWatcherRunning 表示监视器已经启动。
	ErrWatcherRunning = errors.New("ndconf: watcher already running")

	// ErrWatcherStopped 表示监视器已停止，不可复用。
	ErrWatcherStopped = errors.New("ndconf: watcher stopped")
)
