package ndsweep

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrNilSet 表示未提供被巡检的集合。
	ErrNilSet = errors.New("ndsweep: nil set")

	// ErrAlreadyStarted 表示 Sweeper 已经启动。
	ErrAlreadyStarted = errors.New("ndsweep: already started")

	// ErrBadSchedule 表示 cron 表达式无法解析。
	ErrBadSchedule = errors.New("ndsweep: bad schedule")
)
