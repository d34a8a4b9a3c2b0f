package macset

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidCapacity 表示预估容量为负数。
	ErrInvalidCapacity = errors.New("macset: expected count must not be negative")

	// ErrNotFound 表示请求的 MAC 键不存在。
	// 对 Remove 而言这是正常结果而非故障，调用方可以忽略。
	ErrNotFound = errors.New("macset: mac not found")

	// ErrNilRecord 表示必须提供记录/载荷的操作收到了 nil。
	ErrNilRecord = errors.New("macset: nil record")

	// ErrNoKeyFunc 表示 AddHost 需要键派生函数但未通过 WithKeyFunc 配置。
	ErrNoKeyFunc = errors.New("macset: key func not configured")

	// ErrClosed 表示集合已 Close，不可再使用。
	ErrClosed = errors.New("macset: set closed")
)
