package xmac

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xmac: empty input")

	// ErrInvalidFormat 表示 MAC 地址格式无效。
	ErrInvalidFormat = errors.New("xmac: invalid format")

	// ErrInvalidLength 表示 MAC 地址长度不正确（期望 6 字节 / 17 字符）。
	ErrInvalidLength = errors.New("xmac: invalid length")

	// ErrNilReceiver 表示对 nil 接收者调用了 Unmarshal 方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)
