package xmac

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出规范小写冒号格式（aa:bb:cc:dd:ee:ff）。
// 经由此方法，Addr 可直接出现在 JSON、YAML 配置结构中。
func (a Addr) MarshalText() ([]byte, error) {
	return a.appendTo(make([]byte, 0, textLen)), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受 [Parse] 支持的规范冒号格式。
// 空输入设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
