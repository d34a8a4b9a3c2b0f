package xmac

// broadcastAddr 返回内部使用的广播地址。
// 函数形式表达"只读常量"意图，编译器会内联（零运行时开销）。
func broadcastAddr() Addr { return Addr{bytes: [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}} }

// Zero 返回全零地址 00:00:00:00:00:00。
// 与零值 Addr{} 相同。被动监测中可能真实观察到（畸形帧源地址）。
func Zero() Addr { return Addr{} }

// Broadcast 返回广播地址 ff:ff:ff:ff:ff:ff。
func Broadcast() Addr { return broadcastAddr() }

// IsZero 报告 a 是否为全零地址（00:00:00:00:00:00）。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// IsBroadcast 报告 a 是否为广播地址（ff:ff:ff:ff:ff:ff）。
func (a Addr) IsBroadcast() bool {
	return a == broadcastAddr()
}

// IsUnicast 报告 a 是否为单播地址。
// 单播地址的第一字节最低位（bit 0）为 0。
func (a Addr) IsUnicast() bool {
	return (a.bytes[0] & 0x01) == 0
}

// IsMulticast 报告 a 是否为多播地址。
// 多播地址的第一字节最低位（bit 0）为 1。
// 广播地址也是一种特殊的多播地址。
func (a Addr) IsMulticast() bool {
	return (a.bytes[0] & 0x01) == 1
}

// IsLocallyAdministered 报告 a 是否为本地管理地址（LAA）。
// LAA 的第一字节次低位（bit 1）为 1。
// 虚拟机、容器以及部分地址随机化的终端通常使用 LAA。
func (a Addr) IsLocallyAdministered() bool {
	return (a.bytes[0] & 0x02) == 0x02
}

// IsSpecial 报告 a 是否为特殊地址（全零或广播）。
// 特殊地址不应作为合法主机身份参与路由器/主机名单配置。
func (a Addr) IsSpecial() bool {
	return a.IsZero() || a.IsBroadcast()
}
