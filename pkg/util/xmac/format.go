package xmac

// hexLower 十六进制字符表。
const hexLower = "0123456789abcdef"

// String 返回规范小写冒号格式的字符串表示（aa:bb:cc:dd:ee:ff）。
// 对任何值（含全零地址）都正常渲染。
// 预分配精确大小，零额外分配。
func (a Addr) String() string {
	var buf [textLen]byte
	a.appendTo(buf[:0])
	return string(buf[:])
}

// AppendText 将规范小写冒号格式追加到 b 并返回扩展后的切片。
// 适用于复用缓冲区的批量格式化（如集合报告输出）。
func (a Addr) AppendText(b []byte) []byte {
	return a.appendTo(b)
}

// appendTo 追加 17 字节的冒号十六进制渲染。
func (a Addr) appendTo(b []byte) []byte {
	for i := range 6 {
		if i > 0 {
			b = append(b, ':')
		}
		b = append(b, hexLower[a.bytes[i]>>4], hexLower[a.bytes[i]&0x0f])
	}
	return b
}
