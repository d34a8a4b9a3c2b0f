package xmac

import "fmt"

// textLen 规范冒号格式的固定长度：6*2 个十六进制字符 + 5 个分隔符。
const textLen = 17

// Parse 解析规范冒号格式的 MAC 地址字符串（xx:xx:xx:xx:xx:xx）。
//
// 大小写不敏感，结果统一小写存储。输入会自动去除首尾空白。
// 逐字符校验，畸形输入返回错误，适用于配置文件、CLI 等边界输入。
// 可信的逐包热路径请使用 [ParseUnchecked]。
func Parse(s string) (Addr, error) {
	s = trimSpace(s)
	if s == "" {
		return Addr{}, ErrEmpty
	}
	if len(s) != textLen {
		return Addr{}, fmt.Errorf("%w: expected %d chars, got %d", ErrInvalidLength, textLen, len(s))
	}
	if s[2] != ':' || s[5] != ':' || s[8] != ':' || s[11] != ':' || s[14] != ':' {
		return Addr{}, fmt.Errorf("%w: separators must be ':'", ErrInvalidFormat)
	}

	var addr Addr
	for i := range 6 {
		offset := i * 3 // 每组 2 个十六进制字符 + 1 个分隔符
		b, ok := parseHexByte(s[offset], s[offset+1])
		if !ok {
			return Addr{}, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, offset)
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseUnchecked 按固定偏移（0,3,6,9,12,15）解析冒号格式 MAC 地址，
// 不做逐字符校验。
//
// 这是面向可信输入的快速路径：上游解码器已保证格式时，对每个报文重复
// 校验是不必要的开销。契约：
//   - 输入短于 17 字符时返回零值 Addr（不越界读取）
//   - 畸形的十六进制字符产生无意义（但内存安全）的字节值，不报错
//   - 第 17 字符之后的内容被忽略
//
// 边界输入（配置、CLI、外部数据）必须使用 [Parse]。
func ParseUnchecked(s string) Addr {
	if len(s) < textLen {
		return Addr{}
	}
	var addr Addr
	for i := range 6 {
		offset := i * 3
		addr.bytes[i] = hexNib[s[offset]]<<4 | hexNib[s[offset+1]]
	}
	return addr
}

// ParseBytes 从字节切片创建 MAC 地址。
// 切片长度必须为 6。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

// hexNib 十六进制字符到 4 位值的查表。无效字符映射为 0。
// 仅供 [ParseUnchecked] 使用：查表免去分支，畸形输入静默产生无意义值。
var hexNib = func() (t [256]byte) {
	for c := byte('0'); c <= '9'; c++ {
		t[c] = c - '0'
	}
	for c := byte('a'); c <= 'f'; c++ {
		t[c] = c - 'a' + 10
	}
	for c := byte('A'); c <= 'F'; c++ {
		t[c] = c - 'A' + 10
	}
	return t
}()

// parseHexByte 解析两个十六进制字符为一个字节，无效字符返回 ok=false。
func parseHexByte(high, low byte) (byte, bool) {
	h := hexValue(high)
	l := hexValue(low)
	if h < 0 || l < 0 {
		return 0, false
	}
	return byte(h<<4 | l), true
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}

// trimSpace 去除首尾 ASCII 空白。
// 不用 strings.TrimSpace 的 Unicode 处理：MAC 文本只含 ASCII。
func trimSpace(s string) string {
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
