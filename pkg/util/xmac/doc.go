// Package xmac 提供链路层 MAC 地址（EUI-48）的值类型与文本处理。
//
// xmac 面向网络流量监测场景设计，提供：
//
//   - 不可变值类型 [Addr]：可比较（==）、可作 map key、栈分配零堆开销
//   - 严格校验的规范格式解析 [Parse]（xx:xx:xx:xx:xx:xx）
//   - 面向可信输入的快速解析 [ParseUnchecked]（热路径使用，不做逐字符校验）
//   - 规范小写冒号格式输出 [Addr.String] / [Addr.AppendText]
//   - 字节序全序比较 [Addr.Compare]（与 memcmp 语义一致）
//   - 地址属性判断（单播/多播、广播、本地管理）
//   - Text 序列化支持（配置文件与 JSON 中直接使用）
//
// # 快速示例
//
// 解析和格式化：
//
//	addr, err := xmac.Parse("AA:BB:CC:DD:EE:FF")
//	fmt.Println(addr.String()) // aa:bb:cc:dd:ee:ff
//
// 抓包热路径（输入来自已校验的上游解码器）：
//
//	addr := xmac.ParseUnchecked(line[:17])
//
// # 设计决策
//
//   - 使用 [6]byte 固定数组而非 []byte 切片：值语义、可比较、栈分配
//   - 仅支持 EUI-48（6 字节），不支持 EUI-64（8 字节）
//   - 内部统一小写存储，输出固定为小写冒号格式
//   - 全零地址 00:00:00:00:00:00 是合法的可存储值：被动监听到的畸形或
//     特殊帧可能携带全零源地址，监测系统必须能记录它。因此 xmac 不设
//     "零值即无效"语义，String 对任何值都正常渲染
//   - 无共享可变缓冲：所有解析/格式化均为值返回，并发调用互不影响
//
// # Parse 与 ParseUnchecked 的选择
//
// [Parse] 逐字符校验，适用于配置文件、CLI 等边界输入。
// [ParseUnchecked] 按固定偏移直接取字节，畸形输入产生无意义（但内存
// 安全）的结果而非报错，适用于上游已保证格式的逐包处理路径——对每个
// 报文重复校验同一格式是不必要的开销。
package xmac
