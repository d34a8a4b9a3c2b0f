// Package ndconf 加载并校验 ND 监测插件的配置。
//
// 配置项对应插件的监测基线：
//
//	router_mac:            # 合法路由器的 MAC 白名单
//	  - "00:11:22:33:44:55"
//	host_mac:              # 已知主机的 MAC 白名单
//	  - "02:42:ac:11:00:02"
//	net_prefix:            # 受监测网段前缀
//	  - "fd00::/8"
//	report:
//	  schedule: "@every 60s"   # 巡检报告周期（cron 表达式）
//	  file: "/var/log/nd-report.log"
//	  title: "observed hosts"
//
// 基于 koanf 实现，按扩展名自动检测 YAML/JSON 格式；[LoadBytes]
// 支持从内存字节加载（K8s ConfigMap 等场景）。[Watch] 提供带防抖的
// 文件变更自动重载。
//
// 校验规则：
//   - 所有 MAC 必须是规范冒号格式，且为单播非特殊地址——广播/组播/
//     全零地址不可能是合法的主机身份，配置阶段即拒绝
//   - 前缀必须是合法的 CIDR；含 IPv6 zone ID 的写法被拒绝
//     （zone 信息会在前缀集合运算中被静默丢弃，导致匹配误判）
package ndconf
