package ndstate

import (
	"fmt"
	"net/netip"
	"time"

	"github.com/omeyang/ndkit/pkg/store/macset"
	"github.com/omeyang/ndkit/pkg/util/xmac"
)

// HostRecord 保存一个被观测主机的链路层身份与协议状态。
//
// MAC 必须是首字段：存储键直接从记录内嵌的 MAC 派生，无需单独拷贝。
// 记录交给集合后由集合独占所有权（见 macset 包文档）。
type HostRecord struct {
	// MAC 是主机的链路层地址，记录的唯一标识。
	MAC xmac.Addr

	// IP 是该 MAC 最近通告/应答的 IPv6 地址。
	IP netip.Addr

	// FirstSeen 是首次观测到该主机的时间。
	FirstSeen time.Time

	// LastSeen 是最近一次观测时间。
	LastSeen time.Time

	// RouterLifetime 是路由器通告携带的生存期；非路由器为 0。
	RouterLifetime time.Duration
}

// Key 从记录内嵌的 MAC 字段派生存储键。
// 作为 [macset.WithKeyFunc] 的参数使用。
func Key(r *HostRecord) xmac.Addr { return r.MAC }

// New 创建一条首次观测记录，FirstSeen 与 LastSeen 都取 now。
func New(mac xmac.Addr, ip netip.Addr, now time.Time) HostRecord {
	return HostRecord{
		MAC:       mac,
		IP:        ip,
		FirstSeen: now,
		LastSeen:  now,
	}
}

// Touch 更新最近观测时间。
func (r *HostRecord) Touch(now time.Time) {
	r.LastSeen = now
}

// IsRouter 报告该主机是否以路由器身份出现过（通告了非零生存期）。
func (r *HostRecord) IsRouter() bool {
	return r.RouterLifetime > 0
}

// String 返回紧凑的单行诊断表示。
func (r *HostRecord) String() string {
	return fmt.Sprintf("%s ip=%s last=%s", r.MAC, r.IP, r.LastSeen.Format(time.RFC3339))
}

// NewSet 返回按 ndstate 约定装配的主机集合：键派生自记录内嵌 MAC。
// expected 为预估条目数，0 取 macset 默认值。
func NewSet(expected int) (*macset.Set[HostRecord], error) {
	return macset.New(expected, macset.WithKeyFunc(Key))
}
