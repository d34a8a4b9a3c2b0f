// Package ndstate 定义 ND 监测中与 MAC 关联的主机状态记录。
//
// [HostRecord] 是 [macset.Set] 的典型载荷：首字段为内嵌 MAC，存储键
// 由 [Key] 从记录自身派生。[NewSet] 返回按此约定装配好的集合。
package ndstate
