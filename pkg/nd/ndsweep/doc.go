// Package ndsweep 周期性巡检主机集合并输出诊断报告。
//
// [Sweeper] 按 cron 表达式调度巡检任务，每轮：
//
//  1. 计算集合成员指纹（macset.Digest），成员未变化时跳过本轮报告
//     （可用 [WithAlwaysReport] 关闭跳过）
//  2. 遍历集合统计条目数、记录数、同一 IPv6 地址被多个 MAC 声明的
//     数量、落在受监测前缀之外的数量
//  3. 将 MAC 清单报告写入按大小轮转的文件 sink（lumberjack），并经
//     log/slog 输出带 run_id（UUID）的结构化摘要
//
// ndsweep 只做报告，不做规则匹配，也不产生告警——重复 IP 声明等
// 统计仅以日志属性形式呈现，处置由消费方决定。
//
// # 并发约束
//
// 巡检任务内部以互斥锁串行化，重叠调度不会交错输出。但被巡检的
// 集合本身不加锁：调用方必须保证巡检期间没有其他执行上下文在变更
// 同一集合（单一所有者模型，见 macset 包文档）。
package ndsweep
