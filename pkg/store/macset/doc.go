// Package macset 提供以 MAC 地址为键的归属式关联存储。
//
// macset 是 ND 流量监测核心的共享状态容器：每个被观测到的 MAC 地址
// 对应一个条目，条目要么是"仅标记"（只记录出现过，无附加数据），要么
// 持有一条由集合独占所有权的主机记录。所有上层关联/比对逻辑都建立在
// 这个容器的插入、查找、删除、遍历原语之上。
//
// # 核心组件
//
//   - [Set]：泛型归属集合，键为 [xmac.Addr]，值为标记或 *H 记录
//   - [WithRelease]：记录析构回调，在 Remove/Close/覆盖 时对每条
//     在管记录恰好调用一次
//   - [WithKeyFunc]：从记录内嵌的 MAC 字段派生存储键（AddHost 使用）
//
// 后备存储为 hashicorp/golang-lru 的 simplelru：提供插入/查找/删除/
// 计数/键快照与淘汰回调。容量只是预估值——集合在写满前主动扩容，
// 后备存储绝不会自行淘汰条目，因此淘汰回调只在显式删除、覆盖和
// Close 时触发，语义上就是"调用方提供的值析构函数"。
//
// # 所有权协议
//
// 集合是每条已接收记录的唯一所有者：
//   - [Set.AddRecord] 交接一个既有记录的所有权（不复制）
//   - [Set.AddHost] 复制载荷到新分配的记录再接管
//   - [Set.Get] 返回的引用是借用：下一次对同一集合的变更调用
//     （Remove/Add*/Close）之后不得继续持有
//   - [Set.Close] 幂等；对每条残留记录恰好调用一次释放回调，
//     标记条目无需任何动作
//
// # 覆盖策略
//
// 对已存在的键再次插入时，集合先释放被取代的旧记录，再写入新值
// （release-then-replace）。报文路径会合法地重新学习同一 MAC 的新
// 状态，拒绝重复插入会迫使调用方先删后插，而静默覆盖则会泄漏旧
// 记录，两者都不可取。
//
// # Get 的歧义
//
// [Set.Get] 对"键不存在"和"键存在但仅为标记"都返回 (nil, false)，
// 两种情况经此操作不可区分。需要区分时先调用 [Set.Contains]。
//
// # 并发模型
//
// Set 不做内部加锁，面向单执行上下文的 run-to-completion 处理模型
// （每个捕获单元同步完成全部变更与查询）。跨 goroutine 使用必须由
// 调用方自行同步。[Set.All] 返回自带快照的独立迭代器，迭代期间的
// 变更不会破坏遍历（迭代中被删除的键自然跳过，快照后新增的键不在
// 本次遍历中出现）。
package macset
