package macset

import "github.com/omeyang/ndkit/pkg/util/xmac"

// Option 定义集合的可选配置函数类型。
type Option[H any] func(*options[H])

// options 内部可选配置。
type options[H any] struct {
	release func(*H)
	keyOf   func(*H) xmac.Addr
}

// WithRelease 设置记录释放回调。
//
// 回调在 Remove、覆盖插入和 Close 路径同步执行，对每条在管记录恰好
// 调用一次；仅标记条目不触发回调。调用方必须遵守以下约束：
//   - 严禁在回调中调用 Set 自身的任何方法，单一所有者模型下这是
//     变更操作内的重入
//   - 应避免耗时操作，回调阻塞即是报文处理路径阻塞
//
// 未配置时记录仅被解除引用，由 GC 回收（适用于无外部资源的纯数据
// 记录）。
func WithRelease[H any](fn func(*H)) Option[H] {
	return func(o *options[H]) {
		o.release = fn
	}
}

// WithKeyFunc 设置从记录派生存储键的函数。
//
// [Set.AddHost] 依赖它从载荷内嵌的 MAC 字段取键，无需调用方单独传
// 键。fn 收到的指针是集合新分配的记录，只应读取其 MAC 字段。
func WithKeyFunc[H any](fn func(*H) xmac.Addr) Option[H] {
	return func(o *options[H]) {
		o.keyOf = fn
	}
}
