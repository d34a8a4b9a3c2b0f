package macset

import (
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/omeyang/ndkit/pkg/util/xmac"
)

// All 返回遍历全部条目的迭代器，值为附带的记录（标记条目为 nil）。
//
// 迭代器自带键快照，自持游标，互相独立：
//   - 同一集合可同时存在多个迭代器
//   - 迭代期间的变更不会破坏遍历——快照中已被删除的键自然跳过，
//     快照之后新增的键不在本次遍历中出现
//   - 每个存活条目恰好访问一次，顺序未定义（既非插入序也非排序）
func (s *Set[H]) All() iter.Seq2[xmac.Addr, *H] {
	return func(yield func(xmac.Addr, *H) bool) {
		if s.closed {
			return
		}
		for _, addr := range s.lru.Keys() {
			e, ok := s.lru.Peek(addr)
			if !ok {
				continue
			}
			if !yield(addr, e.rec) {
				return
			}
		}
	}
}

// Addrs 返回仅遍历键的迭代器，快照语义与 [Set.All] 相同。
func (s *Set[H]) Addrs() iter.Seq[xmac.Addr] {
	return func(yield func(xmac.Addr) bool) {
		if s.closed {
			return
		}
		for _, addr := range s.lru.Keys() {
			if !s.lru.Contains(addr) {
				continue
			}
			if !yield(addr) {
				return
			}
		}
	}
}

// Digest 返回集合成员的指纹：对排序后的全部键做 xxhash。
//
// 只反映键集合，不含记录内容——用于周期巡检判断"成员有没有变化"，
// 成员不变时跳过重复报告。空集合返回固定值。
func (s *Set[H]) Digest() uint64 {
	h := xxhash.New()
	if s.closed {
		return h.Sum64()
	}
	keys := s.lru.Keys()
	// 后备存储的键序不稳定，排序保证指纹确定性
	slices.SortFunc(keys, xmac.Addr.Compare)
	for _, k := range keys {
		b := k.Bytes()
		_, _ = h.Write(b[:])
	}
	return h.Sum64()
}
