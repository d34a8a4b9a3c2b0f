package macset

import (
	"fmt"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/omeyang/ndkit/pkg/util/xmac"
)

// DefaultExpected 是 New(0, ...) 时采用的默认预估容量。
const DefaultExpected = 20

// entry 是条目值：rec == nil 表示仅标记（出现过，无附加数据），
// 否则为集合独占所有的主机记录。
// 类型层面消除"标记 vs 缺失"的内部歧义，对外语义见包文档。
type entry[H any] struct {
	rec *H
}

// Set 是以 MAC 地址为键的归属集合。
// 必须通过 [New] 创建，零值不可用。
// 不做内部加锁，并发约束见包文档。
type Set[H any] struct {
	lru     *simplelru.LRU[xmac.Addr, entry[H]]
	cap     int
	release func(*H)
	keyOf   func(*H) xmac.Addr
	closed  bool
}

// New 创建集合。
//
// expected 是预估条目数（容量提示，而非上限；集合按需扩容）。
// expected == 0 采用默认值 [DefaultExpected]，负数返回
// [ErrInvalidCapacity]。
func New[H any](expected int, opts ...Option[H]) (*Set[H], error) {
	if expected < 0 {
		return nil, ErrInvalidCapacity
	}
	if expected == 0 {
		expected = DefaultExpected
	}

	o := &options[H]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	s := &Set[H]{
		cap:     expected,
		release: o.release,
		keyOf:   o.keyOf,
	}
	lru, err := simplelru.NewLRU[xmac.Addr, entry[H]](expected, s.onEvict)
	if err != nil {
		return nil, fmt.Errorf("macset: create backing store: %w", err)
	}
	s.lru = lru
	return s, nil
}

// onEvict 是后备存储的淘汰回调，即调用方视角的"值析构函数"。
// 仅对持有记录的条目触发释放，标记条目无动作。
func (s *Set[H]) onEvict(_ xmac.Addr, e entry[H]) {
	if e.rec != nil && s.release != nil {
		s.release(e.rec)
	}
}

// Add 以仅标记方式记录 addr 的出现。
// 若 addr 已持有记录，按覆盖策略先释放旧记录（见包文档）。
func (s *Set[H]) Add(addr xmac.Addr) error {
	if s.closed {
		return ErrClosed
	}
	s.insert(addr, entry[H]{})
	return nil
}

// AddString 解析规范冒号格式的 MAC 文本后调用 [Set.Add]。
// 这是面向配置等边界输入的校验入口；可信热路径应自行使用
// [xmac.ParseUnchecked] 再调用 Add。
func (s *Set[H]) AddString(text string) error {
	if s.closed {
		return ErrClosed
	}
	addr, err := xmac.Parse(text)
	if err != nil {
		return err
	}
	s.insert(addr, entry[H]{})
	return nil
}

// AddRecord 以 addr 为键接管既有记录 rec 的所有权。
// 记录不复制；此后 rec 的生命周期由集合管理（Remove/Close/覆盖时
// 释放），调用方不得再独立持有。
// rec 为 nil 返回 [ErrNilRecord]。
func (s *Set[H]) AddRecord(addr xmac.Addr, rec *H) error {
	if s.closed {
		return ErrClosed
	}
	if rec == nil {
		return ErrNilRecord
	}
	s.insert(addr, entry[H]{rec: rec})
	return nil
}

// AddHost 分配新记录、复制 *payload 到其中、经 [WithKeyFunc] 配置的
// 函数从记录派生存储键，然后接管所有权。
//
// payload 为 nil 返回 [ErrNilRecord]；未配置键派生函数返回
// [ErrNoKeyFunc]。任何失败路径都不会留下半成品条目。
func (s *Set[H]) AddHost(payload *H) error {
	if s.closed {
		return ErrClosed
	}
	if payload == nil {
		return ErrNilRecord
	}
	if s.keyOf == nil {
		return ErrNoKeyFunc
	}
	rec := new(H)
	*rec = *payload
	s.insert(s.keyOf(rec), entry[H]{rec: rec})
	return nil
}

// Remove 删除 addr 的条目，释放其附带的记录（若有）。
// 键不存在返回 [ErrNotFound]——这是正常结果，调用方可以忽略。
func (s *Set[H]) Remove(addr xmac.Addr) error {
	if s.closed {
		return ErrClosed
	}
	if !s.lru.Remove(addr) {
		return ErrNotFound
	}
	return nil
}

// Contains 报告 addr 是否在集合中（标记条目与记录条目都算）。
func (s *Set[H]) Contains(addr xmac.Addr) bool {
	if s.closed {
		return false
	}
	return s.lru.Contains(addr)
}

// Get 返回 addr 附带的记录。
//
// 键不存在与键仅为标记都返回 (nil, false)，两者经此操作不可区分；
// 需要区分时先调用 [Set.Contains]。
// 返回的引用是借用：下一次变更调用之后不得继续持有。
func (s *Set[H]) Get(addr xmac.Addr) (*H, bool) {
	if s.closed {
		return nil, false
	}
	e, ok := s.lru.Peek(addr)
	if !ok || e.rec == nil {
		return nil, false
	}
	return e.rec, true
}

// Len 返回当前条目数（标记条目与记录条目都计入）。
func (s *Set[H]) Len() int {
	if s.closed {
		return 0
	}
	return s.lru.Len()
}

// IsEmpty 报告集合是否为空。
func (s *Set[H]) IsEmpty() bool {
	return s.Len() == 0
}

// Close 释放整个集合：对每条残留记录恰好调用一次释放回调，标记
// 条目直接丢弃。幂等；Close 之后的变更调用返回 [ErrClosed]，查询
// 调用返回零值。
func (s *Set[H]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.lru.Purge()
}

// insert 写入条目，统一处理覆盖释放与扩容。
func (s *Set[H]) insert(addr xmac.Addr, e entry[H]) {
	if old, ok := s.lru.Peek(addr); ok {
		// 覆盖策略：先释放被取代的旧记录，再写入新值。
		// old.rec == e.rec 表示重复接管同一记录，不得释放。
		if old.rec != nil && old.rec != e.rec && s.release != nil {
			s.release(old.rec)
		}
	} else if s.lru.Len() >= s.cap {
		// 容量只是预估：写满前主动扩容，后备存储绝不自行淘汰。
		s.cap *= 2
		s.lru.Resize(s.cap)
	}
	s.lru.Add(addr, e)
}
