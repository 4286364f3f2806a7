package feed

import (
	"sort"
	"sync"
	"time"
)

// Record 三类动态记录（弹幕 / 礼物 / PK）的统一约束。
type Record interface {
	// DedupKey 逻辑身份。弹幕和礼物没有稳定 ID，由时间+内容拼出；PK 用 battle_id。
	DedupKey() string
	// RawTime 后端原样的时间字符串，向旧翻页时直接作为 before_time 回传。
	RawTime() string
	// EventTime 解析后的事件时间，只用于排序；解析失败为零值，排在最后。
	EventTime() time.Time
}

// Store 一类记录的滚动窗口。所有变更都在锁内基于上一个状态计算，
// 读方永远看不到合并到一半的数组。
//
// 不变式：
//   - items 按事件时间严格非递增排列；
//   - 去重键两两不同；
//   - len(items) <= max（只有 MergeNewer 会裁剪，向旧翻页不裁）；
//   - hasMore 在一次筛选会话内只会 true -> false，Reset 才会复位。
type Store[T Record] struct {
	mu         sync.Mutex
	items      []T
	hasMore    bool
	loading    bool
	jumpFailed bool
	max        int
}

// NewStore 创建空窗口，max 为窗口上限（如 1000）。
func NewStore[T Record](max int) *Store[T] {
	return &Store[T]{hasMore: true, max: max}
}

// Reset 清空窗口并复位 hasMore / jumpFailed。切房间或改筛选时调用。
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.hasMore = true
	s.loading = false
	s.jumpFailed = false
}

// Snapshot 返回当前窗口的拷贝。
func (s *Store[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store[T]) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store[T]) JumpFailed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jumpFailed
}

// BeginLoad 尝试占住加载位。已在加载中则返回 false（拒绝并发，不排队）。
func (s *Store[T]) BeginLoad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return false
	}
	s.loading = true
	return true
}

// EndLoad 释放加载位（请求失败或不提交时用，其余状态不动，下次重试）。
func (s *Store[T]) EndLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

// BeginAppendOlder 尝试开始一次向旧翻页。
// loading 或 !hasMore 时直接拒绝；否则占住加载位并返回当前最旧记录的
// 原始时间字符串作为游标（窗口为空时游标为空串，语义是拉最新一页）。
func (s *Store[T]) BeginAppendOlder() (cursor string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading || !s.hasMore {
		return "", false
	}
	s.loading = true
	if n := len(s.items); n > 0 {
		cursor = s.items[n-1].RawTime()
	}
	return cursor, true
}

// CommitInitial 首屏提交：整体替换并去重；不足一页说明没有更早数据。
func (s *Store[T]) CommitInitial(items []T, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.items = Dedupe(items, func(it T) string { return it.DedupKey() })
	if len(items) < limit {
		s.hasMore = false
	}
}

// CommitJumpFallback 跳转目标附近没有数据时的兜底：
// 换成最新一页并把 jumpFailed 置位，绝不能静默展示空列表。
// hasMore 不动——兜底页属于“放弃跳转”，后续翻页从最新往回走。
func (s *Store[T]) CommitJumpFallback(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.jumpFailed = true
	s.items = Dedupe(items, func(it T) string { return it.DedupKey() })
}

// CommitAppendOlder 向旧翻页提交：拼接 + 去重，保持原有顺序；
// 不足一页置 hasMore=false。旧方向永远不裁剪窗口。
func (s *Store[T]) CommitAppendOlder(items []T, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if len(items) < limit {
		s.hasMore = false
	}
	combined := make([]T, 0, len(s.items)+len(items))
	combined = append(combined, s.items...)
	combined = append(combined, items...)
	s.items = Dedupe(combined, func(it T) string { return it.DedupKey() })
}

// MergeNewer 向新合并：新记录放到最前，去重后按时间倒序稳定重排
// （并发轮询下响应可能乱序到达），最后裁掉超出窗口上限的最旧部分。
func (s *Store[T]) MergeNewer(items []T) {
	if len(items) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	combined := make([]T, 0, len(items)+len(s.items))
	combined = append(combined, items...)
	combined = append(combined, s.items...)
	merged := Dedupe(combined, func(it T) string { return it.DedupKey() })
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].EventTime().After(merged[j].EventTime())
	})
	if s.max > 0 && len(merged) > s.max {
		merged = merged[:s.max]
	}
	s.items = merged
}
