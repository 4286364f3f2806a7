package feed

import (
	"fmt"
	"testing"
	"time"
)

// testRec 测试用记录：用整数秒当事件时间，键默认就是时间字符串。
type testRec struct {
	key string
	sec int64
}

func (r testRec) DedupKey() string { return r.key }
func (r testRec) RawTime() string  { return fmt.Sprintf("t%d", r.sec) }
func (r testRec) EventTime() time.Time {
	return time.Unix(r.sec, 0)
}

func recs(secs ...int64) []testRec {
	out := make([]testRec, 0, len(secs))
	for _, s := range secs {
		out = append(out, testRec{key: fmt.Sprintf("t%d", s), sec: s})
	}
	return out
}

func assertSecs(t *testing.T, got []testRec, want ...int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("长度不对: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i].sec != want[i] {
			t.Fatalf("第 %d 个元素: got %d, want %v", i, got[i].sec, want)
		}
	}
}

// TestStoreAppendOlder 向旧翻页：重叠去重、顺序保持、hasMore 单调
func TestStoreAppendOlder(t *testing.T) {
	t.Run("OverlapDeduped", func(t *testing.T) {
		// 窗口 [10,9,8]，翻页返回 [8,7,6]，8 重叠应去掉
		s := NewStore[testRec](1000)
		s.CommitInitial(recs(10, 9, 8), 3)

		cursor, ok := s.BeginAppendOlder()
		if !ok {
			t.Fatal("应允许翻页")
		}
		if cursor != "t8" {
			t.Errorf("游标应是最旧一条的原始时间: got %q", cursor)
		}
		s.CommitAppendOlder(recs(8, 7, 6), 3)
		assertSecs(t, s.Snapshot(), 10, 9, 8, 7, 6)
		if !s.HasMore() {
			t.Error("整页返回时 hasMore 应保持 true")
		}
	})

	t.Run("ShortPageEndsHistory", func(t *testing.T) {
		s := NewStore[testRec](1000)
		s.CommitInitial(recs(10, 9), 2)
		_, _ = s.BeginAppendOlder()
		s.CommitAppendOlder(recs(8), 2)
		if s.HasMore() {
			t.Error("不足一页后 hasMore 应为 false")
		}
		// hasMore=false 后翻页直接拒绝
		if _, ok := s.BeginAppendOlder(); ok {
			t.Error("没有更多数据时应拒绝翻页")
		}
	})

	t.Run("RejectWhileLoading", func(t *testing.T) {
		s := NewStore[testRec](1000)
		s.CommitInitial(recs(10), 1)
		if _, ok := s.BeginAppendOlder(); !ok {
			t.Fatal("第一次应成功")
		}
		// 并发的第二次请求被拒绝，不排队
		if _, ok := s.BeginAppendOlder(); ok {
			t.Error("加载中应拒绝第二次翻页")
		}
	})

	t.Run("EmptyStoreCursorIsEmpty", func(t *testing.T) {
		s := NewStore[testRec](1000)
		cursor, ok := s.BeginAppendOlder()
		if !ok || cursor != "" {
			t.Errorf("空窗口的游标应为空串: ok=%v cursor=%q", ok, cursor)
		}
	})
}

// TestStoreMergeNewer 向新合并：前插、去重、排序、裁剪
func TestStoreMergeNewer(t *testing.T) {
	t.Run("PrependNewer", func(t *testing.T) {
		s := NewStore[testRec](1000)
		s.CommitInitial(recs(10, 9), 2)
		s.MergeNewer(recs(12, 11))
		assertSecs(t, s.Snapshot(), 12, 11, 10, 9)
	})

	t.Run("EmptyMergeIsNoop", func(t *testing.T) {
		s := NewStore[testRec](1000)
		s.CommitInitial(recs(10, 9), 2)
		s.MergeNewer(nil)
		s.MergeNewer([]testRec{})
		assertSecs(t, s.Snapshot(), 10, 9)
	})

	t.Run("CapTrimsOldest", func(t *testing.T) {
		// cap=3，窗口 [5,4,3]，合并 [6] 后应是 [6,5,4]，3 被裁掉
		s := NewStore[testRec](3)
		s.CommitInitial(recs(5, 4, 3), 3)
		s.MergeNewer(recs(6))
		assertSecs(t, s.Snapshot(), 6, 5, 4)
	})

	t.Run("OutOfOrderResorted", func(t *testing.T) {
		// 并发轮询下响应可能乱序，合并后必须仍然倒序
		s := NewStore[testRec](1000)
		s.CommitInitial(recs(10, 8), 2)
		s.MergeNewer(recs(9, 11))
		assertSecs(t, s.Snapshot(), 11, 10, 9, 8)
	})

	t.Run("DuplicateFromPollIgnored", func(t *testing.T) {
		s := NewStore[testRec](1000)
		s.CommitInitial(recs(10, 9), 2)
		s.MergeNewer(recs(10, 9))
		assertSecs(t, s.Snapshot(), 10, 9)
	})

	t.Run("RetainedAreMostRecent", func(t *testing.T) {
		s := NewStore[testRec](5)
		s.CommitInitial(recs(5, 4, 3, 2, 1), 5)
		s.MergeNewer(recs(8, 7, 6))
		assertSecs(t, s.Snapshot(), 8, 7, 6, 5, 4)
	})
}

// TestStoreReset 重置后窗口清空、hasMore 复位
func TestStoreReset(t *testing.T) {
	s := NewStore[testRec](1000)
	s.CommitInitial(recs(3, 2, 1), 50) // 不足一页 -> hasMore=false
	if s.HasMore() {
		t.Fatal("不足一页后 hasMore 应为 false")
	}
	s.Reset()
	if s.Len() != 0 || !s.HasMore() || s.JumpFailed() {
		t.Error("Reset 后应回到初始状态")
	}
}

// TestStoreJumpFallback 跳转兜底：置 jumpFailed 且窗口非空
func TestStoreJumpFallback(t *testing.T) {
	s := NewStore[testRec](1000)
	if !s.BeginLoad() {
		t.Fatal("BeginLoad 应成功")
	}
	s.CommitJumpFallback(recs(10, 9, 8))
	if !s.JumpFailed() {
		t.Error("兜底后 jumpFailed 应为 true")
	}
	assertSecs(t, s.Snapshot(), 10, 9, 8)
	if s.Loading() {
		t.Error("提交后应释放加载位")
	}
	if !s.HasMore() {
		t.Error("兜底不应动 hasMore")
	}
}

// TestStoreSnapshotIsolated 快照是拷贝，外部改不动内部状态
func TestStoreSnapshotIsolated(t *testing.T) {
	s := NewStore[testRec](1000)
	s.CommitInitial(recs(10, 9), 2)
	snap := s.Snapshot()
	snap[0] = testRec{key: "tampered", sec: 999}
	assertSecs(t, s.Snapshot(), 10, 9)
}
