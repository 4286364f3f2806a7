package feed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/xwlin/livedash-sdk/backend"
	model "github.com/xwlin/livedash-sdk/models"
)

// quietConfig 把轮询周期拉大，避免定时器干扰纯加载类测试。
func quietConfig() Config {
	return Config{
		InitialLimit:    3,
		OlderLimit:      3,
		PollLimit:       3,
		PkLimit:         3,
		FeedInterval:    time.Hour,
		SummaryInterval: time.Hour,
	}
}

func chatAt(sec int, name, content string) model.ChatMsg {
	return model.ChatMsg{
		UserName:  name,
		Content:   content,
		CreatedAt: fmt.Sprintf("2026-08-28T12:00:%02d.000Z", sec),
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// waitFor 轮询等待条件成立，超时即失败。
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

// TestSessionInitialLoad 首屏加载弹幕和礼物，不足一页置 hasMore=false
func TestSessionInitialLoad(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rooms/room1/chats":
			writeJSON(w, []model.ChatMsg{chatAt(10, "甲", "你好"), chatAt(9, "乙", "666")})
		case "/rooms/room1/gifts":
			writeJSON(w, []model.GiftMsg{})
		default:
			writeJSON(w, []interface{}{})
		}
	}))
	defer ts.Close()

	client := backend.NewClient(ts.URL, "secret", nil)
	sess := NewSession(client, "room1", nil, Params{}, quietConfig())
	defer sess.Close()

	waitFor(t, 2*time.Second, func() bool {
		return len(sess.State().Chats) == 2
	}, "首屏弹幕没有加载出来")

	st := sess.State()
	if st.HasMoreChats {
		t.Error("2 条 < limit 3，has_more_chats 应为 false")
	}
	if st.Chats[0].Content != "你好" {
		t.Errorf("顺序不对: %+v", st.Chats)
	}
	if st.JumpMode || st.JumpFailed {
		t.Error("实时模式不该有跳转标志")
	}
}

// TestSessionLoadOlder 翻页重叠去重，游标用最旧一条的原始时间
func TestSessionLoadOlder(t *testing.T) {
	var gotBefore atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rooms/room1/chats":
			if before := r.URL.Query().Get("before_time"); before != "" {
				gotBefore.Store(before)
				// 与窗口里的 8 秒那条重叠
				writeJSON(w, []model.ChatMsg{chatAt(8, "丙", "c8"), chatAt(7, "丁", "c7"), chatAt(6, "戊", "c6")})
				return
			}
			writeJSON(w, []model.ChatMsg{chatAt(10, "甲", "c10"), chatAt(9, "乙", "c9"), chatAt(8, "丙", "c8")})
		default:
			writeJSON(w, []interface{}{})
		}
	}))
	defer ts.Close()

	client := backend.NewClient(ts.URL, "secret", nil)
	sess := NewSession(client, "room1", nil, Params{}, quietConfig())
	defer sess.Close()

	waitFor(t, 2*time.Second, func() bool {
		return len(sess.State().Chats) == 3
	}, "首屏没加载出来")

	sess.LoadOlderChats()

	st := sess.State()
	if len(st.Chats) != 5 {
		t.Fatalf("重叠去重后应是 5 条, got %d", len(st.Chats))
	}
	for i, want := range []string{"c10", "c9", "c8", "c7", "c6"} {
		if st.Chats[i].Content != want {
			t.Errorf("第 %d 条: got %s, want %s", i, st.Chats[i].Content, want)
		}
	}
	if before, _ := gotBefore.Load().(string); before != "2026-08-28T12:00:08.000Z" {
		t.Errorf("翻页游标应是最旧一条的原始时间, got %q", before)
	}
}

// TestSessionJumpFallback 跳转目标没数据时退回最新一页并置 jump_failed
func TestSessionJumpFallback(t *testing.T) {
	var jumpCursor atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rooms/room1/chats", "/rooms/room1/gifts":
			if before := r.URL.Query().Get("before_time"); before != "" {
				jumpCursor.Store(before)
				writeJSON(w, []interface{}{}) // 目标窗口为空
				return
			}
			if r.URL.Path == "/rooms/room1/chats" {
				writeJSON(w, []model.ChatMsg{chatAt(10, "甲", "latest")})
				return
			}
			writeJSON(w, []interface{}{})
		default:
			writeJSON(w, []interface{}{})
		}
	}))
	defer ts.Close()

	jump := time.Date(2026, 8, 28, 11, 0, 0, 0, time.Local)
	client := backend.NewClient(ts.URL, "secret", nil)
	sess := NewSession(client, "room1", &jump, Params{}, quietConfig())
	defer sess.Close()

	waitFor(t, 2*time.Second, func() bool {
		st := sess.State()
		return st.JumpFailed && len(st.Chats) == 1
	}, "跳转失败后应退回最新一页并置 jump_failed")

	st := sess.State()
	if !st.JumpMode {
		t.Error("jump_mode 应为 true")
	}
	if st.Chats[0].Content != "latest" {
		t.Errorf("兜底页内容不对: %+v", st.Chats)
	}
	// 跳转游标 = 目标时刻 + 20s，本地墙钟拼串
	if got, _ := jumpCursor.Load().(string); got != backend.JumpCursor(jump) {
		t.Errorf("跳转游标不对: got %q, want %q", got, backend.JumpCursor(jump))
	}
}

// TestSessionFilterChangeMidFlight 改筛选后，旧筛选的慢响应不能漏进新视图
func TestSessionFilterChangeMidFlight(t *testing.T) {
	releaseX := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rooms/room1/chats":
			switch r.URL.Query().Get("keyword") {
			case "x":
				<-releaseX // 卡住旧筛选的请求
				writeJSON(w, []model.ChatMsg{chatAt(10, "甲", "from-x")})
			case "y":
				writeJSON(w, []model.ChatMsg{chatAt(11, "乙", "from-y")})
			default:
				writeJSON(w, []interface{}{})
			}
		default:
			writeJSON(w, []interface{}{})
		}
	}))
	defer ts.Close()

	client := backend.NewClient(ts.URL, "secret", nil)
	sess := NewSession(client, "room1", nil, Params{Keyword: "x"}, quietConfig())
	defer sess.Close()
	defer close(releaseX)

	// 旧请求还挂着的时候切换关键词
	time.Sleep(20 * time.Millisecond)
	sess.UpdateFilters(Params{Keyword: "y"})

	waitFor(t, 2*time.Second, func() bool {
		st := sess.State()
		return len(st.Chats) == 1 && st.Chats[0].Content == "from-y"
	}, "新筛选的结果没有加载出来")

	// 放掉旧请求，确认它的结果被丢弃
	releaseX <- struct{}{}
	time.Sleep(100 * time.Millisecond)
	for _, c := range sess.State().Chats {
		if c.Content == "from-x" {
			t.Fatal("旧筛选的响应漏进了新视图")
		}
	}
}

// TestSessionPollingMergesNewer 轮询把新消息合并到窗口最前
func TestSessionPollingMergesNewer(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rooms/room1/chats":
			if calls.Add(1) == 1 {
				writeJSON(w, []model.ChatMsg{chatAt(10, "甲", "old")})
				return
			}
			writeJSON(w, []model.ChatMsg{chatAt(11, "乙", "new"), chatAt(10, "甲", "old")})
		case "/rooms/room1/detail":
			writeJSON(w, model.RoomDetail{RoomID: "room1", LiveStatus: 1})
		default:
			writeJSON(w, []interface{}{})
		}
	}))
	defer ts.Close()

	cfg := quietConfig()
	cfg.FeedInterval = 30 * time.Millisecond

	client := backend.NewClient(ts.URL, "secret", nil)
	sess := NewSession(client, "room1", nil, Params{}, cfg)
	defer sess.Close()

	waitFor(t, 2*time.Second, func() bool {
		st := sess.State()
		return len(st.Chats) == 2 && st.Chats[0].Content == "new"
	}, "轮询没有把新消息合并进来")
}

// TestSessionAdvancedFiltersSuspendPolling 高级筛选默认暂停实时轮询
func TestSessionAdvancedFiltersSuspendPolling(t *testing.T) {
	var chatCalls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rooms/room1/chats":
			chatCalls.Add(1)
			writeJSON(w, []model.ChatMsg{chatAt(10, "甲", "c10")})
		default:
			writeJSON(w, []interface{}{})
		}
	}))
	defer ts.Close()

	cfg := quietConfig()
	cfg.FeedInterval = 20 * time.Millisecond

	gender := 1
	client := backend.NewClient(ts.URL, "secret", nil)
	sess := NewSession(client, "room1", nil, Params{Gender: &gender}, cfg)
	defer sess.Close()

	waitFor(t, 2*time.Second, func() bool {
		return len(sess.State().Chats) == 1
	}, "首屏没加载出来")

	base := chatCalls.Load()
	time.Sleep(150 * time.Millisecond)
	if got := chatCalls.Load(); got != base {
		t.Errorf("高级筛选下不该轮询: 初始 %d 次，之后变成 %d 次", base, got)
	}
}

// TestSessionSummaryPolling 快照轮询整体替换房间数据
func TestSessionSummaryPolling(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rooms/room1/detail":
			writeJSON(w, model.RoomDetail{RoomID: "room1", LiveStatus: 1, UserCount: 4321})
		default:
			writeJSON(w, []interface{}{})
		}
	}))
	defer ts.Close()

	cfg := quietConfig()
	cfg.SummaryInterval = 20 * time.Millisecond

	client := backend.NewClient(ts.URL, "secret", nil)
	sess := NewSession(client, "room1", nil, Params{}, cfg)
	defer sess.Close()

	waitFor(t, 2*time.Second, func() bool {
		st := sess.State()
		return st.Room != nil && st.Room.UserCount == 4321
	}, "快照没有轮询进来")
}

// TestSessionActivatePk PK 标签页惰性加载，只加载一次
func TestSessionActivatePk(t *testing.T) {
	var pkCalls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rooms/room1/pks":
			pkCalls.Add(1)
			writeJSON(w, []model.PkBattle{
				{BattleID: "b2", StartTime: "2026-08-28T12:00:20.000Z"},
				{BattleID: "b1", StartTime: "2026-08-28T12:00:10.000Z"},
			})
		default:
			writeJSON(w, []interface{}{})
		}
	}))
	defer ts.Close()

	client := backend.NewClient(ts.URL, "secret", nil)
	sess := NewSession(client, "room1", nil, Params{}, quietConfig())
	defer sess.Close()

	if sess.State().PkInitialized {
		t.Fatal("激活前不该加载 PK")
	}
	sess.ActivatePk()

	st := sess.State()
	if !st.PkInitialized || len(st.Pks) != 2 {
		t.Fatalf("PK 没加载出来: %+v", st)
	}
	if st.Pks[0].BattleID != "b2" {
		t.Errorf("PK 应按开始时间倒序: %+v", st.Pks)
	}

	sess.ActivatePk()
	if pkCalls.Load() != 1 {
		t.Errorf("重复激活不该重新加载, 调用了 %d 次", pkCalls.Load())
	}
}
