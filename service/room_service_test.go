package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/xwlin/livedash-sdk/backend"
)

func newBackendCounter(t *testing.T) (*backend.Client, *atomic.Int64, func()) {
	t.Helper()
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/rooms":
			_, _ = w.Write([]byte(`[{"room_id":"r1","title":"测试直播间"}]`))
		case "/rooms/r1/detail":
			_, _ = w.Write([]byte(`{"room_id":"r1","live_status":1,"user_count":100}`))
		case "/stats/summary":
			_, _ = w.Write([]byte(`{"total_messages":42,"active_rooms":3}`))
		default:
			http.NotFound(w, r)
		}
	}))
	return backend.NewClient(ts.URL, "s", nil), &calls, ts.Close
}

// TestRoomServiceCacheHit 命中缓存时第二次调用不打后端
func TestRoomServiceCacheHit(t *testing.T) {
	client, calls, closeTS := newBackendCounter(t)
	defer closeTS()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc := NewRoomService(&Service{Backend: client, RDB: rdb})
	ctx := context.Background()

	d1, err := svc.GetDetail(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	d2, err := svc.GetDetail(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if d1.UserCount != 100 || d2.UserCount != 100 {
		t.Errorf("快照内容不对: %+v %+v", d1, d2)
	}
	if calls.Load() != 1 {
		t.Errorf("第二次应命中缓存, 后端被打了 %d 次", calls.Load())
	}

	// TTL 过期后重新回源
	mr.FastForward(svc.DetailTTL * 2)
	if _, err := svc.GetDetail(ctx, "r1"); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 2 {
		t.Errorf("过期后应回源, 后端被打了 %d 次", calls.Load())
	}
}

// TestRoomServiceNoRedis 不配 Redis 每次直连后端
func TestRoomServiceNoRedis(t *testing.T) {
	client, calls, closeTS := newBackendCounter(t)
	defer closeTS()

	svc := NewRoomService(&Service{Backend: client})
	ctx := context.Background()

	if _, err := svc.ListRooms(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ListRooms(ctx); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 2 {
		t.Errorf("无缓存时每次都应直连, got %d 次", calls.Load())
	}
}

// TestRoomServiceCacheDown Redis 挂了退化为直连，不向上抛错
func TestRoomServiceCacheDown(t *testing.T) {
	client, _, closeTS := newBackendCounter(t)
	defer closeTS()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close() // 模拟缓存不可用

	svc := NewRoomService(&Service{Backend: client, RDB: rdb})
	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("缓存挂了应直连, got err: %v", err)
	}
	if stats.TotalMessages != 42 {
		t.Errorf("统计内容不对: %+v", stats)
	}
}
