package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestClientSecretHeader 每个请求都带共享密钥头
func TestClientSecretHeader(t *testing.T) {
	var gotSecret string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get(SecretHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "top-secret", nil)
	if _, err := c.ListRooms(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotSecret != "top-secret" {
		t.Errorf("密钥头没透传: got %q", gotSecret)
	}
}

// TestClientNonArrayBody 数组接口返回错误对象时按空结果处理，不报错
func TestClientNonArrayBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "s", nil)
	rooms, err := c.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("非数组响应不应报错: %v", err)
	}
	if rooms == nil || len(rooms) != 0 {
		t.Errorf("应返回空数组, got %v", rooms)
	}
}

// TestClientNon2xx 非 2xx 状态码按错误处理
func TestClientNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "s", nil)
	if _, err := c.ListRooms(context.Background()); err == nil {
		t.Error("502 应报错")
	}
	if _, err := c.RoomDetail(context.Background(), "room1"); err == nil {
		t.Error("502 应报错")
	}
}

// TestClientDoPassthrough Do 原样透传状态码和响应体，后台代理依赖这一点
func TestClientDoPassthrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("带 body 的请求应设 Content-Type")
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "s", nil)
	status, body, err := c.Do(context.Background(), http.MethodPost, "/qna", nil, []byte(`{"question":"q"}`))
	if err != nil {
		t.Fatal(err)
	}
	if status != http.StatusCreated {
		t.Errorf("status: got %d", status)
	}
	if string(body) != `{"id":1}` {
		t.Errorf("body: got %s", body)
	}
}
