package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/xwlin/livedash-sdk/cons"
	model "github.com/xwlin/livedash-sdk/models"
)

// SecretHeader 采集后端要求的共享密钥请求头
const SecretHeader = "X-API-Key"

// Client 采集后端（telemetry backend）的 HTTP 客户端。
// 后端是个黑盒 REST 服务，这里只负责透传密钥、拼参数、容错解码。
type Client struct {
	baseURL string
	secret  string
	http    *http.Client
}

// NewClient 创建后端客户端。hc 为 nil 时使用 10s 超时的默认客户端。
func NewClient(baseURL, secret string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, secret: secret, http: hc}
}

// Do 发起一次原始请求并返回状态码和响应体。
// 管理后台的 qna / cookie 池接口就是纯透传，不在 SDK 里建模。
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body []byte) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set(SecretHeader, c.secret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		backendRequestsTotal.WithLabelValues("error").Inc()
		return 0, nil, err
	}
	defer resp.Body.Close()
	backendRequestsTotal.WithLabelValues("ok").Inc()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, data, nil
}

// getJSON GET 并解码为 out。非 2xx 一律按错误处理，由上层决定吞掉还是上报。
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	status, data, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("backend GET %s: status %d", path, status)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("backend GET %s: decode: %w", path, err)
	}
	return nil
}

// getArray GET 一个数组接口。后端偶尔会返回非数组（比如错误对象），
// 这种情况按空结果处理并打日志，绝不让它把上层打挂。
func getArray[T any](c *Client, ctx context.Context, path string, query url.Values) ([]T, error) {
	status, data, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("backend GET %s: status %d", path, status)
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		log.Printf("[backend] GET %s 返回的不是数组，按空结果处理: %v", path, err)
		return []T{}, nil
	}
	return out, nil
}

// ---- 房间 ----

func (c *Client) ListRooms(ctx context.Context) ([]model.RoomInfo, error) {
	return getArray[model.RoomInfo](c, ctx, "/rooms", nil)
}

func (c *Client) RoomDetail(ctx context.Context, roomID string) (*model.RoomDetail, error) {
	var detail model.RoomDetail
	if err := c.getJSON(ctx, "/rooms/"+url.PathEscape(roomID)+"/detail", nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) StatsSummary(ctx context.Context) (*model.StatsSummary, error) {
	var s model.StatsSummary
	if err := c.getJSON(ctx, "/stats/summary", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ---- 房间动态（弹幕 / 礼物 / PK）----

func (c *Client) RoomChats(ctx context.Context, roomID string, q FeedQuery) ([]model.ChatMsg, error) {
	return getArray[model.ChatMsg](c, ctx, "/rooms/"+url.PathEscape(roomID)+"/chats", q.Values(cons.FeedKindChat))
}

func (c *Client) RoomGifts(ctx context.Context, roomID string, q FeedQuery) ([]model.GiftMsg, error) {
	return getArray[model.GiftMsg](c, ctx, "/rooms/"+url.PathEscape(roomID)+"/gifts", q.Values(cons.FeedKindGift))
}

func (c *Client) RoomPks(ctx context.Context, roomID string, limit int) ([]model.PkBattle, error) {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))
	return getArray[model.PkBattle](c, ctx, "/rooms/"+url.PathEscape(roomID)+"/pks", v)
}

// ---- 搜索 / 主播 ----

func (c *Client) SearchAuthors(ctx context.Context, keyword string, limit int) ([]model.Author, error) {
	v := url.Values{}
	v.Set("keyword", keyword)
	v.Set("limit", strconv.Itoa(limit))
	return getArray[model.Author](c, ctx, "/authors", v)
}

func (c *Client) AuthorDetail(ctx context.Context, secUID string) (*model.Author, error) {
	var a model.Author
	if err := c.getJSON(ctx, "/authors/"+url.PathEscape(secUID), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) AuthorRooms(ctx context.Context, secUID string) ([]model.RoomInfo, error) {
	return getArray[model.RoomInfo](c, ctx, "/authors/"+url.PathEscape(secUID)+"/rooms", nil)
}

func (c *Client) LookupUser(ctx context.Context, secUID string) (*model.UserProfile, error) {
	var p model.UserProfile
	if err := c.getJSON(ctx, "/lookup_user/"+url.PathEscape(secUID), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GlobalSearch 全局搜索，结果结构由后端定义，原样透传。
func (c *Client) GlobalSearch(ctx context.Context, keyword string, limit int) (json.RawMessage, error) {
	v := url.Values{}
	v.Set("keyword", keyword)
	v.Set("limit", strconv.Itoa(limit))
	status, data, err := c.Do(ctx, http.MethodGet, "/search/global", v, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("backend search: status %d", status)
	}
	return json.RawMessage(data), nil
}
