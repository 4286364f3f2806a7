package livedash_sdk

import (
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/xwlin/livedash-sdk/feed"
)

// Config 引擎配置
type Config struct {
	// BackendBaseURL 采集后端地址，例 "http://127.0.0.1:8300/api/v1"
	BackendBaseURL string
	// BackendSecret 采集后端的共享密钥，所有请求透传 X-API-Key
	BackendSecret string
	// AdminSecret 后台接口（qna / cookie 池）的共享密钥
	AdminSecret string

	// RDB 可选。配置后房间列表/快照/统计走短 TTL 读缓存
	RDB *redis.Client

	// HTTPClient 可选，自定义到后端的 HTTP 客户端（超时、代理等）
	HTTPClient *http.Client

	// Feed 视图会话的窗口与轮询参数
	Feed feed.Config

	// ViewIdleTTL 视图会话无人访问多久后回收，默认 5 分钟
	ViewIdleTTL time.Duration

	// CachePrefix 缓存键前缀，默认 "livedash:"
	CachePrefix string
}

type Option func(*Config)

// WithBackend 配置采集后端地址和共享密钥。
func WithBackend(baseURL, secret string) Option {
	return func(c *Config) {
		c.BackendBaseURL = baseURL
		c.BackendSecret = secret
	}
}

// WithAdminSecret 配置后台接口密钥。
func WithAdminSecret(secret string) Option {
	return func(c *Config) {
		c.AdminSecret = secret
	}
}

func WithRDB(RDB *redis.Client) Option {
	return func(c *Config) {
		c.RDB = RDB
	}
}

// WithHTTPClient 自定义到后端的 HTTP 客户端。
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = hc
	}
}

// WithFeedConfig 配置视图会话（窗口上限、轮询周期、高级筛选是否轮询等）。
func WithFeedConfig(cfg feed.Config) Option {
	return func(c *Config) {
		c.Feed = cfg
	}
}

// WithViewIdleTTL 配置视图会话的空闲回收时间。
func WithViewIdleTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.ViewIdleTTL = ttl
	}
}

// WithCachePrefix 自定义缓存键前缀。
func WithCachePrefix(prefix string) Option {
	return func(c *Config) {
		c.CachePrefix = prefix
	}
}
