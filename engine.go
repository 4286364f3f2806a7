package livedash_sdk

import (
	"sync"

	"github.com/xwlin/livedash-sdk/backend"
	"github.com/xwlin/livedash-sdk/feed"
	"github.com/xwlin/livedash-sdk/service"
)

// DashboardEngine 直播数据看板引擎：
// 对上（Web 前端）暴露 Gin 接口，对下轮询采集后端。
// 核心是 Views 里的视图会话——每个房间页一套滚动窗口 + 轮询器。
type DashboardEngine struct {
	config *Config

	Backend *backend.Client

	RoomService   *service.RoomService
	AuthorService *service.AuthorService
	AdminService  *service.AdminService

	// Views 视图会话注册表（房间页的弹幕/礼物/PK 滚动窗口）
	Views *feed.Manager
}

var (
	Instance *DashboardEngine
	once     sync.Once
)

// NewEngine 创建实例
// 使用选项模式传入配置，Option回调
func NewEngine(opts ...Option) *DashboardEngine {
	once.Do(func() {
		c := &Config{}
		for _, opt := range opts {
			opt(c)
		}

		Instance = &DashboardEngine{config: c}

		Instance.Backend = backend.NewClient(c.BackendBaseURL, c.BackendSecret, c.HTTPClient)

		baseService := &service.Service{
			Backend:     Instance.Backend,
			RDB:         c.RDB,
			CachePrefix: c.CachePrefix,
		}

		Instance.RoomService = service.NewRoomService(baseService)
		Instance.AuthorService = service.NewAuthorService(baseService)
		Instance.AdminService = service.NewAdminService(baseService)

		Instance.Views = feed.NewManager(c.ViewIdleTTL)
	})
	return Instance
}

// Shutdown 关闭全部视图会话（取消在途请求、停掉轮询）。
func (e *DashboardEngine) Shutdown() {
	e.Views.Shutdown()
}

// FeedConfig 当前生效的视图会话配置。
func (e *DashboardEngine) FeedConfig() feed.Config {
	return e.config.Feed
}
