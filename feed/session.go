package feed

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/xwlin/livedash-sdk/backend"
	"github.com/xwlin/livedash-sdk/cons"
	model "github.com/xwlin/livedash-sdk/models"
)

// Config 视图会话的拉取参数，零值字段取默认。
type Config struct {
	InitialLimit int // 首屏条数，默认 50
	OlderLimit   int // 翻页条数，默认 50
	PollLimit    int // 轮询条数，默认 20
	PkLimit      int // PK 列表条数，默认 50
	MaxWindow    int // 窗口上限，默认 1000

	FeedInterval    time.Duration // 弹幕/礼物轮询周期，默认 3s
	SummaryInterval time.Duration // 房间快照轮询周期，默认 5s

	// PollWithAdvancedFilters 启用高级筛选（性别/财富/粉丝团）后是否继续轮询。
	// 默认 false：高级筛选属于重查询，只靠手动刷新和翻页。
	PollWithAdvancedFilters bool
}

func (c Config) withDefaults() Config {
	if c.InitialLimit <= 0 {
		c.InitialLimit = 50
	}
	if c.OlderLimit <= 0 {
		c.OlderLimit = 50
	}
	if c.PollLimit <= 0 {
		c.PollLimit = 20
	}
	if c.PkLimit <= 0 {
		c.PkLimit = 50
	}
	if c.MaxWindow <= 0 {
		c.MaxWindow = 1000
	}
	if c.FeedInterval <= 0 {
		c.FeedInterval = 3 * time.Second
	}
	if c.SummaryInterval <= 0 {
		c.SummaryInterval = 5 * time.Second
	}
	return c
}

// Params 一次筛选会话的条件。改任意字段都要走 UpdateFilters。
type Params struct {
	Keyword        string `json:"keyword"`
	SearchTarget   string `json:"search_target"` // 默认 all
	MinPrice       int64  `json:"min_price"`
	EnableMinPrice bool   `json:"enable_min_price"`
	Gender         *int   `json:"gender"`
	MinPayGrade    int    `json:"min_pay_grade"`
	MinFansLevel   int    `json:"min_fans_club_level"`
}

func (p Params) hasAdvancedFilters() bool {
	return p.Gender != nil || p.MinPayGrade > 0 || p.MinFansLevel > 0
}

// State 会话对外暴露的只读快照。
type State struct {
	Room *model.RoomDetail `json:"room,omitempty"`

	Chats []model.ChatMsg  `json:"chats"`
	Gifts []model.GiftMsg  `json:"gifts"`
	Pks   []model.PkBattle `json:"pks"`

	LoadingChats bool `json:"loading_chats"`
	LoadingGifts bool `json:"loading_gifts"`
	LoadingPks   bool `json:"loading_pks"`
	HasMoreChats bool `json:"has_more_chats"`
	HasMoreGifts bool `json:"has_more_gifts"`

	PkInitialized bool `json:"pk_initialized"`
	JumpMode      bool `json:"jump_mode"`
	JumpFailed    bool `json:"jump_failed"`
}

// Session 一个房间视图会话：三个记录窗口 + 轮询的房间快照。
// 房间或跳转目标变了就建新会话；同房间内改筛选走 UpdateFilters。
type Session struct {
	roomID   string
	jumpTime *time.Time // nil = 实时模式
	cfg      Config
	client   *backend.Client

	ctx    context.Context
	cancel context.CancelFunc

	chats *Store[model.ChatMsg]
	gifts *Store[model.GiftMsg]
	pks   *Store[model.PkBattle]

	// mu 保护下面的可变字段。锁序：先 mu 再各 store 的内部锁。
	mu         sync.Mutex
	epoch      uint64 // 筛选代数，提交前校验，防止旧筛选的响应漏进新视图
	params     Params
	loadCtx    context.Context // 当前筛选代的请求上下文，改筛选即取消
	loadCancel context.CancelFunc
	detail     *model.RoomDetail
	pkActive   bool
	pkLoaded   bool
	lastAccess time.Time

	poller *poller
}

// NewSession 创建会话并发起首屏加载。jumpTime 非 nil 进入回放模式（不轮询）。
func NewSession(client *backend.Client, roomID string, jumpTime *time.Time, params Params, cfg Config) *Session {
	cfg = cfg.withDefaults()
	if params.SearchTarget == "" {
		params.SearchTarget = cons.SearchTargetAll
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		roomID:     roomID,
		jumpTime:   jumpTime,
		cfg:        cfg,
		client:     client,
		ctx:        ctx,
		cancel:     cancel,
		chats:      NewStore[model.ChatMsg](cfg.MaxWindow),
		gifts:      NewStore[model.GiftMsg](cfg.MaxWindow),
		pks:        NewStore[model.PkBattle](cfg.MaxWindow),
		params:     params,
		lastAccess: time.Now(),
	}
	s.loadCtx, s.loadCancel = context.WithCancel(ctx)

	go s.initialLoad(s.loadCtx, 0)

	s.poller = newPoller(s)
	s.poller.start()
	return s
}

// Close 终止会话：取消所有在途请求并停掉定时器。
func (s *Session) Close() {
	s.cancel()
}

func (s *Session) RoomID() string { return s.roomID }

// JumpMode 是否处于时间跳转回放模式。
func (s *Session) JumpMode() bool { return s.jumpTime != nil }

// Touch 记录一次访问，空闲回收用。
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastAccess = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

// State 汇总当前快照。jump_failed 取弹幕/礼物两个窗口的并集。
func (s *Session) State() State {
	s.mu.Lock()
	detail := s.detail
	pkLoaded := s.pkLoaded
	s.mu.Unlock()

	return State{
		Room:          detail,
		Chats:         s.chats.Snapshot(),
		Gifts:         s.gifts.Snapshot(),
		Pks:           s.pks.Snapshot(),
		LoadingChats:  s.chats.Loading(),
		LoadingGifts:  s.gifts.Loading(),
		LoadingPks:    s.pks.Loading(),
		HasMoreChats:  s.chats.HasMore(),
		HasMoreGifts:  s.gifts.HasMore(),
		PkInitialized: pkLoaded,
		JumpMode:      s.JumpMode(),
		JumpFailed:    s.chats.JumpFailed() || s.gifts.JumpFailed(),
	}
}

// UpdateFilters 同房间内变更筛选：换代、取消在途请求、
// 只重置弹幕和礼物窗口（PK 与关键词/价格无关，不动），重新首屏加载。
func (s *Session) UpdateFilters(params Params) {
	if params.SearchTarget == "" {
		params.SearchTarget = cons.SearchTargetAll
	}

	s.mu.Lock()
	s.epoch++
	epoch := s.epoch
	s.params = params
	s.loadCancel()
	s.loadCtx, s.loadCancel = context.WithCancel(s.ctx)
	ctx := s.loadCtx
	s.mu.Unlock()

	s.chats.Reset()
	s.gifts.Reset()

	go s.initialLoad(ctx, epoch)
}

// currentEpoch 读取当前代数和请求上下文。
func (s *Session) currentEpoch() (uint64, context.Context, Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch, s.loadCtx, s.params
}

// sameEpoch 提交前的防串台校验。
func (s *Session) sameEpoch(epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch == epoch
}

func (s *Session) feedQuery(limit int, params Params, before string) backend.FeedQuery {
	return backend.FeedQuery{
		Limit:          limit,
		Keyword:        params.Keyword,
		SearchTarget:   params.SearchTarget,
		MinPrice:       params.MinPrice,
		EnableMinPrice: params.EnableMinPrice,
		Gender:         params.Gender,
		MinPayGrade:    params.MinPayGrade,
		MinFansLevel:   params.MinFansLevel,
		BeforeTime:     before,
	}
}

// initialLoad 弹幕和礼物的首屏加载；跳转模式带 20 秒放宽的游标，
// 目标附近没有数据则兜底拉最新一页并置 jump_failed。
func (s *Session) initialLoad(ctx context.Context, epoch uint64) {
	loadInitial(s, ctx, epoch, s.chats, func(q backend.FeedQuery) ([]model.ChatMsg, error) {
		return s.client.RoomChats(ctx, s.roomID, q)
	})
	loadInitial(s, ctx, epoch, s.gifts, func(q backend.FeedQuery) ([]model.GiftMsg, error) {
		return s.client.RoomGifts(ctx, s.roomID, q)
	})
}

func loadInitial[T Record](s *Session, ctx context.Context, epoch uint64, st *Store[T], fetch func(backend.FeedQuery) ([]T, error)) {
	if !st.BeginLoad() {
		return
	}
	_, _, params := s.currentEpoch()

	before := ""
	if s.jumpTime != nil {
		before = backend.JumpCursor(*s.jumpTime)
	}
	items, err := fetch(s.feedQuery(s.cfg.InitialLimit, params, before))
	if !s.sameEpoch(epoch) {
		// 旧筛选代的响应（或错误）一律丢弃；换代时 Reset 已清过加载位。
		return
	}
	if err != nil {
		log.Printf("[feed] room %s 首屏加载失败: %v", s.roomID, err)
		st.EndLoad()
		return
	}

	if s.jumpTime != nil && len(items) == 0 {
		// 跳转目标窗口为空：退回最新一页，并让前端弹提示。
		fallback, err := fetch(s.feedQuery(s.cfg.InitialLimit, params, ""))
		if !s.sameEpoch(epoch) {
			return
		}
		if err != nil {
			log.Printf("[feed] room %s 跳转兜底加载失败: %v", s.roomID, err)
			st.EndLoad()
			return
		}
		st.CommitJumpFallback(fallback)
		return
	}

	st.CommitInitial(items, s.cfg.InitialLimit)
}

// LoadOlderChats 向旧翻一页弹幕。正在加载或没有更多时直接返回。
func (s *Session) LoadOlderChats() {
	epoch, ctx, params := s.currentEpoch()
	loadOlder(s, ctx, epoch, params, s.chats, func(q backend.FeedQuery) ([]model.ChatMsg, error) {
		return s.client.RoomChats(ctx, s.roomID, q)
	})
}

// LoadOlderGifts 向旧翻一页礼物。
func (s *Session) LoadOlderGifts() {
	epoch, ctx, params := s.currentEpoch()
	loadOlder(s, ctx, epoch, params, s.gifts, func(q backend.FeedQuery) ([]model.GiftMsg, error) {
		return s.client.RoomGifts(ctx, s.roomID, q)
	})
}

func loadOlder[T Record](s *Session, ctx context.Context, epoch uint64, params Params, st *Store[T], fetch func(backend.FeedQuery) ([]T, error)) {
	cursor, ok := st.BeginAppendOlder()
	if !ok {
		return
	}
	items, err := fetch(s.feedQuery(s.cfg.OlderLimit, params, cursor))
	if !s.sameEpoch(epoch) {
		return
	}
	if err != nil {
		log.Printf("[feed] room %s 翻页失败: %v", s.roomID, err)
		st.EndLoad()
		return
	}
	st.CommitAppendOlder(items, s.cfg.OlderLimit)
}

// ActivatePk 激活 PK 标签页：首次激活时惰性加载一次，之后随轮询刷新。
func (s *Session) ActivatePk() {
	s.mu.Lock()
	alreadyLoaded := s.pkLoaded
	s.pkActive = true
	ctx := s.loadCtx
	s.mu.Unlock()

	if alreadyLoaded {
		return
	}
	if !s.pks.BeginLoad() {
		return
	}
	items, err := s.client.RoomPks(ctx, s.roomID, s.cfg.PkLimit)
	s.pks.EndLoad()
	if err != nil {
		log.Printf("[feed] room %s PK 加载失败: %v", s.roomID, err)
		return
	}
	s.pks.MergeNewer(items)

	s.mu.Lock()
	s.pkLoaded = true
	s.mu.Unlock()
}

// DeactivatePk 离开 PK 标签页，轮询不再刷新 PK。
func (s *Session) DeactivatePk() {
	s.mu.Lock()
	s.pkActive = false
	s.mu.Unlock()
}

func (s *Session) pkPollEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pkActive && s.pkLoaded
}

// roomEnded 根据最近一次快照判断是否已下播。没拿到快照前当在播处理。
func (s *Session) roomEnded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detail != nil && s.detail.LiveStatus != cons.LiveStatusLiving
}

func (s *Session) setDetail(d *model.RoomDetail) {
	s.mu.Lock()
	s.detail = d
	s.mu.Unlock()
}
