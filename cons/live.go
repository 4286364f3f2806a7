package cons

// 直播间状态（后端 live_status 字段）
const (
	LiveStatusLiving = 1 // 直播中
	LiveStatusEnded  = 4 // 已下播
)

// 性别（后端 gender 字段，0/缺省 表示未知）
const (
	GenderUnknown = 0
	GenderMale    = 1
	GenderFemale  = 2
)

// PK 队伍胜负状态（win_status）
const (
	PkResultPending = 0 // 进行中 / 未出结果
	PkResultWon     = 1 // 胜
	PkResultLost    = 2 // 负
)

// 搜索目标（keyword 只作用于指定的记录类型）
const (
	SearchTargetAll  = "all"
	SearchTargetChat = "chat"
	SearchTargetGift = "gift"
)

// 动态（feed）记录类型，用于参数构造与去重键
const (
	FeedKindChat = "chat"
	FeedKindGift = "gift"
	FeedKindPk   = "pk"
)
