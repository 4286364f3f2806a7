package models

// RoomDetail 单个房间的实时快照（轮询整体替换，不做增量合并）
type RoomDetail struct {
	RoomID            string `json:"room_id"`
	WebRid            string `json:"web_rid,omitempty"`
	Title             string `json:"title"`
	Nickname          string `json:"nickname"`
	AvatarURL         string `json:"avatar_url,omitempty"`
	CoverURL          string `json:"cover_url,omitempty"`
	LiveStatus        int    `json:"live_status"` // cons.LiveStatusXxx
	UserCount         int64  `json:"user_count"`  // 当前在线
	MaxViewers        int64  `json:"max_viewers"` // 峰值在线
	LikeCount         int64  `json:"like_count"`
	TotalDanmuCount   int64  `json:"total_danmu_count"`
	TotalGiftValue    int64  `json:"total_gift_value"` // 累计钻石
	FollowerDiff      int64  `json:"follower_diff"`    // 本场涨粉
	TotalWatchSeconds int64  `json:"total_watch_seconds,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}

// RoomInfo 房间列表项（首页卡片）
type RoomInfo struct {
	WebRid             string `json:"web_rid"`
	RoomID             string `json:"room_id"`
	Title              string `json:"title"`
	Nickname           string `json:"nickname"`
	AvatarURL          string `json:"avatar_url,omitempty"`
	CoverURL           string `json:"cover_url,omitempty"`
	UserCount          int64  `json:"user_count"`
	TotalUserCount     int64  `json:"total_user_count"`
	MaxViewers         int64  `json:"max_viewers"`
	LikeCount          int64  `json:"like_count"`
	StartFollowerCount int64  `json:"start_follower_count"`
	EndFollowerCount   int64  `json:"end_follower_count"`
	FollowerDiff       int64  `json:"follower_diff"`
	TotalDanmuCount    int64  `json:"total_danmu_count"`
	TotalGiftValue     int64  `json:"total_gift_value"`
	RoomStatus         int    `json:"room_status"`
	UpdatedAt          string `json:"updated_at,omitempty"`
}

// StatsSummary 全站统计（首页统计弹窗）
type StatsSummary struct {
	TotalMessages   int64   `json:"total_messages"`
	ActiveRooms     int64   `json:"active_rooms"`
	TotalGiftsValue int64   `json:"total_gifts_value"`
	SystemHealth    float64 `json:"system_health"`
}
