package models

// Author 主播档案（搜索页 / 主播页）
type Author struct {
	SecUID        string `json:"sec_uid"`
	Weight        int    `json:"weight"`
	Nickname      string `json:"nickname"`
	Avatar        string `json:"avatar,omitempty"`
	Signature     string `json:"signature,omitempty"`
	LiveStatus    int    `json:"live_status"`
	WebRid        string `json:"web_rid,omitempty"`
	UserCount     int64  `json:"user_count"`
	FollowerCount int64  `json:"follower_count"`
}

// UserProfile lookup_user 接口返回的观众资料（PK 贡献榜点开用）
type UserProfile struct {
	SecUID    string `json:"sec_uid"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar,omitempty"`
	Signature string `json:"signature,omitempty"`
	Gender    int    `json:"gender,omitempty"`
}
