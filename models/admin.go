package models

// QnaItem 常见问题条目（后台可编辑，前台按 order 展示）
type QnaItem struct {
	ID        int64  `json:"id,omitempty"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Order     int    `json:"order"`
	IsVisible bool   `json:"is_visible"`
}

// CookieItem 采集端 Cookie 池条目。cookie 为空表示已失效。
type CookieItem struct {
	Note      string `json:"note"`
	Cookie    string `json:"cookie"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
