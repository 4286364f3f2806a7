package models

import (
	"fmt"
	"strings"
	"time"
)

// 后端的时间字段是“本地墙钟时间 + 字面量 Z”（并非真正的 UTC），
// 这里只用于排序 / 取最旧游标，统一按墙钟值解析即可。
var eventTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseEventTime 解析后端返回的事件时间字符串。
// 解析失败返回零值（调用方把这种记录排到最后，不报错）。
func ParseEventTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ChatMsg 弹幕 / 聊天消息。后端没有稳定的消息 ID，
// 去重键由 (时间, 用户名, 内容) 拼出。
type ChatMsg struct {
	UserName      string `json:"user_name"`
	Content       string `json:"content"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	SecUID        string `json:"sec_uid,omitempty"`
	Gender        int    `json:"gender,omitempty"` // cons.GenderXxx
	PayGradeIcon  string `json:"pay_grade_icon,omitempty"`
	FansClubIcon  string `json:"fans_club_icon,omitempty"`
	FansClubLevel int    `json:"fans_club_level,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	EventTimeRaw  string `json:"event_time,omitempty"`
}

func (m ChatMsg) DedupKey() string {
	return m.RawTime() + "-" + m.UserName + "-" + m.Content
}

// RawTime 返回后端原样的时间字符串（分页游标直接回传这个值）。
func (m ChatMsg) RawTime() string {
	if m.CreatedAt != "" {
		return m.CreatedAt
	}
	return m.EventTimeRaw
}

func (m ChatMsg) EventTime() time.Time {
	return ParseEventTime(m.RawTime())
}

// GiftMsg 礼物消息。去重键 = (时间, 用户名, 礼物名, 连击数)。
type GiftMsg struct {
	UserName          string `json:"user_name"`
	GiftName          string `json:"gift_name"`
	GiftIconURL       string `json:"gift_icon_url,omitempty"`
	DiamondCount      int64  `json:"diamond_count"`       // 单个礼物钻石价值
	TotalDiamondCount int64  `json:"total_diamond_count"` // 本次事件总价值
	ComboCount        int    `json:"combo_count"`
	GroupCount        int    `json:"group_count,omitempty"` // 一次送出的组数（可选）
	AvatarURL         string `json:"avatar_url,omitempty"`
	SecUID            string `json:"sec_uid,omitempty"`
	Gender            int    `json:"gender,omitempty"`
	PayGradeIcon      string `json:"pay_grade_icon,omitempty"`
	FansClubIcon      string `json:"fans_club_icon,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
	SendTimeRaw       string `json:"send_time,omitempty"`
}

func (m GiftMsg) DedupKey() string {
	return fmt.Sprintf("%s-%s-%s-%d", m.RawTime(), m.UserName, m.GiftName, m.ComboCount)
}

func (m GiftMsg) RawTime() string {
	if m.CreatedAt != "" {
		return m.CreatedAt
	}
	return m.SendTimeRaw
}

func (m GiftMsg) EventTime() time.Time {
	return ParseEventTime(m.RawTime())
}

// PkContributor PK 榜单贡献者（主播侧的打赏头部用户）
type PkContributor struct {
	SecUID   string `json:"sec_uid,omitempty"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar,omitempty"`
	Score    int64  `json:"score"`
	Rank     int    `json:"rank,omitempty"`
}

// PkAnchor 参与 PK 的主播
type PkAnchor struct {
	UserID       string          `json:"user_id,omitempty"`
	SecUID       string          `json:"sec_uid,omitempty"`
	Nickname     string          `json:"nickname"`
	Avatar       string          `json:"avatar,omitempty"`
	Score        int64           `json:"score"`
	Contributors []PkContributor `json:"contributors,omitempty"`
}

// PkTeam PK 一方队伍
type PkTeam struct {
	TeamID    string     `json:"team_id"`
	WinStatus int        `json:"win_status"` // cons.PkResultXxx
	Anchors   []PkAnchor `json:"anchors"`
}

// PkBattle 一场 PK。battle_id 是后端生成的稳定 ID，直接作为去重键。
type PkBattle struct {
	BattleID  string   `json:"battle_id"`
	Mode      string   `json:"mode,omitempty"`
	StartTime string   `json:"start_time"`
	Teams     []PkTeam `json:"teams"`
}

func (m PkBattle) DedupKey() string { return m.BattleID }

func (m PkBattle) RawTime() string { return m.StartTime }

func (m PkBattle) EventTime() time.Time {
	return ParseEventTime(m.StartTime)
}
