package backend

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/xwlin/livedash-sdk/cons"
)

// FeedQuery 弹幕 / 礼物分页拉取的查询条件。
// BeforeTime 为空表示拉最新一页（首屏或轮询）。
type FeedQuery struct {
	Limit          int
	Keyword        string
	SearchTarget   string // cons.SearchTargetXxx，keyword 只作用于匹配的类型
	MinPrice       int64  // 礼物专用，开区间下界
	EnableMinPrice bool
	Gender         *int // nil 表示不过滤
	MinPayGrade    int
	MinFansLevel   int
	BeforeTime     string // 已格式化的游标字符串，原样发给后端
}

// HasAdvancedFilters 是否启用了高级筛选（性别 / 财富等级 / 粉丝团等级）。
// 启用后默认暂停实时轮询，见 feed.Poller。
func (q FeedQuery) HasAdvancedFilters() bool {
	return q.Gender != nil || q.MinPayGrade > 0 || q.MinFansLevel > 0
}

// Values 构造指定记录类型的查询参数。
func (q FeedQuery) Values(kind string) url.Values {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(q.Limit))

	if q.Keyword != "" {
		if q.SearchTarget == cons.SearchTargetAll || q.SearchTarget == kind {
			v.Set("keyword", q.Keyword)
		}
	}

	if kind == cons.FeedKindGift && q.EnableMinPrice && q.MinPrice >= 0 {
		// 后端的 min_price 是闭区间（>=），这里 +1 把它换成“严格大于”的语义。
		// 这是后端既有约定，勿改。
		v.Set("min_price", strconv.FormatInt(q.MinPrice+1, 10))
	}

	if q.Gender != nil {
		v.Set("gender", strconv.Itoa(*q.Gender))
	}
	if q.MinPayGrade > 0 {
		v.Set("min_pay_grade", strconv.Itoa(q.MinPayGrade))
	}
	if q.MinFansLevel > 0 {
		v.Set("min_fans_club_level", strconv.Itoa(q.MinFansLevel))
	}

	if q.BeforeTime != "" {
		v.Set("before_time", q.BeforeTime)
	}
	return v
}

// FormatLocalISO 把本地墙钟时间拼成 "YYYY-MM-DDTHH:mm:ss.sssZ"。
// 注意：不做 UTC 换算。后端存的就是带字面量 Z 的本地墙钟值，
// 真转 UTC 会整体偏移一个时区，查询会静默查不到数据。
func FormatLocalISO(t time.Time) string {
	t = t.In(time.Local)
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03dZ",
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond()/int(time.Millisecond))
}

// JumpCursor 时间跳转模式的初始游标：目标时刻向后放宽 20 秒，
// 保证目标附近的记录落在第一页里。
func JumpCursor(target time.Time) string {
	return FormatLocalISO(target.Add(20 * time.Second))
}
