package feed

import (
	"log"
	"sync/atomic"
	"time"
)

// poller 会话内的两个定时器：
//   - 动态轮询（默认 3s）：弹幕 + 礼物向新合并，PK 标签页激活时顺带刷 PK；
//   - 快照轮询（默认 5s）：整体替换房间实时计数，下播后永久停止。
//
// 回放（跳转）模式完全不启动。节拍撞上未完成的拉取时直接丢弃（skip），不排队。
type poller struct {
	s           *Session
	feedBusy    atomic.Bool
	summaryBusy atomic.Bool
}

func newPoller(s *Session) *poller {
	return &poller{s: s}
}

func (p *poller) start() {
	if p.s.JumpMode() {
		return
	}
	go p.run()
}

func (p *poller) run() {
	s := p.s
	feedTicker := time.NewTicker(s.cfg.FeedInterval)
	defer feedTicker.Stop()
	summaryTicker := time.NewTicker(s.cfg.SummaryInterval)
	defer summaryTicker.Stop()

	summaryCh := summaryTicker.C
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-feedTicker.C:
			go p.pollFeed()
		case <-summaryCh:
			if s.roomEnded() {
				// 已下播：快照不会再变，停掉这个定时器，不再发请求。
				summaryTicker.Stop()
				summaryCh = nil
				continue
			}
			go p.pollSummary()
		}
	}
}

func (p *poller) pollFeed() {
	if !p.feedBusy.CompareAndSwap(false, true) {
		pollSkipsTotal.WithLabelValues("feed").Inc()
		return
	}
	defer p.feedBusy.Store(false)

	s := p.s
	epoch, ctx, params := s.currentEpoch()
	if s.roomEnded() {
		return
	}
	if params.hasAdvancedFilters() && !s.cfg.PollWithAdvancedFilters {
		// 高级筛选是重查询，默认不做实时轮询，靠手动刷新和翻页。
		return
	}
	pollTicksTotal.WithLabelValues("feed").Inc()

	q := s.feedQuery(s.cfg.PollLimit, params, "")

	chats, err := s.client.RoomChats(ctx, s.roomID, q)
	if err != nil {
		pollErrorsTotal.WithLabelValues("feed").Inc()
		log.Printf("[feed] room %s 弹幕轮询失败: %v", s.roomID, err)
	} else if s.sameEpoch(epoch) {
		s.chats.MergeNewer(chats)
	}

	gifts, err := s.client.RoomGifts(ctx, s.roomID, q)
	if err != nil {
		pollErrorsTotal.WithLabelValues("feed").Inc()
		log.Printf("[feed] room %s 礼物轮询失败: %v", s.roomID, err)
	} else if s.sameEpoch(epoch) {
		s.gifts.MergeNewer(gifts)
	}

	if s.pkPollEnabled() {
		pks, err := s.client.RoomPks(ctx, s.roomID, s.cfg.PkLimit)
		if err != nil {
			pollErrorsTotal.WithLabelValues("feed").Inc()
			log.Printf("[feed] room %s PK 轮询失败: %v", s.roomID, err)
		} else {
			s.pks.MergeNewer(pks)
		}
	}
}

func (p *poller) pollSummary() {
	if !p.summaryBusy.CompareAndSwap(false, true) {
		pollSkipsTotal.WithLabelValues("summary").Inc()
		return
	}
	defer p.summaryBusy.Store(false)

	s := p.s
	pollTicksTotal.WithLabelValues("summary").Inc()
	detail, err := s.client.RoomDetail(s.ctx, s.roomID)
	if err != nil {
		pollErrorsTotal.WithLabelValues("summary").Inc()
		log.Printf("[feed] room %s 快照轮询失败: %v", s.roomID, err)
		return
	}
	s.setDetail(detail)
}
