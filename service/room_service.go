package service

import (
	"context"
	"time"

	model "github.com/xwlin/livedash-sdk/models"
)

// RoomService 房间列表 / 快照 / 全站统计的读服务，带短 TTL 缓存。
// TTL 对齐前端的刷新节奏：快照 2s，列表和统计 5s。
type RoomService struct {
	*Service

	DetailTTL time.Duration
	ListTTL   time.Duration
	StatsTTL  time.Duration
}

func NewRoomService(base *Service) *RoomService {
	return &RoomService{
		Service:   base,
		DetailTTL: 2 * time.Second,
		ListTTL:   5 * time.Second,
		StatsTTL:  5 * time.Second,
	}
}

// ListRooms 房间列表（首页卡片）。
func (s *RoomService) ListRooms(ctx context.Context) ([]model.RoomInfo, error) {
	var rooms []model.RoomInfo
	err := s.cachedJSON(ctx, "rooms", s.ListTTL, &rooms, func() (interface{}, error) {
		return s.Backend.ListRooms(ctx)
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetDetail 单个房间的实时快照。
func (s *RoomService) GetDetail(ctx context.Context, roomID string) (*model.RoomDetail, error) {
	var detail model.RoomDetail
	err := s.cachedJSON(ctx, "room:detail:"+roomID, s.DetailTTL, &detail, func() (interface{}, error) {
		return s.Backend.RoomDetail(ctx, roomID)
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetStats 全站统计。
func (s *RoomService) GetStats(ctx context.Context) (*model.StatsSummary, error) {
	var stats model.StatsSummary
	err := s.cachedJSON(ctx, "stats:summary", s.StatsTTL, &stats, func() (interface{}, error) {
		return s.Backend.StatsSummary(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
