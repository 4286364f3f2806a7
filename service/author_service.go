package service

import (
	"context"
	"encoding/json"

	model "github.com/xwlin/livedash-sdk/models"
)

// AuthorService 主播搜索 / 档案 / 历史场次，以及观众资料查询。
// 都是对后端的薄读层，不落地任何状态。
type AuthorService struct {
	*Service
}

func NewAuthorService(base *Service) *AuthorService {
	return &AuthorService{Service: base}
}

// Search 按关键词搜主播。
func (s *AuthorService) Search(ctx context.Context, keyword string, limit int) ([]model.Author, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.Backend.SearchAuthors(ctx, keyword, limit)
}

// GlobalSearch 全局搜索（主播+历史弹幕等，结果结构由后端定义，原样透传）。
func (s *AuthorService) GlobalSearch(ctx context.Context, keyword string, limit int) (json.RawMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.Backend.GlobalSearch(ctx, keyword, limit)
}

// GetDetail 主播档案。
func (s *AuthorService) GetDetail(ctx context.Context, secUID string) (*model.Author, error) {
	return s.Backend.AuthorDetail(ctx, secUID)
}

// GetRooms 主播的历史直播场次。
func (s *AuthorService) GetRooms(ctx context.Context, secUID string) ([]model.RoomInfo, error) {
	return s.Backend.AuthorRooms(ctx, secUID)
}

// LookupUser 观众资料（PK 贡献榜点开某个金主时用）。
func (s *AuthorService) LookupUser(ctx context.Context, secUID string) (*model.UserProfile, error) {
	return s.Backend.LookupUser(ctx, secUID)
}
