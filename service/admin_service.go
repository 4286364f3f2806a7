package service

import (
	"context"
	"net/url"
)

// AdminService 后台接口的纯透传：Q&A 内容和采集端 Cookie 池的增删改查
// 都由后端落地，SDK 这边只补密钥头转发，不建任何本地模型。
type AdminService struct {
	*Service
}

func NewAdminService(base *Service) *AdminService {
	return &AdminService{Service: base}
}

// ProxyQna 转发 /qna 相关请求。path 形如 "/qna" 或 "/qna/3"。
func (s *AdminService) ProxyQna(ctx context.Context, method, path string, query url.Values, body []byte) (int, []byte, error) {
	return s.Backend.Do(ctx, method, path, query, body)
}

// ProxyCookies 转发 Cookie 池请求（GET/POST/DELETE /admin/cookies）。
func (s *AdminService) ProxyCookies(ctx context.Context, method string, body []byte) (int, []byte, error) {
	return s.Backend.Do(ctx, method, "/admin/cookies", nil, body)
}
