package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/xwlin/livedash-sdk/backend"
)

// Service 基础服务：持有后端客户端和可选的 Redis。
// 所有数据的唯一来源是采集后端，Redis 只做短 TTL 的读缓存，
// 不配 Redis 就直连。
type Service struct {
	Backend *backend.Client
	RDB     *redis.Client

	// CachePrefix 缓存键前缀，默认 "livedash:"
	CachePrefix string
}

func (s *Service) cacheKey(key string) string {
	prefix := s.CachePrefix
	if prefix == "" {
		prefix = "livedash:"
	}
	return prefix + key
}

// cachedJSON 读穿缓存：命中直接反序列化进 out；未命中执行 fetch，
// 成功后异步写回。缓存层任何错误都不往上抛，退化为直连。
func (s *Service) cachedJSON(ctx context.Context, key string, ttl time.Duration, out interface{}, fetch func() (interface{}, error)) error {
	if s.RDB != nil {
		data, err := s.RDB.Get(ctx, s.cacheKey(key)).Bytes()
		if err == nil {
			if jsonErr := json.Unmarshal(data, out); jsonErr == nil {
				return nil
			}
			// 缓存里是坏数据，当未命中处理
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("[service] 读缓存 %s 失败: %v", key, err)
		}
	}

	fresh, err := fetch()
	if err != nil {
		return err
	}

	data, err := json.Marshal(fresh)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}

	if s.RDB != nil {
		if err := s.RDB.Set(ctx, s.cacheKey(key), data, ttl).Err(); err != nil {
			log.Printf("[service] 写缓存 %s 失败: %v", key, err)
		}
	}
	return nil
}
