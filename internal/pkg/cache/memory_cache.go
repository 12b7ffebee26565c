package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	sessionKeyPrefix = "session:"
	roleKeyPrefix    = "profile:role:"

	memoryCacheSize = 10000
)

// MemoryCache 进程内缓存, 用于本地开发 (未配置 Redis) 和测试
// 会话和角色各用一个 LRU, 过期时间在构造时固定, Set 的 expiration 参数被忽略
type MemoryCache struct {
	sessions *expirable.LRU[string, []byte]
	roles    *expirable.LRU[string, []byte]
	other    *expirable.LRU[string, []byte]
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache ttl <= 0 时条目不过期
func NewMemoryCache(sessionTTL, roleTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		sessions: expirable.NewLRU[string, []byte](memoryCacheSize, nil, sessionTTL),
		roles:    expirable.NewLRU[string, []byte](memoryCacheSize, nil, roleTTL),
		other:    expirable.NewLRU[string, []byte](memoryCacheSize, nil, 0),
	}
}

func (m *MemoryCache) lruFor(key string) *expirable.LRU[string, []byte] {
	switch {
	case strings.HasPrefix(key, sessionKeyPrefix):
		return m.sessions
	case strings.HasPrefix(key, roleKeyPrefix):
		return m.roles
	default:
		return m.other
	}
}

func (m *MemoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.lruFor(key).Add(key, data)
	return nil
}

func (m *MemoryCache) Get(_ context.Context, key string, target any) error {
	data, ok := m.lruFor(key).Get(key)
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(data, target)
}

func (m *MemoryCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.lruFor(k).Remove(k)
	}
	return nil
}

func (m *MemoryCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.lruFor(key).Peek(key)
	return ok, nil
}
