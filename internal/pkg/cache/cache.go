package cache

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss error = errors.New("缓存未命中,key不存在")

// 缓存通用接口
type Cache interface {
	// Set在缓存中设置一个值，并指定过期时间。
	// value应该是一个可以被JSON封送的值。
	Set(ctx context.Context, key string, value any, expiration time.Duration) error

	// Get从缓存中检索一个值，并将其解编组到target。key不存在时返回 ErrCacheMiss
	Get(ctx context.Context, key string, target any) error

	// 删除一个或多个key
	Del(ctx context.Context, keys ...string) error

	// 检查key是否存在
	Exists(ctx context.Context, key string) (bool, error)
}

func GenerateSessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func GenerateRoleKey(email string) string {
	return roleKeyPrefix + email
}
