package utils

import (
	"log"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem 缓存条目，带绝对过期时刻
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// GlobalCache 进程内缓存，LRU 控制容量，TTL 控制新鲜度
// 目前只缓存帖子列表这类读多写少的响应
type GlobalCache struct {
	lruCache *lru.Cache[string, CacheItem]
}

var (
	cacheInstance *GlobalCache
	cacheOnce     sync.Once
)

// GetCache 返回缓存单例，首次调用时初始化
func GetCache() *GlobalCache {
	cacheOnce.Do(func() {
		l, err := lru.New[string, CacheItem](200)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &GlobalCache{
			lruCache: l,
		}
	})
	return cacheInstance
}

// Set 写入缓存，ttl 过后视为失效
func (c *GlobalCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get 读取缓存，未命中或已过期返回 nil
// 过期条目顺手移除，避免占着 LRU 槽位
func (c *GlobalCache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}

	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}

	return val.Data
}

// Delete 主动失效指定键，数据变更后调用
func (c *GlobalCache) Delete(key string) {
	c.lruCache.Remove(key)
}
