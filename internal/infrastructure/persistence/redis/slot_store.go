package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/store"
)

// 乐观锁冲突时的最大重试次数
const maxUpdateRetries = 5

// SlotStore Redis键值存储
// Key设计：{prefix}:{slot}，如bookshelf:books
// 值为整个目录的JSON字符串，不设置过期时间
type SlotStore struct {
	client *redis.Client
	prefix string
}

var (
	_ store.KV      = (*SlotStore)(nil)
	_ store.Updater = (*SlotStore)(nil)
)

// NewSlotStore 创建Redis存储槽
func NewSlotStore(client *redis.Client, prefix string) *SlotStore {
	return &SlotStore{client: client, prefix: prefix}
}

// Get 读取存储槽，redis.Nil表示键不存在
func (s *SlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.slotKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("读取Redis失败: %w", err)
	}
	return val, true, nil
}

// Set 写入存储槽
// Redis达到maxmemory时返回OOM错误，由仓储按写入失败处理
func (s *SlotStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.slotKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("写入Redis失败: %w", err)
	}
	return nil
}

// Update 基于WATCH/MULTI的乐观锁读-改-写
// 学习要点：
// 1. WATCH监视key，EXEC时若key已被其他客户端修改，事务失败（TxFailedErr）
// 2. 失败后重新读取最新值再计算，最多重试maxUpdateRetries次
// 3. 多个进程共享同一存储槽时不会丢失更新
func (s *SlotStore) Update(ctx context.Context, key string, fn store.UpdateFunc) error {
	slotKey := s.slotKey(key)

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, slotKey).Result()
		ok := true
		if errors.Is(err, redis.Nil) {
			current, ok = "", false
		} else if err != nil {
			return fmt.Errorf("读取Redis失败: %w", err)
		}

		next, err := fn(current, ok)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, slotKey, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, slotKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("更新Redis失败: %w", err)
		}
		return nil
	}
	return fmt.Errorf("更新Redis失败: 重试%d次仍有冲突", maxUpdateRetries)
}

func (s *SlotStore) slotKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}
