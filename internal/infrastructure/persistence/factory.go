// Package persistence 按配置组装存储槽后端
package persistence

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/file"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	mysqlstore "github.com/xiebiao/bookshelf/internal/infrastructure/persistence/mysql"
	redisstore "github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/store"
)

// NewKV 根据storage.driver创建KV
// 返回的cleanup负责关闭底层连接，调用方在退出时执行
// 设计说明:
// 1. memory/file是本地存储，直接返回
// 2. redis/mysql是远程存储，按storage.breaker配置包一层熔断器
func NewKV(cfg *config.Config, logger *zap.Logger) (store.KV, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	noop := func() {}

	switch cfg.Storage.Driver {
	case "memory":
		return memory.New(cfg.Storage.QuotaBytes), noop, nil

	case "file":
		kv, err := file.New(cfg.Storage.File.Dir, cfg.Storage.QuotaBytes)
		if err != nil {
			return nil, nil, err
		}
		return kv, noop, nil

	case "redis":
		client, err := redisstore.NewClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Redis连接成功", zap.String("addr", cfg.Redis.Addr()))

		kv := guardIfEnabled(redisstore.NewSlotStore(client, cfg.Redis.KeyPrefix), "redis", cfg, logger)
		return kv, func() { _ = client.Close() }, nil

	case "mysql":
		db, err := mysqlstore.NewDB(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
		}

		kv := guardIfEnabled(mysqlstore.NewSlotStore(db), "mysql", cfg, logger)
		return kv, func() { _ = sqlDB.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("不支持的存储驱动: %s", cfg.Storage.Driver)
	}
}

func guardIfEnabled(kv store.KV, name string, cfg *config.Config, logger *zap.Logger) store.KV {
	if !cfg.Storage.Breaker.Enabled {
		return kv
	}
	return Guard(kv, name, cfg.Storage.Breaker, logger)
}
