package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/store"
)

// 冲突（主键重复、死锁）时重新执行事务的次数
const maxUpdateRetries = 3

// SlotStore MySQL键值存储
// 设计说明:
// 1. Get/Set对应单行的SELECT与UPSERT
// 2. Update在事务内SELECT ... FOR UPDATE，多个实例共享同一张表也不会丢失更新
type SlotStore struct {
	db *gorm.DB
}

var (
	_ store.KV      = (*SlotStore)(nil)
	_ store.Updater = (*SlotStore)(nil)
)

// NewSlotStore 创建MySQL存储槽
func NewSlotStore(db *gorm.DB) *SlotStore {
	return &SlotStore{db: db}
}

// Get 读取存储槽，记录不存在时返回ok=false
func (s *SlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.get(s.db.WithContext(ctx), key)
}

// Set 写入存储槽（INSERT ... ON DUPLICATE KEY UPDATE）
func (s *SlotStore) Set(ctx context.Context, key, value string) error {
	return s.set(s.db.WithContext(ctx), key, value)
}

// Update 事务内读-改-写
// 教学要点:
// 1. FOR UPDATE锁定该行，其他事务的Update会阻塞到本事务提交
// 2. fn返回error时自动ROLLBACK，不写入任何内容
// 3. 行不存在时两个事务可能同时INSERT，得到主键冲突或死锁，整体重试
func (s *SlotStore) Update(ctx context.Context, key string, fn store.UpdateFunc) error {
	var err error
	for i := 0; i < maxUpdateRetries; i++ {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			current, ok, err := s.get(tx.Clauses(clause.Locking{Strength: "UPDATE"}), key)
			if err != nil {
				return err
			}

			next, err := fn(current, ok)
			if err != nil {
				return err
			}

			return s.set(tx, key, next)
		})
		if err == nil || !isRetryable(err) {
			return err
		}
	}
	return fmt.Errorf("更新存储槽失败: 重试%d次仍有冲突: %w", maxUpdateRetries, err)
}

func (s *SlotStore) get(db *gorm.DB, key string) (string, bool, error) {
	var model SlotModel
	err := db.Where("slot_key = ?", key).Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("查询存储槽失败: %w", err)
	}
	return model.SlotValue, true, nil
}

func (s *SlotStore) set(db *gorm.DB, key, value string) error {
	model := &SlotModel{SlotKey: key, SlotValue: value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"slot_value", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("写入存储槽失败: %w", err)
	}
	return nil
}
