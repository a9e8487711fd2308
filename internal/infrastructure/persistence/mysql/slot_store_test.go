package mysql

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 集成测试：设置BOOKSHELF_TEST_MYSQL_DSN后运行，例如
// root:root@tcp(localhost:3306)/bookshelf_test?charset=utf8mb4&parseTime=True&loc=Local
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("BOOKSHELF_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("未设置BOOKSHELF_TEST_MYSQL_DSN，跳过MySQL集成测试")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&SlotModel{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestSlotStore_GetSet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	s := NewSlotStore(db)
	key := fmt.Sprintf("books-%d", time.Now().UnixNano())
	t.Cleanup(func() { db.Where("slot_key = ?", key).Delete(&SlotModel{}) })

	_, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, key, "[]"))
	require.NoError(t, s.Set(ctx, key, `[{"title":"Dune","author":"Herbert","isbn":"1"}]`))

	v, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"title":"Dune","author":"Herbert","isbn":"1"}]`, v)
}

func TestSlotStore_UpdateConcurrent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	s := NewSlotStore(db)
	key := fmt.Sprintf("counter-%d", time.Now().UnixNano())
	t.Cleanup(func() { db.Where("slot_key = ?", key).Delete(&SlotModel{}) })

	// 先创建行，避免首次INSERT的间隙锁竞争
	require.NoError(t, s.Set(ctx, key, ""))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Update(ctx, key, func(current string, ok bool) (string, error) {
				return current + "x", nil
			}))
		}()
	}
	wg.Wait()

	v, _, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Len(t, v, 10)
}

func TestSlotStore_UpdateAbort(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	s := NewSlotStore(db)
	key := fmt.Sprintf("abort-%d", time.Now().UnixNano())
	t.Cleanup(func() { db.Where("slot_key = ?", key).Delete(&SlotModel{}) })

	require.NoError(t, s.Set(ctx, key, "[]"))

	boom := errors.New("boom")
	err := s.Update(ctx, key, func(string, bool) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)

	v, _, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "[]", v, "fn失败时不应写入")
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(gorm.ErrDuplicatedKey))
	assert.True(t, isRetryable(errors.New("Error 1062 (23000): Duplicate entry 'books' for key 'PRIMARY'")))
	assert.True(t, isRetryable(errors.New("Error 1213 (40001): Deadlock found when trying to get lock")))
	assert.False(t, isRetryable(errors.New("connection refused")))
	assert.False(t, isRetryable(nil))
}
