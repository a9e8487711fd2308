// Package memory 进程内键值存储
// 用于测试替身,也可以在storage.driver=memory时作为非持久化后端
package memory

import (
	"context"
	"sync"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// Store 内存键值存储
// 配额语义与浏览器localStorage一致:所有键和值的总长度不超过quota字节(0表示不限制)
type Store struct {
	mu    sync.RWMutex
	data  map[string]string
	quota int
	used  int
}

// New 创建内存存储
func New(quota int) *Store {
	return &Store{
		data:  make(map[string]string),
		quota: quota,
	}
}

// Get 读取键值,ok=false表示键不存在
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

// Set 写入键值
// 超出配额时返回ErrQuotaExceeded,原值保持不变
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := s.used
	if old, ok := s.data[key]; ok {
		used -= len(key) + len(old)
	}
	used += len(key) + len(value)

	if s.quota > 0 && used > s.quota {
		return apperrors.ErrQuotaExceeded
	}

	s.data[key] = value
	s.used = used
	return nil
}

// Delete 删除键(测试中用来模拟"从未写入")
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.data[key]; ok {
		s.used -= len(key) + len(old)
		delete(s.data, key)
	}
}
