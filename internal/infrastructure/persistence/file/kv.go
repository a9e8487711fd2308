// Package file 基于本地文件的键值存储
// 每个键对应目录下的一个<key>.json文件
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Store 文件键值存储
// 写入先落到临时文件再rename,进程崩溃也不会留下半截内容
type Store struct {
	dir   string
	quota int

	mu sync.Mutex
}

// New 创建文件存储,目录不存在时自动创建
// quota限制单个值的字节数(0表示不限制)
func New(dir string, quota int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建存储目录失败: %w", err)
	}
	return &Store{dir: dir, quota: quota}, nil
}

// Get 读取键值,文件不存在时ok=false
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("读取文件失败: %w", err)
	}
	return string(data), true, nil
}

// Set 原子写入键值
func (s *Store) Set(_ context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if s.quota > 0 && len(value) > s.quota {
		return apperrors.ErrQuotaExceeded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFileAtomically(path, []byte(value))
}

func (s *Store) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("非法的存储键: %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// writeFileAtomically 写临时文件、Sync、Close后rename覆盖目标
// 任一步失败都删除临时文件
func writeFileAtomically(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("写入临时文件失败: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("同步临时文件失败: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("关闭临时文件失败: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("替换文件失败: %w", err)
	}
	return nil
}
