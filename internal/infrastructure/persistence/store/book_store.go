package store

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// DefaultKey 默认存储槽名称
const DefaultKey = "books"

// BookStore 图书仓储实现
// 设计说明:
// 1. 整个目录以JSON数组形式保存在KV的一个键(存储槽)中
// 2. Add/Remove都是整表读-改-写,代价与目录大小线性相关
// 3. 内部用显式错误传递结果,只在公开方法的边界把错误降级为"空列表/空操作"并记录日志
// 4. 读-改-写在互斥锁内执行;底层实现Updater时再交给存储做跨进程的原子更新
type BookStore struct {
	kv     KV
	key    string
	logger *zap.Logger

	mu sync.Mutex
}

var _ book.Repository = (*BookStore)(nil)

// NewBookStore 创建图书仓储
func NewBookStore(kv KV, key string, logger *zap.Logger) *BookStore {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookStore{
		kv:     kv,
		key:    key,
		logger: logger.With(zap.String("slot", key)),
	}
}

// List 按插入顺序返回全部图书,从不失败
func (s *BookStore) List(ctx context.Context) []book.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, raw, err := s.load(ctx)
	books = s.fallback(books, raw, err)

	metrics.SetGauge(metrics.BooksInCatalog, float64(len(books)))
	return books
}

// Add 追加图书到目录末尾
// 写入失败只记录日志,不回滚也不返回错误
func (s *BookStore) Add(ctx context.Context, b book.Book) {
	ok := s.mutate(ctx, "保存图书失败", func(books []book.Book) []book.Book {
		return append(books, b)
	})
	if ok {
		metrics.IncCounter(metrics.BooksAddedTotal)
	}
}

// Remove 删除所有ISBN精确匹配的图书
// 没有匹配时仍会回写(内容不变),保持与读-改-写流程一致
func (s *BookStore) Remove(ctx context.Context, isbn string) {
	ok := s.mutate(ctx, "删除图书失败", func(books []book.Book) []book.Book {
		kept := make([]book.Book, 0, len(books))
		for _, b := range books {
			if !b.HasISBN(isbn) {
				kept = append(kept, b)
			}
		}
		return kept
	})
	if ok {
		metrics.IncCounter(metrics.BooksRemovedTotal)
	}
}

// load 读取并解析存储槽
// 返回值:
// - 槽不存在: 空列表, nil
// - 读取失败: ErrCodeStorageRead
// - 解析失败: ErrCodeDecode, 同时返回原始内容供日志使用
func (s *BookStore) load(ctx context.Context) ([]book.Book, string, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, "", apperrors.WrapCode(err, apperrors.ErrCodeStorageRead, "读取图书数据失败")
	}
	books, err := parse(raw, ok)
	return books, raw, err
}

// parse 将KV读到的内容转为图书列表
func parse(raw string, ok bool) ([]book.Book, error) {
	if !ok {
		return []book.Book{}, nil
	}
	books, err := decodeBooks(raw)
	if err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDecode, "解析图书数据失败")
	}
	return books, nil
}

// fallback 读取结果的降级边界
// 任何读取/解析错误都记录日志并替换为空列表
func (s *BookStore) fallback(books []book.Book, raw string, err error) []book.Book {
	if err == nil {
		return books
	}

	kind := "decode"
	if errors.Is(err, apperrors.ErrStorageRead) {
		kind = "read"
	}
	metrics.IncCounterVec(metrics.StoreAnomaliesTotal, map[string]string{"kind": kind})

	s.logger.Error(apperrors.GetAppError(err).Message,
		zap.String("kind", kind),
		zap.String("raw", raw),
		zap.Error(err),
	)
	return []book.Book{}
}

// mutate 执行一次读-改-写
// 存储槽内容损坏时按空列表处理并覆盖写入
// 读取本身失败(网络等)时放弃写入,避免用残缺列表覆盖远端数据
func (s *BookStore) mutate(ctx context.Context, message string, fn func([]book.Book) []book.Book) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payload string
	apply := func(current string, ok bool) (string, error) {
		books, err := parse(current, ok)
		books = s.fallback(books, current, err)

		next, err := encodeBooks(fn(books))
		if err != nil {
			return "", err
		}
		payload = next
		return next, nil
	}

	var err error
	if u, ok := s.kv.(Updater); ok {
		err = u.Update(ctx, s.key, apply)
	} else {
		err = s.readModifyWrite(ctx, apply)
	}
	if err != nil {
		s.report(message, payload, err)
		return false
	}
	return true
}

// readModifyWrite 不支持原子更新的存储走普通的Get+Set
func (s *BookStore) readModifyWrite(ctx context.Context, apply UpdateFunc) error {
	current, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeStorageRead, "读取图书数据失败")
	}
	next, err := apply(current, ok)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, next)
}

// report 写入结果的降级边界
func (s *BookStore) report(message, payload string, err error) {
	metrics.IncCounterVec(metrics.StoreAnomaliesTotal, map[string]string{"kind": "persist"})

	s.logger.Error(message,
		zap.String("kind", "persist"),
		zap.String("value", payload),
		zap.Error(apperrors.WrapCode(err, apperrors.ErrCodePersist, message)),
	)
}
