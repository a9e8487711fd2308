package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// LoadBooksUseCase 加载图书列表（页面就绪时）
type LoadBooksUseCase struct {
	repo book.Repository
}

// NewLoadBooksUseCase 创建加载用例
func NewLoadBooksUseCase(repo book.Repository) *LoadBooksUseCase {
	return &LoadBooksUseCase{repo: repo}
}

// Execute 按存储顺序逐条渲染，返回渲染的条数
// 存储不可读或数据损坏时仓储返回空列表，这里渲染0条
func (uc *LoadBooksUseCase) Execute(ctx context.Context, view View) int {
	ctx, span := tracing.StartSpan(ctx, "book.LoadBooks")
	defer span.End()

	books := uc.repo.List(ctx)
	for _, b := range books {
		view.Render(b)
	}

	span.SetAttributes(attribute.Int("book.count", len(books)))
	return len(books)
}
