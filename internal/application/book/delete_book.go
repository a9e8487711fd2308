package book

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// MsgBookRemoved 删除成功提示
const MsgBookRemoved = "图书已删除"

// DeleteBookUseCase 删除图书用例（点击删除按钮）
// 不检查ISBN是否存在：删除不存在的图书同样提示成功
type DeleteBookUseCase struct {
	repo      book.Repository
	alerter   Alerter
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewDeleteBookUseCase 创建删除用例，publisher/logger可为nil
func NewDeleteBookUseCase(repo book.Repository, alerter Alerter, publisher EventPublisher, logger *zap.Logger) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		repo:      repo,
		alerter:   alerter,
		publisher: orNop(publisher),
		logger:    orNopLogger(logger),
		now:       time.Now,
	}
}

// Execute 先移除界面上的行，再删除存储中所有匹配的记录
func (uc *DeleteBookUseCase) Execute(ctx context.Context, isbn string, view View) Feedback {
	ctx, span := tracing.StartSpan(ctx, "book.DeleteBook")
	defer span.End()
	span.SetAttributes(attribute.String("book.isbn", isbn))

	view.RemoveRow(isbn)
	uc.repo.Remove(ctx, isbn)
	shown := uc.alerter.Show(MsgBookRemoved, AlertSuccess)

	publishEvent(ctx, uc.publisher, uc.logger, CatalogEvent{
		Type:       EventBookRemoved,
		ISBN:       isbn,
		OccurredAt: uc.now(),
	})

	return Feedback{Message: MsgBookRemoved, Kind: AlertSuccess, Shown: shown}
}
