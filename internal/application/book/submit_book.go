package book

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// 提交成功/失败的提示文案
const (
	MsgBookAdded      = "图书已添加"
	MsgIncompleteBook = "请填写所有字段"
)

// SubmitBookUseCase 提交图书用例（表单提交）
// 设计说明:
// 1. 校验门：三个字段去除空白后都不能为空，否则不触碰仓储
// 2. 先渲染再保存：保存失败只记录日志，界面上已出现的行不会回滚
// 3. 成功后清空输入框并发布book.added事件
type SubmitBookUseCase struct {
	repo      book.Repository
	alerter   Alerter
	publisher EventPublisher
	logger    *zap.Logger
	validate  *validator.Validate
	now       func() time.Time
}

// NewSubmitBookUseCase 创建提交用例，publisher/logger可为nil
func NewSubmitBookUseCase(repo book.Repository, alerter Alerter, publisher EventPublisher, logger *zap.Logger) *SubmitBookUseCase {
	return &SubmitBookUseCase{
		repo:      repo,
		alerter:   alerter,
		publisher: orNop(publisher),
		logger:    orNopLogger(logger),
		validate:  newValidator(),
		now:       time.Now,
	}
}

// SubmitBookRequest 表单输入（未去除空白的原始值）
type SubmitBookRequest struct {
	Title  string `json:"title" validate:"notblank"`
	Author string `json:"author" validate:"notblank"`
	ISBN   string `json:"isbn" validate:"notblank"`
}

// SubmitBookResponse 提交结果
type SubmitBookResponse struct {
	Book     BookDTO  `json:"book"`
	Feedback Feedback `json:"feedback"`
}

// Execute 执行提交
// 校验失败返回book.ErrIncompleteBook，同时弹出danger提示
func (uc *SubmitBookUseCase) Execute(ctx context.Context, req SubmitBookRequest, view View) (*SubmitBookResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "book.SubmitBook")
	defer span.End()

	// 1. 校验门
	if err := uc.validate.Struct(req); err != nil {
		uc.alerter.Show(MsgIncompleteBook, AlertDanger)
		tracing.RecordError(span, book.ErrIncompleteBook)
		return nil, book.ErrIncompleteBook
	}

	// 2. 构造图书（去除首尾空白）
	b := book.NewBook(req.Title, req.Author, req.ISBN)
	span.SetAttributes(attribute.String("book.isbn", b.ISBN()))

	// 3. 渲染 → 保存 → 提示 → 清空输入框
	view.Render(b)
	uc.repo.Add(ctx, b)
	shown := uc.alerter.Show(MsgBookAdded, AlertSuccess)
	view.ClearFields()

	// 4. 发布事件
	publishEvent(ctx, uc.publisher, uc.logger, CatalogEvent{
		Type:       EventBookAdded,
		ISBN:       b.ISBN(),
		Title:      b.Title(),
		Author:     b.Author(),
		OccurredAt: uc.now(),
	})

	return &SubmitBookResponse{
		Book:     ToDTO(b),
		Feedback: Feedback{Message: MsgBookAdded, Kind: AlertSuccess, Shown: shown},
	}, nil
}
