package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// View 图书列表视图（HTTP响应收集器、终端表格等）
// 用例只通过这三个动作驱动界面，不关心具体渲染方式
type View interface {
	// Render 在列表末尾追加一行
	Render(b book.Book)
	// RemoveRow 移除ISBN匹配的行（界面上的行，与存储无关）
	RemoveRow(isbn string)
	// ClearFields 清空输入框
	ClearFields()
}

// AlertKind 提示类型
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertDanger  AlertKind = "danger"
)

// Alerter 提示条
// 已有提示可见时Show返回false，新提示被丢弃而不是排队
type Alerter interface {
	Show(message string, kind AlertKind) bool
}

// EventPublisher 目录事件发布（pkg/mq.Publisher）
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

// Feedback 一次操作产生的提示
type Feedback struct {
	Message string    `json:"message"`
	Kind    AlertKind `json:"kind"`
	Shown   bool      `json:"shown"` // false表示已有提示可见，本条被抑制
}

// BookDTO 图书输出DTO
type BookDTO struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// ToDTO 领域对象 → DTO
func ToDTO(b book.Book) BookDTO {
	return BookDTO{Title: b.Title(), Author: b.Author(), ISBN: b.ISBN()}
}

// 目录事件路由键
const (
	EventBookAdded   = "book.added"
	EventBookRemoved = "book.removed"
)

// CatalogEvent 目录变更事件
// book.removed只携带ISBN（删除前不读取记录）
type CatalogEvent struct {
	Type       string    `json:"type"`
	ISBN       string    `json:"isbn"`
	Title      string    `json:"title,omitempty"`
	Author     string    `json:"author,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
