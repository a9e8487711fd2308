//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. 本文件只在wire工具运行时参与编译（wireinject构建标签）
// 2. 运行 `wire gen ./cmd/api` 重新生成wire_gen.go
// 3. main.go调用wire_gen.go中的InitializeApp()
//
// 依赖链：
// *App ← *gin.Engine ← Handler ← UseCase ← book.Repository(*store.BookStore) ← store.KV ← *config.Config

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/store"
	"github.com/xiebiao/bookshelf/internal/interface/alert"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
)

// infrastructureSet 存储槽与仓储
// 教学要点：wire.Bind把具体类型绑定到接口，用例只依赖book.Repository
var infrastructureSet = wire.NewSet(
	persistence.NewKV, // 按storage.driver选择后端，返回cleanup
	provideBookStore,
	wire.Bind(new(book.Repository), new(*store.BookStore)),
)

// feedbackSet 提示条与目录事件
var feedbackSet = wire.NewSet(
	provideNotifier,
	wire.Bind(new(appbook.Alerter), new(*alert.Notifier)),
	providePublisher,
)

// applicationSet 应用层用例
var applicationSet = wire.NewSet(
	appbook.NewSubmitBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewLoadBooksUseCase,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewAlertHandler,
	provideRouterOptions,
	router.New,
)

// InitializeApp 初始化整个应用
// cfg和logger由main先创建（指标、链路追踪要在路由之前初始化）
// 返回的cleanup按创建的逆序释放存储连接与RabbitMQ连接
func InitializeApp(cfg *config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		feedbackSet,
		applicationSet,
		handlerSet,
		newApp,
	)
	return nil, nil, nil
}
