package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/store"
	"github.com/xiebiao/bookshelf/internal/interface/alert"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// App 组装完成的服务
type App struct {
	Config *config.Config
	Engine *gin.Engine
	Logger *zap.Logger
}

func newApp(cfg *config.Config, engine *gin.Engine, logger *zap.Logger) *App {
	return &App{Config: cfg, Engine: engine, Logger: logger}
}

// provideBookStore 目录仓储，存储槽名称来自storage.key
func provideBookStore(cfg *config.Config, kv store.KV, logger *zap.Logger) *store.BookStore {
	return store.NewBookStore(kv, cfg.Storage.Key, logger)
}

// provideNotifier 提示条，HTTP服务内所有请求共享同一条
func provideNotifier(cfg *config.Config) *alert.Notifier {
	return alert.NewNotifier(cfg.Feedback.DismissAfter)
}

// providePublisher 目录事件发布器
// 未开启或RabbitMQ连不上时退化为NopPublisher，服务照常启动
func providePublisher(cfg *config.Config, logger *zap.Logger) (appbook.EventPublisher, func()) {
	if !cfg.Events.Enabled {
		return mq.NopPublisher{}, func() {}
	}

	p, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, logger)
	if err != nil {
		logger.Warn("连接RabbitMQ失败，目录事件不会发布", zap.Error(err))
		return mq.NopPublisher{}, func() {}
	}
	logger.Info("目录事件发布已开启", zap.String("exchange", cfg.Events.Exchange))
	return p, func() { _ = p.Close() }
}

// provideRouterOptions 路由开关
// Swagger只在非release模式暴露
func provideRouterOptions(cfg *config.Config) router.Options {
	return router.Options{
		Mode:           cfg.Server.Mode,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
		TracingEnabled: cfg.Tracing.Enabled,
		SwaggerEnabled: cfg.Server.Mode != gin.ReleaseMode,
	}
}
