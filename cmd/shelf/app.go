package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/store"
	"github.com/xiebiao/bookshelf/internal/interface/alert"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// app 一次命令执行所需的依赖
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	notifier *alert.Notifier

	submit *appbook.SubmitBookUseCase
	remove *appbook.DeleteBookUseCase
	load   *appbook.LoadBooksUseCase

	cleanup []func()
}

// openApp 加载配置并组装依赖
// 日志写到stderr，不与表格输出混在一起
func openApp(configPath string, stderr io.Writer) (*app, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	a := &app{cfg: cfg, logger: log}

	kv, closeKV, err := persistence.NewKV(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("初始化存储失败: %w", err)
	}
	a.cleanup = append(a.cleanup, closeKV)

	var publisher appbook.EventPublisher = mq.NopPublisher{}
	if cfg.Events.Enabled {
		p, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
		if err != nil {
			// 事件是旁路通知，连不上不影响命令本身
			log.Warn("连接RabbitMQ失败，本次不发布事件", zap.Error(err))
		} else {
			publisher = p
			a.cleanup = append(a.cleanup, func() { _ = p.Close() })
		}
	}

	repo := store.NewBookStore(kv, cfg.Storage.Key, log)
	a.notifier = alert.NewNotifier(cfg.Feedback.DismissAfter)
	a.submit = appbook.NewSubmitBookUseCase(repo, a.notifier, publisher, log)
	a.remove = appbook.NewDeleteBookUseCase(repo, a.notifier, publisher, log)
	a.load = appbook.NewLoadBooksUseCase(repo)

	return a, nil
}

// Close 逆序释放资源
func (a *app) Close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	_ = a.logger.Sync()
}
