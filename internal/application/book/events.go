package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/pkg/metrics"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, any) error { return nil }

// publishEvent 发布目录事件
// 失败只记录日志和指标，不影响用例结果
func publishEvent(ctx context.Context, publisher EventPublisher, logger *zap.Logger, event CatalogEvent) {
	result := "success"
	if err := publisher.Publish(ctx, event.Type, event); err != nil {
		result = "failure"
		logger.Warn("发布目录事件失败",
			zap.String("routing_key", event.Type),
			zap.String("isbn", event.ISBN),
			zap.Error(err),
		)
	}
	metrics.IncCounterVec(metrics.EventsPublishedTotal, map[string]string{
		"routing_key": event.Type,
		"result":      result,
	})
}

func orNop(publisher EventPublisher) EventPublisher {
	if publisher == nil {
		return nopPublisher{}
	}
	return publisher
}

func orNopLogger(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
