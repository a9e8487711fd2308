package persistence

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/store"
	"github.com/xiebiao/bookshelf/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// guardedKV 熔断器保护的远程存储槽
// 熔断打开时Get/Set立即返回ErrUnavailable，BookStore按读取/写入失败降级
type guardedKV struct {
	inner store.KV
	cb    *circuitbreaker.CircuitBreaker
}

// guardedUpdater 底层支持原子更新时保留Update能力
type guardedUpdater struct {
	guardedKV
	updater store.Updater
}

// Guard 用熔断器包装KV
// 配额超限属于业务结果，不计入失败
func Guard(kv store.KV, name string, cfg config.BreakerConfig, logger *zap.Logger) store.KV {
	if logger == nil {
		logger = zap.NewNop()
	}

	cb := circuitbreaker.New(name, circuitbreaker.Settings{
		FailureThreshold: cfg.FailureThreshold,
		OpenTimeout:      cfg.OpenTimeout,
		HalfOpenRequests: cfg.HalfOpenRequests,
		IsFailure: func(err error) bool {
			return err != nil && !errors.Is(err, apperrors.ErrQuotaExceeded)
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			logger.Warn("存储熔断器状态变化",
				zap.String("breaker", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
			)
			metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
		},
	})
	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(circuitbreaker.StateClosed))

	g := guardedKV{inner: kv, cb: cb}
	if u, ok := kv.(store.Updater); ok {
		return &guardedUpdater{guardedKV: g, updater: u}
	}
	return &g
}

func (g *guardedKV) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := g.execute(func() error {
		var err error
		value, ok, err = g.inner.Get(ctx, key)
		return err
	})
	return value, ok, err
}

func (g *guardedKV) Set(ctx context.Context, key, value string) error {
	return g.execute(func() error {
		return g.inner.Set(ctx, key, value)
	})
}

func (g *guardedUpdater) Update(ctx context.Context, key string, fn store.UpdateFunc) error {
	return g.execute(func() error {
		return g.updater.Update(ctx, key, fn)
	})
}

func (g *guardedKV) execute(req func() error) error {
	err := g.cb.Execute(req)
	if errors.Is(err, circuitbreaker.ErrOpenState) {
		return apperrors.WrapCode(err, apperrors.ErrCodeUnavailable, "存储服务暂不可用")
	}
	return err
}
