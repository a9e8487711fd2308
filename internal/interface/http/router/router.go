// Package router 组装gin引擎：中间件与全部路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookshelf/docs"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// Options 路由开关
type Options struct {
	Mode           string // gin运行模式：debug | release | test
	MetricsEnabled bool
	MetricsPath    string
	TracingEnabled bool
	SwaggerEnabled bool
}

// New 创建gin引擎并注册路由
//
// 中间件顺序：Recovery → Tracing → Logger → Metrics
// Logger放在Tracing之后，日志里才能带上trace_id
func New(opts Options, logger *zap.Logger, books *handler.BookHandler, alerts *handler.AlertHandler) *gin.Engine {
	switch opts.Mode {
	case gin.ReleaseMode, gin.TestMode, gin.DebugMode:
		gin.SetMode(opts.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if opts.TracingEnabled {
		r.Use(middleware.Tracing())
	}
	r.Use(middleware.Logger(logger))
	if opts.MetricsEnabled {
		r.Use(middleware.Metrics())
	}

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	if opts.MetricsEnabled {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.Handler()))
	}

	// Swagger文档：http://localhost:8080/swagger/index.html
	if opts.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		b := v1.Group("/books")
		{
			b.GET("", books.ListBooks)
			b.POST("", books.AddBook)
			b.DELETE("/:isbn", books.DeleteBook)
		}

		v1.GET("/alert", alerts.CurrentAlert)
		v1.DELETE("/alert", alerts.DismissAlert)
	}

	return r
}
