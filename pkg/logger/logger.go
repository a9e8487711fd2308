// Package logger 基于zap构建结构化日志
//
// 与配置文件log段一一对应：
//
//	log:
//	  level: info          # debug | info | warn | error
//	  format: console      # console | json
//	  output: stdout       # stdout | stderr | /path/to/file
//	  enable_caller: true
package logger

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志配置
type Options struct {
	Level        string
	Format       string
	Output       string
	EnableCaller bool

	// Writer 非nil时直接写入该Writer，忽略Output（命令行把日志写到stderr、测试写到buffer）
	Writer io.Writer
}

// New 创建zap日志实例
// 以生产配置为基础，按Options覆盖级别、编码与输出位置
func New(opts Options) (*zap.Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableCaller = !opts.EnableCaller
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch strings.ToLower(opts.Format) {
	case "", "console":
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case "json":
		cfg.Encoding = "json"
	default:
		return nil, fmt.Errorf("不支持的日志格式: %s", opts.Format)
	}

	if opts.Writer != nil {
		return newWriterLogger(cfg, opts.Writer), nil
	}

	output := opts.Output
	if output == "" {
		output = "stdout"
	}
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return logger, nil
}

// parseLevel 解析日志级别，空字符串视为info
func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return level, fmt.Errorf("无效的日志级别: %s", s)
	}
	return level, nil
}

func newWriterLogger(cfg zap.Config, w io.Writer) *zap.Logger {
	var enc zapcore.Encoder
	if cfg.Encoding == "json" {
		enc = zapcore.NewJSONEncoder(cfg.EncoderConfig)
	} else {
		enc = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	}

	var opts []zap.Option
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), cfg.Level), opts...)
}
