package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 仓储是当前目录的唯一权威来源,调用方不得跨调用缓存列表
// 3. 尽力持久化:三个方法都不向调用方返回错误,异常由实现记录到日志
type Repository interface {
	// List 按插入顺序返回全部图书
	// 存储槽不存在或数据损坏时返回空列表
	List(ctx context.Context) []Book

	// Add 追加一本图书到末尾(整表读-改-写)
	Add(ctx context.Context, book Book)

	// Remove 删除所有ISBN精确等于isbn的图书
	// 不存在时为空操作
	Remove(ctx context.Context, isbn string)
}
