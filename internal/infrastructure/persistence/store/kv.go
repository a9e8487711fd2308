package store

import "context"

// KV 键值存储原语
// 设计说明:
// 1. 对应浏览器localStorage的getItem/setItem,只提供按键读写字符串
// 2. Get返回ok=false表示键不存在(与"存在但为空串"区分)
// 3. Set可能因配额、网络等原因失败
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// UpdateFunc 根据当前值计算新值
// current/ok语义同KV.Get
type UpdateFunc func(current string, ok bool) (string, error)

// Updater 支持原子读-改-写的存储
// 实现方(Redis WATCH事务、MySQL行锁)保证多个进程共享同一存储槽时不丢失更新
// 实现可能因冲突重试而多次调用fn
type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
