package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为MySQL唯一索引冲突错误
// MySQL错误码:
// - 1062: Duplicate entry 'xxx' for key 'yyy'
// 两个事务同时首次写入同一存储槽时，后提交的一方会遇到该错误
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}

// isDeadlockError 判断是否为InnoDB死锁
// MySQL错误码:
// - 1213: Deadlock found when trying to get lock
// 对不存在的行加FOR UPDATE会持有间隙锁，并发INSERT可能互相等待
func isDeadlockError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "Deadlock found")
}

// isRetryable 冲突类错误可以重新执行整个事务
func isRetryable(err error) bool {
	return isDuplicateError(err) || isDeadlockError(err)
}
