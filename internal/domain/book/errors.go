package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrIncompleteBook 书名、作者、ISBN有空字段(去除空白后)
	ErrIncompleteBook = apperrors.New(apperrors.ErrCodeInvalidParams, "请填写所有字段")
)
