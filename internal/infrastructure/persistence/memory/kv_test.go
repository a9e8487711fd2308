package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := New(0)

	_, ok, err := s.Get(ctx, "books")
	require.NoError(t, err)
	assert.False(t, ok, "未写入的键不存在")

	require.NoError(t, s.Set(ctx, "books", ""))
	v, ok, err := s.Get(ctx, "books")
	require.NoError(t, err)
	assert.True(t, ok, "空串也是存在的值")
	assert.Equal(t, "", v)

	s.Delete("books")
	_, ok, _ = s.Get(ctx, "books")
	assert.False(t, ok)
}

func TestStore_Quota(t *testing.T) {
	ctx := context.Background()
	s := New(len("books") + 10)

	require.NoError(t, s.Set(ctx, "books", "0123456789"))

	err := s.Set(ctx, "books", "01234567890")
	assert.True(t, errors.Is(err, apperrors.ErrQuotaExceeded))

	v, _, _ := s.Get(ctx, "books")
	assert.Equal(t, "0123456789", v, "写入失败时原值不变")

	// 覆盖写入按差值计算
	require.NoError(t, s.Set(ctx, "books", "short"))
}
