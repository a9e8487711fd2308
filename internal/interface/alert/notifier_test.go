package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/xiebiao/bookshelf/internal/application/book"
)

func TestNotifier_SuppressesWhileVisible(t *testing.T) {
	n := NewNotifier(time.Hour)

	require.True(t, n.Show("图书已添加", app.AlertSuccess))
	assert.False(t, n.Show("图书已删除", app.AlertSuccess), "可见期间的新提示应被丢弃")

	cur := n.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "图书已添加", cur.Message)
	assert.Equal(t, app.AlertSuccess, cur.Kind)
	assert.Equal(t, time.Hour, cur.ExpiresAt.Sub(cur.ShownAt))
}

func TestNotifier_AutoDismiss(t *testing.T) {
	n := NewNotifier(20 * time.Millisecond)

	require.True(t, n.Show("请填写所有字段", app.AlertDanger))
	require.Eventually(t, func() bool { return n.Current() == nil }, time.Second, 5*time.Millisecond)

	// 消失后可以再次显示
	assert.True(t, n.Show("图书已添加", app.AlertSuccess))
}

func TestNotifier_Dismiss(t *testing.T) {
	n := NewNotifier(time.Hour)

	assert.False(t, n.Dismiss(), "没有提示时关闭无效")

	require.True(t, n.Show("图书已添加", app.AlertSuccess))
	assert.True(t, n.Dismiss())
	assert.Nil(t, n.Current())
	assert.True(t, n.Show("图书已删除", app.AlertSuccess))
}

func TestNotifier_StaleTimerKeepsNewAlert(t *testing.T) {
	n := NewNotifier(time.Hour)

	require.True(t, n.Show("first", app.AlertSuccess))
	staleID := n.id
	require.True(t, n.Dismiss())
	require.True(t, n.Show("second", app.AlertSuccess))

	// 模拟第一条提示的定时器在Dismiss之后才触发
	n.expire(staleID)

	cur := n.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "second", cur.Message)
}

func TestNewNotifier_Default(t *testing.T) {
	assert.Equal(t, DefaultDismissAfter, NewNotifier(0).dismissAfter)
}
