// Package alert 提示条
// 同一时刻最多一条可见；可见期间的新提示直接丢弃，不排队
package alert

import (
	"sync"
	"time"

	app "github.com/xiebiao/bookshelf/internal/application/book"
)

// DefaultDismissAfter 默认自动消失时间
const DefaultDismissAfter = 3 * time.Second

// Alert 可见的提示
type Alert struct {
	Message   string        `json:"message"`
	Kind      app.AlertKind `json:"kind"`
	ShownAt   time.Time     `json:"shown_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Notifier 提示条状态
// 设计说明:
// 1. Show在已有提示可见时返回false
// 2. time.AfterFunc到期后清除提示，只影响提示条本身
// 3. id区分不同的提示，旧定时器不会清除之后显示的新提示
type Notifier struct {
	dismissAfter time.Duration

	mu      sync.Mutex
	current *Alert
	timer   *time.Timer
	id      uint64
}

var _ app.Alerter = (*Notifier)(nil)

// NewNotifier 创建提示条，dismissAfter<=0时使用默认3秒
func NewNotifier(dismissAfter time.Duration) *Notifier {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	return &Notifier{dismissAfter: dismissAfter}
}

// Show 显示提示，已有提示可见时返回false
func (n *Notifier) Show(message string, kind app.AlertKind) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != nil {
		return false
	}

	now := time.Now()
	n.id++
	id := n.id
	n.current = &Alert{
		Message:   message,
		Kind:      kind,
		ShownAt:   now,
		ExpiresAt: now.Add(n.dismissAfter),
	}
	n.timer = time.AfterFunc(n.dismissAfter, func() { n.expire(id) })
	return true
}

// Dismiss 立即关闭可见的提示（关闭按钮），返回是否有提示被关闭
func (n *Notifier) Dismiss() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return false
	}
	n.clear()
	return true
}

// Current 当前可见的提示，没有时返回nil
func (n *Notifier) Current() *Alert {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil
	}
	a := *n.current
	return &a
}

func (n *Notifier) expire(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.id == id && n.current != nil {
		n.clear()
	}
}

func (n *Notifier) clear() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}
