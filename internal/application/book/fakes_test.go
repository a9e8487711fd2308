package book

import (
	"context"
	"errors"
	"sync"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// recordingView 记录用例对视图的调用
type recordingView struct {
	rows    []book.Book
	removed []string
	calls   []string // 调用顺序
	cleared int
}

func (v *recordingView) Render(b book.Book) {
	v.rows = append(v.rows, b)
	v.calls = append(v.calls, "render")
}

func (v *recordingView) RemoveRow(isbn string) {
	v.removed = append(v.removed, isbn)
	v.calls = append(v.calls, "remove_row")
}

func (v *recordingView) ClearFields() {
	v.cleared++
	v.calls = append(v.calls, "clear")
}

type shownAlert struct {
	message string
	kind    AlertKind
}

// stubAlerter 记录提示；visible=true时模拟已有提示可见
type stubAlerter struct {
	shown   []shownAlert
	visible bool
}

func (a *stubAlerter) Show(message string, kind AlertKind) bool {
	if a.visible {
		return false
	}
	a.shown = append(a.shown, shownAlert{message: message, kind: kind})
	return true
}

type publishedEvent struct {
	key   string
	event CatalogEvent
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{key: routingKey, event: event.(CatalogEvent)})
	return nil
}

// recordingRepo 记录仓储调用，用于验证校验门
type recordingRepo struct {
	books   []book.Book
	adds    int
	removes []string
}

func (r *recordingRepo) List(context.Context) []book.Book { return append([]book.Book(nil), r.books...) }

func (r *recordingRepo) Add(_ context.Context, b book.Book) {
	r.adds++
	r.books = append(r.books, b)
}

func (r *recordingRepo) Remove(_ context.Context, isbn string) {
	r.removes = append(r.removes, isbn)
	kept := r.books[:0]
	for _, b := range r.books {
		if !b.HasISBN(isbn) {
			kept = append(kept, b)
		}
	}
	r.books = kept
}

var errBrokerDown = errors.New("amqp: connection closed")
