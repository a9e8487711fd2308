package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

func TestDeleteBook_Execute(t *testing.T) {
	repo := &recordingRepo{books: []book.Book{
		book.NewBook("Dune", "Herbert", "1"),
		book.NewBook("Emma", "Austen", "2"),
		book.NewBook("Dune (copy)", "Herbert", "1"),
	}}
	alerter := &stubAlerter{}
	publisher := &recordingPublisher{}
	view := &recordingView{}
	uc := NewDeleteBookUseCase(repo, alerter, publisher, nil)

	fb := uc.Execute(context.Background(), "1", view)

	assert.Equal(t, Feedback{Message: MsgBookRemoved, Kind: AlertSuccess, Shown: true}, fb)
	assert.Equal(t, []string{"1"}, view.removed)
	assert.Equal(t, []string{"1"}, repo.removes)
	require.Len(t, repo.books, 1)
	assert.Equal(t, "2", repo.books[0].ISBN())

	require.Len(t, publisher.events, 1)
	assert.Equal(t, EventBookRemoved, publisher.events[0].key)
	assert.Equal(t, "1", publisher.events[0].event.ISBN)
	assert.Empty(t, publisher.events[0].event.Title)
}

func TestDeleteBook_UnknownISBN(t *testing.T) {
	repo := &recordingRepo{books: []book.Book{book.NewBook("Emma", "Austen", "2")}}
	alerter := &stubAlerter{}
	uc := NewDeleteBookUseCase(repo, alerter, nil, nil)

	fb := uc.Execute(context.Background(), "404", &recordingView{})

	// 不检查是否存在，照常提示成功
	assert.True(t, fb.Shown)
	assert.Equal(t, []string{"404"}, repo.removes)
	assert.Len(t, repo.books, 1)
}
