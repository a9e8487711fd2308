package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBook(t *testing.T) {
	t.Run("去除首尾空白", func(t *testing.T) {
		b := NewBook("  Title  ", "\tAuthor\n", " 123 ")

		assert.Equal(t, "Title", b.Title())
		assert.Equal(t, "Author", b.Author())
		assert.Equal(t, "123", b.ISBN())
	})

	t.Run("内部空白保留", func(t *testing.T) {
		b := NewBook("Go 语言 实战", "William Kennedy", "978-7-115")
		assert.Equal(t, "Go 语言 实战", b.Title())
		assert.Equal(t, "978-7-115", b.ISBN())
	})

	t.Run("空字段不报错", func(t *testing.T) {
		b := NewBook("", "   ", "")
		assert.Equal(t, Book{}, b)
	})
}

func TestRestore(t *testing.T) {
	b := Restore(" raw ", "author", "001")
	assert.Equal(t, " raw ", b.Title(), "还原时不做规范化")
}

func TestBook_HasISBN(t *testing.T) {
	b := NewBook("Dune", "Herbert", "001")

	assert.True(t, b.HasISBN("001"))
	assert.False(t, b.HasISBN(" 001"), "精确匹配")
	assert.False(t, b.HasISBN("002"))
}
