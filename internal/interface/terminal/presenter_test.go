package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

func TestPresenter_Flush(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.Render(book.NewBook("Dune", "Frank Herbert", "9780441013593"))
	p.Render(book.NewBook("Emma", "Jane Austen", "9780141439587"))
	p.Render(book.NewBook("Dune", "Frank Herbert", "9780441013593"))
	p.RemoveRow("9780441013593")
	require.NoError(t, p.Flush())

	out := buf.String()
	assert.Contains(t, out, "书名")
	assert.Contains(t, out, "Emma")
	assert.Contains(t, out, "Jane Austen")
	assert.NotContains(t, out, "Dune")
	assert.Contains(t, out, "共 1 本")
	assert.NotContains(t, out, "\x1b[", "非TTY输出不应带颜色")
}

func TestPresenter_FlushEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPresenter(&buf).Flush())
	assert.Equal(t, "（目录为空）", strings.TrimSpace(buf.String()))
}

func TestPresenter_PrintAlert(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	require.NoError(t, p.PrintAlert("图书已添加", appbook.AlertSuccess))
	require.NoError(t, p.PrintAlert("请填写所有字段", appbook.AlertDanger))

	assert.Equal(t, "图书已添加\n请填写所有字段\n", buf.String())
}
