package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/pkg/mq"
)

// runShelf 执行一次命令，存储为临时目录下的文件
func runShelf(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func setupFileStorage(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("BOOKSHELF_CONFIG", "")
	t.Setenv("BOOKSHELF_STORAGE_DRIVER", "file")
	t.Setenv("BOOKSHELF_STORAGE_FILE_DIR", dir)
	t.Setenv("BOOKSHELF_LOG_LEVEL", "error")
}

func TestShelf_AddListRemove(t *testing.T) {
	setupFileStorage(t)

	out, err := runShelf(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "目录为空")

	out, err = runShelf(t, "add", "--title", " Dune ", "--author", "Frank Herbert", "--isbn", "9780441013593")
	require.NoError(t, err)
	assert.Contains(t, out, "图书已添加")

	// 每次命令都是新进程，数据来自文件
	out, err = runShelf(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Frank Herbert")
	assert.Contains(t, out, "共 1 本")

	out, err = runShelf(t, "rm", "9780441013593")
	require.NoError(t, err)
	assert.Contains(t, out, "图书已删除")

	out, err = runShelf(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "目录为空")
}

func TestShelf_AddIncomplete(t *testing.T) {
	setupFileStorage(t)

	out, err := runShelf(t, "add", "--title", "Dune", "--isbn", "1")
	require.Error(t, err)
	assert.Contains(t, out, "请填写所有字段")

	out, err = runShelf(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "目录为空")
}

func TestShelf_RemoveRequiresISBN(t *testing.T) {
	setupFileStorage(t)

	_, err := runShelf(t, "rm")
	assert.Error(t, err)
}

func TestFormatEvent(t *testing.T) {
	at := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	added := mq.Delivery{
		RoutingKey: "book.added",
		Body:       []byte(`{"type":"book.added","isbn":"1","title":"Dune","author":"Herbert","occurred_at":"` + at.Format(time.RFC3339) + `"}`),
	}
	assert.Equal(t, "2026-10-14 09:00:00 book.added isbn=1 《Dune》 Herbert", formatEvent(added))

	removed := mq.Delivery{
		RoutingKey: "book.removed",
		Body:       []byte(`{"type":"book.removed","isbn":"1","occurred_at":"` + at.Format(time.RFC3339) + `"}`),
	}
	assert.Equal(t, "2026-10-14 09:00:00 book.removed isbn=1", formatEvent(removed))

	assert.Equal(t, "book.added not-json", formatEvent(mq.Delivery{RoutingKey: "book.added", Body: []byte("not-json")}))
}
