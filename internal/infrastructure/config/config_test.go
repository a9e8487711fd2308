package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // 目录里没有config.yaml

	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "books", cfg.Storage.Key)
	assert.Equal(t, 3*time.Second, cfg.Feedback.DismissAfter)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestLoadFile_YAMLAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9090
storage:
  driver: memory
  key: shelf
feedback:
  dismiss_after: 500ms
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Run("读取YAML", func(t *testing.T) {
		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "memory", cfg.Storage.Driver)
		assert.Equal(t, "shelf", cfg.Storage.Key)
		assert.Equal(t, 500*time.Millisecond, cfg.Feedback.DismissAfter)
	})

	t.Run("环境变量覆盖", func(t *testing.T) {
		t.Setenv("BOOKSHELF_STORAGE_DRIVER", "redis")
		t.Setenv("BOOKSHELF_REDIS_PORT", "6380")

		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, "redis", cfg.Storage.Driver)
		assert.Equal(t, 6380, cfg.Redis.Port)
	})
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Run("指定的文件不存在", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("未知存储驱动", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("BOOKSHELF_STORAGE_DRIVER", "localstorage")

		_, err := LoadFile("")
		assert.ErrorContains(t, err, "不支持的存储驱动")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 3306, User: "u", Password: "p", DBName: "bookshelf",
		Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai",
	}
	assert.Equal(t, "u:p@tcp(db:3306)/bookshelf?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai", d.DSN())
}
