// Package integration 针对运行中的API服务做黑盒测试
//
// 先启动服务：BOOKSHELF_STORAGE_DRIVER=memory go run ./cmd/api
// 服务地址可用BOOKSHELF_TEST_API_URL覆盖；服务未启动时跳过
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Timeout HTTP请求超时时间
const Timeout = 10 * time.Second

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// BookItem 图书列表项
type BookItem struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// BookListData 图书列表响应数据
type BookListData struct {
	List  []BookItem `json:"list"`
	Total int        `json:"total"`
}

// Feedback 操作提示
type Feedback struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Shown   bool   `json:"shown"`
}

// AddBookData 添加图书响应数据
type AddBookData struct {
	Book     BookItem `json:"book"`
	Feedback Feedback `json:"feedback"`
}

// DeleteBookData 删除图书响应数据
type DeleteBookData struct {
	ISBN     string   `json:"isbn"`
	Feedback Feedback `json:"feedback"`
}

// baseURL 服务地址，服务不可达时跳过测试
func baseURL(t *testing.T) string {
	t.Helper()

	base := os.Getenv("BOOKSHELF_TEST_API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	client := &http.Client{Timeout: time.Second}
	resp, err := client.Get(base + "/ping")
	if err != nil {
		t.Skipf("API服务不可用，跳过: %v", err)
	}
	_ = resp.Body.Close()

	return base + "/api/v1"
}

// Do 发送请求并解析统一响应
//
// 教学说明：
// - 使用require断言，失败立即停止当前测试
// - 返回*Response而非error，简化调用方代码
func Do(t *testing.T, method, url string, body any) *Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err, "JSON序列化失败")
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err, "创建HTTP请求失败")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	require.NoError(t, json.Unmarshal(raw, &result), "解析JSON响应失败: %s", string(raw))
	return &result
}

// DecodeData 解析data字段
func DecodeData[T any](t *testing.T, resp *Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(resp.Data, &v), "解析响应数据失败: %s", string(resp.Data))
	return v
}

// GenerateTestISBN 生成唯一的测试ISBN
// 978 + 时间戳后10位，重复运行不冲突
func GenerateTestISBN() string {
	return fmt.Sprintf("978%010d", time.Now().UnixNano()%10000000000)
}

// ListBooks 当前目录
func ListBooks(t *testing.T, base string) BookListData {
	t.Helper()

	resp := Do(t, http.MethodGet, base+"/books", nil)
	require.Equal(t, 0, resp.Code, resp.Message)
	return DecodeData[BookListData](t, resp)
}

// CountISBN 目录中ISBN匹配的条数
func CountISBN(books []BookItem, isbn string) int {
	n := 0
	for _, b := range books {
		if b.ISBN == isbn {
			n++
		}
	}
	return n
}
