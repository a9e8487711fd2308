package store

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// bookRecord 持久化格式
// 字段顺序与名称固定为title、author、isbn
type bookRecord struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

var errNotArray = errors.New("图书数据不是数组")

// decodeBooks 将存储槽内容解析为图书列表
// 只要求顶层是数组,元素必须能解析为记录对象
func decodeBooks(raw string) ([]book.Book, error) {
	data := bytes.TrimSpace([]byte(raw))
	// json.Unmarshal会把null解析为nil切片且不报错,这里显式要求数组
	if len(data) == 0 || data[0] != '[' {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return nil, errNotArray
	}

	var records []bookRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	books := make([]book.Book, 0, len(records))
	for _, r := range records {
		books = append(books, book.Restore(r.Title, r.Author, r.ISBN))
	}
	return books, nil
}

// encodeBooks 将图书列表序列化为存储槽内容
// 空列表编码为[]而不是null
func encodeBooks(books []book.Book) (string, error) {
	records := make([]bookRecord, 0, len(books))
	for _, b := range books {
		records = append(records, bookRecord{
			Title:  b.Title(),
			Author: b.Author(),
			ISBN:   b.ISBN(),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
