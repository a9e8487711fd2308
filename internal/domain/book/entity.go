package book

import "strings"

// Book 图书记录(值对象)
// DDD设计说明:
// 1. 只有书名、作者、ISBN三个字段,构造后不可修改(字段未导出,只提供读取方法)
// 2. ISBN作为自然键,但不保证唯一(允许重复,删除时按ISBN全部移除)
// 3. 没有代理主键,身份完全由字段值决定
type Book struct {
	title  string
	author string
	isbn   string
}

// NewBook 创建图书(工厂方法)
// 去除每个字段首尾空白,不做其他校验
// 非空校验由调用方(应用层提交用例)负责
func NewBook(title, author, isbn string) Book {
	return Book{
		title:  strings.TrimSpace(title),
		author: strings.TrimSpace(author),
		isbn:   strings.TrimSpace(isbn),
	}
}

// Restore 从持久化数据还原图书
// 与NewBook不同,不做任何规范化,保证序列化往返无损
func Restore(title, author, isbn string) Book {
	return Book{title: title, author: author, isbn: isbn}
}

// Title 书名
func (b Book) Title() string { return b.title }

// Author 作者
func (b Book) Author() string { return b.author }

// ISBN 国际标准书号
func (b Book) ISBN() string { return b.isbn }

// HasISBN 是否为指定ISBN(精确匹配,不做规范化)
func (b Book) HasISBN(isbn string) bool {
	return b.isbn == isbn
}
