package dto

import appbook "github.com/xiebiao/bookshelf/internal/application/book"

// AddBookRequest HTTP添加图书请求
// 非空校验在应用层用例里做（去除空白后判断），这里只负责绑定
type AddBookRequest struct {
	Title  string `json:"title" example:"Dune"`
	Author string `json:"author" example:"Frank Herbert"`
	ISBN   string `json:"isbn" example:"9780441013593"`
}

// BookItem HTTP图书列表项
type BookItem struct {
	Title  string `json:"title" example:"Dune"`
	Author string `json:"author" example:"Frank Herbert"`
	ISBN   string `json:"isbn" example:"9780441013593"`
}

// AddBookResponse HTTP添加图书响应
type AddBookResponse struct {
	Book     BookItem        `json:"book"`
	Feedback FeedbackPayload `json:"feedback"`
}

// DeleteBookResponse HTTP删除图书响应
type DeleteBookResponse struct {
	ISBN     string          `json:"isbn" example:"9780441013593"`
	Feedback FeedbackPayload `json:"feedback"`
}

// FeedbackPayload 操作提示
type FeedbackPayload struct {
	Message string `json:"message" example:"图书已添加"`
	Kind    string `json:"kind" example:"success"` // success | danger
	Shown   bool   `json:"shown" example:"true"`   // false表示已有提示可见，本条被抑制
}

// AlertResponse 当前可见的提示
type AlertResponse struct {
	Message   string `json:"message" example:"图书已添加"`
	Kind      string `json:"kind" example:"success"`
	ExpiresAt string `json:"expires_at" example:"2026-10-14 09:00:03"`
}

// ToBookItem 应用层DTO → HTTP DTO
func ToBookItem(b appbook.BookDTO) BookItem {
	return BookItem{Title: b.Title, Author: b.Author, ISBN: b.ISBN}
}

// ToFeedback 应用层提示 → HTTP DTO
func ToFeedback(f appbook.Feedback) FeedbackPayload {
	return FeedbackPayload{Message: f.Message, Kind: string(f.Kind), Shown: f.Shown}
}
