package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	submitBook *appbook.SubmitBookUseCase
	deleteBook *appbook.DeleteBookUseCase
	loadBooks  *appbook.LoadBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	submitBook *appbook.SubmitBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
	loadBooks *appbook.LoadBooksUseCase,
) *BookHandler {
	return &BookHandler{
		submitBook: submitBook,
		deleteBook: deleteBook,
		loadBooks:  loadBooks,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按添加顺序返回全部图书；存储损坏或不可读时返回空列表
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=response.ListData{list=[]dto.BookItem}}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	view := &rowCollector{}
	total := h.loadBooks.Execute(c.Request.Context(), view)

	response.SuccessWithList(c, view.items(), total)
}

// AddBook 添加图书
// @Summary      添加图书
// @Description  三个字段去除首尾空白后都不能为空
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.AddBookResponse}
// @Failure      200 {object} response.Response "40900 请填写所有字段 / 40901 参数格式错误"
// @Router       /api/v1/books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	// 1. 参数绑定
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数格式错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例
	result, err := h.submitBook.Execute(c.Request.Context(), appbook.SubmitBookRequest{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
	}, &rowCollector{})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	response.Success(c, &dto.AddBookResponse{
		Book:     dto.ToBookItem(result.Book),
		Feedback: dto.ToFeedback(result.Feedback),
	})
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  删除所有ISBN精确匹配的图书；没有匹配时同样返回成功
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Success      200 {object} response.Response{data=dto.DeleteBookResponse}
// @Router       /api/v1/books/{isbn} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	isbn := c.Param("isbn")
	feedback := h.deleteBook.Execute(c.Request.Context(), isbn, &rowCollector{})

	response.Success(c, &dto.DeleteBookResponse{
		ISBN:     isbn,
		Feedback: dto.ToFeedback(feedback),
	})
}

// rowCollector 单次请求的视图
// HTTP没有常驻的界面，用例渲染的行收集起来作为响应体
type rowCollector struct {
	rows []book.Book
}

var _ appbook.View = (*rowCollector)(nil)

func (v *rowCollector) Render(b book.Book) { v.rows = append(v.rows, b) }

func (v *rowCollector) RemoveRow(isbn string) {
	kept := v.rows[:0]
	for _, b := range v.rows {
		if !b.HasISBN(isbn) {
			kept = append(kept, b)
		}
	}
	v.rows = kept
}

func (v *rowCollector) ClearFields() {}

func (v *rowCollector) items() []dto.BookItem {
	items := make([]dto.BookItem, 0, len(v.rows))
	for _, b := range v.rows {
		items = append(items, dto.ToBookItem(appbook.ToDTO(b)))
	}
	return items
}
