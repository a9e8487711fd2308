package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/interface/alert"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// AlertHandler 提示条HTTP处理器
type AlertHandler struct {
	notifier *alert.Notifier
}

// NewAlertHandler 创建提示条处理器
func NewAlertHandler(notifier *alert.Notifier) *AlertHandler {
	return &AlertHandler{notifier: notifier}
}

// CurrentAlert 当前可见的提示
// @Summary      当前提示
// @Description  没有可见提示时data为null
// @Tags         提示
// @Produce      json
// @Success      200 {object} response.Response{data=dto.AlertResponse}
// @Router       /api/v1/alert [get]
func (h *AlertHandler) CurrentAlert(c *gin.Context) {
	a := h.notifier.Current()
	if a == nil {
		response.Success(c, nil)
		return
	}

	response.Success(c, &dto.AlertResponse{
		Message:   a.Message,
		Kind:      string(a.Kind),
		ExpiresAt: a.ExpiresAt.Format("2006-01-02 15:04:05"),
	})
}

// DismissAlert 关闭提示（关闭按钮）
// @Summary      关闭提示
// @Tags         提示
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/v1/alert [delete]
func (h *AlertHandler) DismissAlert(c *gin.Context) {
	response.Success(c, gin.H{"dismissed": h.notifier.Dismiss()})
}
